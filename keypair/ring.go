// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"sort"
	"sync"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/carrierd/fault"
	"github.com/bitmark-inc/carrierd/identity"
)

// Ring - the key pairs that may act for their identities
//
// an identity is witnessed when the ring can produce a signature for
// it that verifies against its public key
type Ring struct {
	sync.RWMutex
	pairs map[identity.Identity]*KeyPair
}

// NewRing - a ring holding the given key pairs
func NewRing(pairs ...*KeyPair) *Ring {
	r := &Ring{
		pairs: make(map[identity.Identity]*KeyPair),
	}
	for _, kp := range pairs {
		r.Add(kp)
	}
	return r
}

// RingFromHexSeeds - a ring built from hexadecimal seeds
//
// a seed repeated in the list is an error
func RingFromHexSeeds(seeds []string) (*Ring, error) {
	r := NewRing()
	for _, s := range seeds {
		kp, err := FromHexSeed(s)
		if nil != err {
			return nil, err
		}
		if _, ok := r.Get(kp.Identity()); ok {
			return nil, fault.ErrOperatorExists
		}
		r.Add(kp)
	}
	return r, nil
}

// Add - put a key pair in the ring
func (r *Ring) Add(kp *KeyPair) identity.Identity {
	id := kp.Identity()
	r.Lock()
	r.pairs[id] = kp
	r.Unlock()
	return id
}

// Get - the key pair for an identity
func (r *Ring) Get(id identity.Identity) (*KeyPair, bool) {
	r.RLock()
	defer r.RUnlock()
	kp, ok := r.pairs[id]
	return kp, ok
}

// Identities - every identity in the ring in byte order
func (r *Ring) Identities() []identity.Identity {
	r.RLock()
	defer r.RUnlock()

	ids := make([]identity.Identity, 0, len(r.pairs))
	for id := range r.pairs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return string(ids[i][:]) < string(ids[j][:])
	})
	return ids
}

// CheckWitness - true if the ring holds a working key for id
func (r *Ring) CheckWitness(id identity.Identity) bool {
	kp, ok := r.Get(id)
	if !ok {
		return false
	}
	// the key must actually derive this identity
	derived, err := IdentityOf(kp.PublicKey)
	if nil != err || derived != id {
		return false
	}
	challenge := sha3.Sum256(id[:])
	return Verify(kp.PublicKey, challenge[:], kp.Sign(challenge[:]))
}
