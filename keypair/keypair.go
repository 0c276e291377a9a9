// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keypair - signing keys and the identities derived from them
package keypair

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/carrierd/fault"
	"github.com/bitmark-inc/carrierd/identity"
)

// SeedLength - bytes of secret seed
const SeedLength = ed25519.SeedSize

// KeyPair - structure to hold public and private keys and the seed
// that was used to generate them
type KeyPair struct {
	Seed       []byte
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// RawKeyPair - text version of seed and keys
type RawKeyPair struct {
	Seed       string            `json:"seed"`
	PublicKey  string            `json:"public_key"`
	PrivateKey string            `json:"private_key"`
	Identity   identity.Identity `json:"identity"`
}

// NewSeed - create a new seed from secure random data
func NewSeed() ([]byte, error) {
	seed := make([]byte, SeedLength)
	n, err := rand.Read(seed)
	if nil != err {
		return nil, err
	}
	if SeedLength != n {
		panic("too few random bytes")
	}
	return seed, nil
}

// New - create new seed and generate public/private keys from it
func New() (*KeyPair, error) {
	seed, err := NewSeed()
	if nil != err {
		return nil, err
	}
	return FromSeed(seed)
}

// FromSeed - generate public/private keys from existing seed
func FromSeed(seed []byte) (*KeyPair, error) {
	if SeedLength != len(seed) {
		return nil, fault.ErrKeyLength
	}
	privateKey := ed25519.NewKeyFromSeed(seed)

	s := make([]byte, SeedLength)
	copy(s, seed)

	return &KeyPair{
		Seed:       s,
		PublicKey:  privateKey.Public().(ed25519.PublicKey),
		PrivateKey: privateKey,
	}, nil
}

// FromHexSeed - generate public/private keys from a hexadecimal seed
func FromHexSeed(seed string) (*KeyPair, error) {
	s, err := hex.DecodeString(seed)
	if nil != err {
		return nil, fault.ErrInvalidSeed
	}
	return FromSeed(s)
}

// IdentityOf - the identity owned by a public key
//
// the first 20 bytes of SHA3-256(public key)
func IdentityOf(publicKey []byte) (identity.Identity, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return identity.Identity{}, fault.ErrKeyLength
	}
	digest := sha3.Sum256(publicKey)
	return identity.FromBytes(digest[:identity.Length])
}

// Identity - the identity of this key pair
func (kp *KeyPair) Identity() identity.Identity {
	id, err := IdentityOf(kp.PublicKey)
	if nil != err {
		panic(err) // public key is always generated at the right length
	}
	return id
}

// Sign - sign a message
func (kp *KeyPair) Sign(message []byte) []byte {
	return ed25519.Sign(kp.PrivateKey, message)
}

// Verify - check a signature made by publicKey
func Verify(publicKey []byte, message []byte, signature []byte) bool {
	if ed25519.PublicKeySize != len(publicKey) || ed25519.SignatureSize != len(signature) {
		return false
	}
	return ed25519.Verify(publicKey, message, signature)
}

// Raw - the text form of the key pair
func (kp *KeyPair) Raw() *RawKeyPair {
	return &RawKeyPair{
		Seed:       hex.EncodeToString(kp.Seed),
		PublicKey:  hex.EncodeToString(kp.PublicKey),
		PrivateKey: hex.EncodeToString(kp.PrivateKey),
		Identity:   kp.Identity(),
	}
}
