// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - start and stop a set of long running goroutines
package background

import (
	"sync"
)

// Process - a background loop
//
// Run must return soon after shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a started set of processes
type T struct {
	sync.Mutex
	shutdown chan struct{}
	wg       sync.WaitGroup
	stopped  bool
}

// Start - run each process in its own goroutine
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make(chan struct{}),
	}

	for _, p := range processes {
		register.wg.Add(1)
		go func(p Process) {
			defer register.wg.Done()
			p.Run(args, register.shutdown)
		}(p)
	}
	return register
}

// Stop - signal all processes and wait for them to finish
//
// calling Stop more than once only waits
func (t *T) Stop() {
	t.Lock()
	if !t.stopped {
		close(t.shutdown)
		t.stopped = true
	}
	t.Unlock()

	t.wg.Wait()
}
