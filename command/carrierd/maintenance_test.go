// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/carrierd/background"
	"github.com/bitmark-inc/carrierd/fault"
	"github.com/bitmark-inc/carrierd/market"
)

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "carrierd-test")
	if nil != err {
		panic(err)
	}

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(err)
	}

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}

type fakeMarket struct {
	sync.Mutex
	prunes   int
	counters int
	routes   []string
	err      error
}

func (f *fakeMarket) Prune() (*market.Pruned, error) {
	f.Lock()
	defer f.Unlock()
	f.prunes += 1
	if nil != f.err {
		return nil, f.err
	}
	return &market.Pruned{Demands: 1}, nil
}

func (f *fakeMarket) Counters(routes ...string) (*market.Status, error) {
	f.Lock()
	defer f.Unlock()
	f.counters += 1
	f.routes = routes
	if nil != f.err {
		return nil, f.err
	}
	return &market.Status{
		Counters: map[string]uint64{"demands-created": 3},
		Routes:   map[string]uint64{"north": 1},
	}, nil
}

func (f *fakeMarket) calls() (int, int) {
	f.Lock()
	defer f.Unlock()
	return f.prunes, f.counters
}

func TestPrunerTrigger(t *testing.T) {
	f := &fakeMarket{}
	p := newPruner(logger.New("pruner"), f, time.Hour)

	bg := background.Start(background.Processes{p}, nil)
	p.Trigger()

	assert.Eventually(t, func() bool {
		prunes, _ := f.calls()
		return 1 == prunes
	}, time.Second, 5*time.Millisecond, "triggered prune")

	bg.Stop()
}

func TestPrunerTriggerIsCoalesced(t *testing.T) {
	f := &fakeMarket{}
	p := newPruner(logger.New("pruner"), f, time.Hour)

	// not running so requests queue
	p.Trigger()
	p.Trigger()
	p.Trigger()
	assert.Equal(t, 1, len(p.trigger), "pending requests")
}

func TestPrunerInterval(t *testing.T) {
	f := &fakeMarket{err: fault.ErrNotInitialised}
	p := newPruner(logger.New("pruner"), f, 2*time.Millisecond)

	bg := background.Start(background.Processes{p}, nil)
	assert.Eventually(t, func() bool {
		prunes, _ := f.calls()
		return prunes >= 2
	}, time.Second, 5*time.Millisecond, "errors do not stop the pruner")
	bg.Stop()
}

func TestReporter(t *testing.T) {
	f := &fakeMarket{}
	r := &reporter{
		log:      logger.New("reporter"),
		market:   f,
		interval: 2 * time.Millisecond,
		routes:   []string{"north"},
	}

	bg := background.Start(background.Processes{r}, nil)
	assert.Eventually(t, func() bool {
		_, counters := f.calls()
		return counters > 0
	}, time.Second, 5*time.Millisecond, "reported")
	bg.Stop()

	f.Lock()
	assert.Equal(t, []string{"north"}, f.routes, "routes passed")
	f.Unlock()
}
