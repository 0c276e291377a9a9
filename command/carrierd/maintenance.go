// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/carrierd/market"
)

// the parts of the market the daemon drives
type maintainer interface {
	Prune() (*market.Pruned, error)
	Counters(routes ...string) (*market.Status, error)
}

// removes expired records on a timer or when triggered
type pruner struct {
	log      *logger.L
	market   maintainer
	interval time.Duration
	trigger  chan struct{}
}

// logs the market counters on a timer
type reporter struct {
	log      *logger.L
	market   maintainer
	interval time.Duration
	routes   []string
}

func newPruner(log *logger.L, m maintainer, interval time.Duration) *pruner {
	return &pruner{
		log:      log,
		market:   m,
		interval: interval,
		trigger:  make(chan struct{}, 1),
	}
}

// request an immediate prune, a request already pending absorbs this one
func (p *pruner) Trigger() {
	select {
	case p.trigger <- struct{}{}:
	default:
	}
}

func (p *pruner) Run(args interface{}, shutdown <-chan struct{}) {

	log := p.log
	log.Infof("prune every: %s", p.interval)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			p.prune()
		case <-p.trigger:
			log.Info("prune requested")
			p.prune()
		}
	}
	log.Info("pruner stopped")
}

func (p *pruner) prune() {
	pruned, err := p.market.Prune()
	if nil != err {
		p.log.Errorf("prune error: %s", err)
		return
	}
	if 0 == pruned.Demands && 0 == pruned.Travels && 0 == pruned.Reservations {
		p.log.Debug("nothing expired")
		return
	}
	p.log.Infof("pruned: demands: %d  travels: %d  reservations: %d", pruned.Demands, pruned.Travels, pruned.Reservations)
}

func (r *reporter) Run(args interface{}, shutdown <-chan struct{}) {

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			r.report()
		}
	}
}

func (r *reporter) report() {
	status, err := r.market.Counters(r.routes...)
	if nil != err {
		r.log.Errorf("counters error: %s", err)
		return
	}
	r.log.Infof("open demands: %d  open travels: %d  time: %d", status.OpenDemands, status.OpenTravels, status.CurrentTime)
	for name, value := range status.Counters {
		r.log.Infof("counter: %s: %d", name, value)
	}
	for route, used := range status.Routes {
		r.log.Infof("route: %q used: %d", route, used)
	}
}
