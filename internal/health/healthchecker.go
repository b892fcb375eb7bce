// Package health provides background component health checking and a
// service-level aggregate flag. Unhealthy components never stop the service;
// the aggregation layer degrades instead.
package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Pinger is implemented by components that can be probed (NASA client,
// progress store).
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker is implemented by component-level checkers.
type HealthChecker interface {
	Name() string
	IsHealthy() bool
	Start(ctx context.Context, interval time.Duration)
}

// ComponentChecker probes a single Pinger on an interval and caches the
// result.
type ComponentChecker struct {
	name    string
	pinger  Pinger
	log     zerolog.Logger
	timeout time.Duration
	healthy atomic.Int32
}

// NewComponentChecker creates a checker for one component. Checkers start
// unhealthy until the first probe succeeds.
func NewComponentChecker(name string, p Pinger, log zerolog.Logger, probeTimeout time.Duration) *ComponentChecker {
	return &ComponentChecker{name: name, pinger: p, log: log, timeout: probeTimeout}
}

func (c *ComponentChecker) Name() string { return c.name }

// IsHealthy returns the cached probe result.
func (c *ComponentChecker) IsHealthy() bool { return c.healthy.Load() == 1 }

// Start probes immediately and then on every tick until ctx is cancelled.
func (c *ComponentChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	probe := func() {
		probeCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()
		if err := c.pinger.Ping(probeCtx); err != nil {
			if c.healthy.Swap(0) == 1 {
				c.log.Warn().Err(err).Str("component", c.name).Msg("component health: DOWN")
			}
			return
		}
		if c.healthy.Swap(1) == 0 {
			c.log.Info().Str("component", c.name).Msg("component health: UP")
		}
	}

	probe()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probe()
		}
	}
}

// ServiceHealthChecker aggregates component checkers into a single service
// health flag.
type ServiceHealthChecker struct {
	healthy atomic.Int32
	deps    []HealthChecker
	log     zerolog.Logger
}

func NewServiceHealthChecker(log zerolog.Logger, deps ...HealthChecker) *ServiceHealthChecker {
	h := &ServiceHealthChecker{deps: deps, log: log}
	h.healthy.Store(0)
	return h
}

// IsHealthy returns cached service health.
func (h *ServiceHealthChecker) IsHealthy() bool { return h.healthy.Load() == 1 }

// Components reports each dependency's name and current state.
func (h *ServiceHealthChecker) Components() map[string]bool {
	out := make(map[string]bool, len(h.deps))
	for _, c := range h.deps {
		out[c.Name()] = c.IsHealthy()
	}
	return out
}

// Start periodically evaluates dependency health and updates the service flag.
func (h *ServiceHealthChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := int32(0)
	eval := func() {
		all := true
		for _, c := range h.deps {
			if !c.IsHealthy() {
				all = false
			}
		}
		if all {
			h.healthy.Store(1)
		} else {
			h.healthy.Store(0)
		}
		cur := h.healthy.Load()
		if cur != prev {
			if cur == 1 {
				h.log.Info().Msg("service health: UP")
			} else {
				h.log.Warn().Msg("service health: DOWN")
			}
			prev = cur
		}
	}

	eval()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			eval()
		}
	}
}
