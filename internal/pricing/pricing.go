// Package pricing provides price sources for pre-filling trade inputs.
// Price lookup is an input concern: a fetched price becomes the entry
// price of a TradeInput before evaluation, never during it.
package pricing

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Source supplies a premium quote for an option contract. Quote blocks
// until a price is available or the context is done.
type Source interface {
	Quote(ctx context.Context, strike float64) (float64, error)
}

// Simulated is a stand-in price source for offline use. It derives a
// base premium from the strike and adds bounded random jitter after a
// fixed latency, mimicking a slow market-data call.
type Simulated struct {
	Base    float64       // base premium before strike adjustment
	Jitter  float64       // max absolute deviation from base
	Latency time.Duration // simulated round-trip delay

	mu  sync.Mutex
	rng *rand.Rand
}

// DefaultBase and friends reproduce the historical simulator settings.
const (
	DefaultBase    = 150.50
	DefaultJitter  = 5.0
	DefaultLatency = 1500 * time.Millisecond
)

// NewSimulated creates a simulated source seeded from the clock.
func NewSimulated() *Simulated {
	return NewSimulatedWithSeed(time.Now().UnixNano())
}

// NewSimulatedWithSeed creates a simulated source with a fixed seed,
// for deterministic tests.
func NewSimulatedWithSeed(seed int64) *Simulated {
	return &Simulated{
		Base:    DefaultBase,
		Jitter:  DefaultJitter,
		Latency: DefaultLatency,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Quote returns a simulated premium for the strike: base + strike/1000
// plus jitter in [-Jitter, +Jitter). It honors context cancellation
// while waiting out the simulated latency.
func (s *Simulated) Quote(ctx context.Context, strike float64) (float64, error) {
	if s.Latency > 0 {
		timer := time.NewTimer(s.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-timer.C:
		}
	}

	s.mu.Lock()
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	fluctuation := (s.rng.Float64() - 0.5) * 2 * s.Jitter
	s.mu.Unlock()

	return s.Base + strike/1000 + fluctuation, nil
}
