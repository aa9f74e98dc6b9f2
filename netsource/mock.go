package netsource

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// Defaults for MockSource.
const (
	DefaultScanDelay   = 1500 * time.Millisecond
	DefaultMinCount    = 5
	DefaultMaxCount    = 8
	DefaultSecureRatio = 0.6
)

// MockConfig tunes the fabricated scans.
type MockConfig struct {
	Pool        []string
	Delay       time.Duration
	MinCount    int
	MaxCount    int
	SecureRatio float64
	// Seed fixes the random sequence. Zero picks a random seed.
	Seed uint64
}

// DefaultMockConfig returns the stock scan behaviour.
func DefaultMockConfig() MockConfig {
	return MockConfig{
		Pool:        append([]string(nil), DefaultPool...),
		Delay:       DefaultScanDelay,
		MinCount:    DefaultMinCount,
		MaxCount:    DefaultMaxCount,
		SecureRatio: DefaultSecureRatio,
	}
}

var _ Source = (*MockSource)(nil)

// MockSource fabricates a random set of networks after a fixed delay.
type MockSource struct {
	pool        []string
	delay       time.Duration
	minCount    int
	maxCount    int
	secureRatio float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockSource validates cfg and builds a source from it. Duplicate pool
// entries are collapsed so that results never repeat an SSID.
func NewMockSource(cfg MockConfig) (*MockSource, error) {
	pool := dedupe(cfg.Pool)
	switch {
	case len(pool) == 0:
		return nil, fmt.Errorf("mock source: empty SSID pool")
	case cfg.Delay < 0:
		return nil, fmt.Errorf("mock source: negative delay %s", cfg.Delay)
	case cfg.MinCount < 1 || cfg.MaxCount < cfg.MinCount:
		return nil, fmt.Errorf("mock source: invalid network count range [%d,%d]", cfg.MinCount, cfg.MaxCount)
	case cfg.SecureRatio < 0 || cfg.SecureRatio > 1:
		return nil, fmt.Errorf("mock source: secure ratio %v outside [0,1]", cfg.SecureRatio)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	return &MockSource{
		pool:        pool,
		delay:       cfg.Delay,
		minCount:    cfg.MinCount,
		maxCount:    cfg.MaxCount,
		secureRatio: cfg.SecureRatio,
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}

// Scan waits for the configured delay and returns a fresh random result set.
// It only fails if ctx is done first.
func (s *MockSource) Scan(ctx context.Context) ([]Network, error) {
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generate(), nil
}

func (s *MockSource) generate() []Network {
	n := s.minCount + s.rng.IntN(s.maxCount-s.minCount+1)
	if n > len(s.pool) {
		n = len(s.pool)
	}

	nets := make([]Network, n)
	for i, idx := range s.rng.Perm(len(s.pool))[:n] {
		nets[i] = Network{
			SSID:           s.pool[idx],
			SignalStrength: MinSignal + s.rng.IntN(MaxSignal-MinSignal+1),
			IsSecure:       s.rng.Float64() < s.secureRatio,
		}
	}
	return nets
}

func dedupe(pool []string) []string {
	seen := make(map[string]struct{}, len(pool))
	out := make([]string, 0, len(pool))
	for _, ssid := range pool {
		if _, ok := seen[ssid]; ok || ssid == "" {
			continue
		}
		seen[ssid] = struct{}{}
		out = append(out, ssid)
	}
	return out
}
