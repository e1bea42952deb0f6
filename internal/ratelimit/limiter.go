package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// VendorLimiter throttles outbound calls per vendor so one hot search
// path cannot burn through a vendor's request quota.
type VendorLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Config
}

type Config struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 5,
		BurstSize:         10,
	}
}

func NewVendorLimiter(config Config) *VendorLimiter {
	return &VendorLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

func (v *VendorLimiter) limiter(vendor string) *rate.Limiter {
	v.mu.RLock()
	limiter, exists := v.limiters[vendor]
	v.mu.RUnlock()

	if exists {
		return limiter
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if limiter, exists = v.limiters[vendor]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(v.defaults.RequestsPerSecond), v.defaults.BurstSize)
	v.limiters[vendor] = limiter
	return limiter
}

func (v *VendorLimiter) SetVendorLimit(vendor string, rps float64, burst int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.limiters[vendor] = rate.NewLimiter(rate.Limit(rps), burst)
}

func (v *VendorLimiter) Wait(ctx context.Context, vendor string) error {
	return v.limiter(vendor).Wait(ctx)
}
