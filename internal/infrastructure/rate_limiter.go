package infrastructure

import (
	"sync"
	"time"
)

// RateLimiter is a sliding-window limiter keyed by caller-chosen strings
// (the account service keys it by login email).
type RateLimiter struct {
	attempts map[string][]time.Time
	window   time.Duration
	limit    int
	mutex    sync.Mutex
}

func NewRateLimiter(window time.Duration, limit int) *RateLimiter {
	rl := &RateLimiter{
		attempts: make(map[string][]time.Time),
		window:   window,
		limit:    limit,
	}

	go rl.cleanupStaleEntries()
	return rl
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	recent := rl.prune(rl.attempts[key], now)

	if len(recent) >= rl.limit {
		rl.attempts[key] = recent
		return false
	}

	rl.attempts[key] = append(recent, now)
	return true
}

func (rl *RateLimiter) prune(attempts []time.Time, now time.Time) []time.Time {
	windowStart := now.Add(-rl.window)
	var recent []time.Time
	for _, at := range attempts {
		if at.After(windowStart) {
			recent = append(recent, at)
		}
	}
	return recent
}

func (rl *RateLimiter) cleanupStaleEntries() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		rl.mutex.Lock()
		now := time.Now()
		for key, attempts := range rl.attempts {
			recent := rl.prune(attempts, now)
			if len(recent) == 0 {
				delete(rl.attempts, key)
			} else {
				rl.attempts[key] = recent
			}
		}
		rl.mutex.Unlock()
	}
}
