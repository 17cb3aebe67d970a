package contact

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// IPLimiter applies a token bucket per client IP. Entries idle for longer
// than pruneAfter are dropped on the next Allow call so the map does not
// grow without bound.
type IPLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	entries   map[string]*ipEntry
	lastPrune time.Time
}

type ipEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const pruneAfter = 10 * time.Minute

func NewIPLimiter(perMinute, burst int) *IPLimiter {
	return &IPLimiter{
		limit:     rate.Limit(float64(perMinute) / 60.0),
		burst:     burst,
		entries:   make(map[string]*ipEntry),
		lastPrune: time.Now(),
	}
}

func (l *IPLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.lastPrune) > pruneAfter {
		for k, e := range l.entries {
			if now.Sub(e.lastSeen) > pruneAfter {
				delete(l.entries, k)
			}
		}
		l.lastPrune = now
	}

	e, ok := l.entries[ip]
	if !ok {
		e = &ipEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[ip] = e
	}
	e.lastSeen = now

	return e.limiter.Allow()
}
