package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/dmitrymomot/spellbook/core/handler"
)

// RateLimitConfig configures the rate limiting tween.
type RateLimitConfig[S any] struct {
	// Skip defines a function to skip tween execution for specific requests
	Skip func(ctx handler.Context[S]) bool
	// Rate is the sustained number of requests per second allowed per key
	Rate rate.Limit
	// Burst is the bucket capacity per key (default: 1)
	Burst int
	// KeyExtractor defines how to extract the rate limiting key from requests (default: client IP)
	KeyExtractor func(ctx handler.Context[S]) string
	// ErrorHandler builds the response for rejected requests (default: 429 with body "Too Many Requests")
	ErrorHandler func(ctx handler.Context[S], retryAfter time.Duration) handler.Response
	// Now is the clock used for reservations and eviction (default: time.Now)
	Now func() time.Time
	// IdleTTL drops limiters not used for this long (default: 10m).
	// Raised to the time a bucket needs to refill completely, so idle eviction never grants extra tokens.
	IdleTTL time.Duration
	// MaxKeys bounds the number of tracked keys (default: 10000).
	// When full, the least recently used key is dropped to make room.
	MaxKeys int
}

const (
	defaultRateLimitIdleTTL = 10 * time.Minute
	defaultRateLimitMaxKeys = 10000
)

// RateLimit creates a token bucket rate limiting tween keyed by client IP
// unless configured otherwise. Rejected requests never reach the rest of
// the chain and carry a Retry-After header in whole seconds.
// Panics if Rate is not positive.
//
//	r.Use(middleware.RateLimit(middleware.RateLimitConfig[AppState]{
//		Rate:  rate.Every(time.Second),
//		Burst: 10,
//	}))
func RateLimit[S any](cfg RateLimitConfig[S]) handler.Tween[S] {
	if cfg.Rate <= 0 {
		panic("ratelimit tween: rate must be positive")
	}

	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	if cfg.KeyExtractor == nil {
		cfg.KeyExtractor = func(ctx handler.Context[S]) string {
			return clientIP(ctx.Request())
		}
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(_ handler.Context[S], _ time.Duration) handler.Response {
			return handler.Text(http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
		}
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = defaultRateLimitIdleTTL
	}

	if cfg.MaxKeys <= 0 {
		cfg.MaxKeys = defaultRateLimitMaxKeys
	}

	limiters := newLimiterSet(cfg.Rate, cfg.Burst, cfg.IdleTTL, cfg.MaxKeys)

	return func(ctx handler.Context[S], next handler.Next[S]) (handler.Response, error) {
		if ctx.Request() == nil || (cfg.Skip != nil && cfg.Skip(ctx)) {
			return next(ctx)
		}

		now := cfg.Now()
		res := limiters.get(cfg.KeyExtractor(ctx), now).ReserveN(now, 1)
		if delay := res.DelayFrom(now); delay > 0 {
			// give the token back so rejected requests do not push the window further out
			res.CancelAt(now)
			return cfg.ErrorHandler(ctx, delay).
				WithHeader("Retry-After", strconv.Itoa(retryAfterSeconds(delay))), nil
		}

		return next(ctx)
	}
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterSet holds one limiter per key. Stale entries are swept at most once
// per idle TTL, on the request path, using the tween's clock.
type limiterSet struct {
	mu        sync.Mutex
	rate      rate.Limit
	burst     int
	idleTTL   time.Duration
	maxKeys   int
	lastSweep time.Time
	entries   map[string]*limiterEntry
}

func newLimiterSet(r rate.Limit, burst int, idleTTL time.Duration, maxKeys int) *limiterSet {
	return &limiterSet{
		rate:    r,
		burst:   burst,
		idleTTL: max(idleTTL, refillDuration(r, burst)),
		maxKeys: maxKeys,
		entries: make(map[string]*limiterEntry),
	}
}

func (s *limiterSet) get(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) >= s.idleTTL {
		s.sweep(now)
	}

	e, ok := s.entries[key]
	if !ok {
		if len(s.entries) >= s.maxKeys {
			s.evictOldest()
		}
		e = &limiterEntry{limiter: rate.NewLimiter(s.rate, s.burst)}
		s.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter
}

func (s *limiterSet) sweep(now time.Time) {
	for key, e := range s.entries {
		if now.Sub(e.lastSeen) >= s.idleTTL {
			delete(s.entries, key)
		}
	}
	s.lastSweep = now
}

func (s *limiterSet) evictOldest() {
	var (
		oldestKey string
		oldest    time.Time
		found     bool
	)
	for key, e := range s.entries {
		if !found || e.lastSeen.Before(oldest) {
			oldestKey, oldest, found = key, e.lastSeen, true
		}
	}
	if found {
		delete(s.entries, oldestKey)
	}
}

func (s *limiterSet) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// refillDuration is how long an empty bucket takes to fill up again.
func refillDuration(r rate.Limit, burst int) time.Duration {
	if r == rate.Inf {
		return 0
	}
	secs := float64(burst) / float64(r)
	if secs >= float64(math.MaxInt64)/float64(time.Second) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(secs * float64(time.Second))
}

// retryAfterSeconds rounds up so clients never retry early.
func retryAfterSeconds(d time.Duration) int {
	return max(1, int(math.Ceil(d.Seconds())))
}
