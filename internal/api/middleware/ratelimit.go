package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/phrazzld/jtube/internal/api/shared"
	"golang.org/x/time/rate"
)

// RateLimitMessage is returned to clients that exceed their budget.
const RateLimitMessage = "Too many requests. Please wait a moment and try again."

// KindRateLimited is the error kind of rate-limited JSON responses.
const KindRateLimited = "rate_limited"

// idleLimiterTTL is how long an unused per-client limiter is kept.
const idleLimiterTTL = 10 * time.Minute

// RateLimiter hands out one token bucket per client IP.
type RateLimiter struct {
	limiters *cache.Cache
	limit    rate.Limit
	burst    int
	onReject func()
}

// NewRateLimiter allows requestsPerMinute sustained requests per client with
// the given burst. onReject, when non-nil, is called for every rejection.
func NewRateLimiter(requestsPerMinute, burst int, onReject func()) *RateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters: cache.New(idleLimiterTTL, 2*idleLimiterTTL),
		limit:    rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:    burst,
		onReject: onReject,
	}
}

func (l *RateLimiter) limiterFor(key string) *rate.Limiter {
	if v, ok := l.limiters.Get(key); ok {
		l.limiters.SetDefault(key, v)
		return v.(*rate.Limiter)
	}
	lim := rate.NewLimiter(l.limit, l.burst)
	if err := l.limiters.Add(key, lim, cache.DefaultExpiration); err != nil {
		// Another request created it first.
		if v, ok := l.limiters.Get(key); ok {
			return v.(*rate.Limiter)
		}
	}
	return lim
}

// Allow reports whether a request from key may proceed now.
func (l *RateLimiter) Allow(key string) bool {
	return l.limiterFor(key).Allow()
}

// Middleware rejects requests over budget with 429, a Retry-After header and
// a JSON error body.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return l.MiddlewareFunc(respondLimitedJSON)(next)
}

// MiddlewareFunc is Middleware with a custom renderer for rejected requests.
// Retry-After is already set when onLimited runs; onLimited writes the status.
func (l *RateLimiter) MiddlewareFunc(onLimited http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if l.Allow(clientIP(r)) {
				next.ServeHTTP(w, r)
				return
			}

			if l.onReject != nil {
				l.onReject()
			}
			w.Header().Set("Retry-After", strconv.Itoa(l.retryAfterSeconds()))
			onLimited(w, r)
		})
	}
}

func (l *RateLimiter) retryAfterSeconds() int {
	secs := int(time.Duration(float64(time.Second) / float64(l.limit)).Seconds())
	if secs < 1 {
		return 1
	}
	return secs
}

func respondLimitedJSON(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusTooManyRequests, RateLimitMessage, shared.WithKind(KindRateLimited))
}

// clientIP expects chi's RealIP middleware to have normalised RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
