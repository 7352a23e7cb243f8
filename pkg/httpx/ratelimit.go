package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/sessionauth/pkg/slogx"
	"github.com/caarlos0/env/v11"
	"golang.org/x/time/rate"
)

// RateLimitConfig allows RequestsPerWindow requests per Window for a key,
// with up to Burst requests served back to back.
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

// Profiles. Each can be overridden with RATELIMIT_<NAME>_REQUESTS,
// RATELIMIT_<NAME>_WINDOW_SEC and RATELIMIT_<NAME>_BURST.
var (
	// StrictLimit guards credential checks (authorize, refresh). It is
	// applied with RateLimitFailures there, so only rejected attempts count.
	StrictLimit = RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}
	// ModerateLimit covers authenticated writes.
	ModerateLimit = RateLimitConfig{RequestsPerWindow: 20, Window: time.Minute, Burst: 20}
	// LenientLimit covers authenticated reads.
	LenientLimit = RateLimitConfig{RequestsPerWindow: 100, Window: time.Minute, Burst: 100}
	// PublicLimit covers health probes and docs.
	PublicLimit = RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
)

func init() {
	StrictLimit = ParseRateLimitFromEnv("STRICT", StrictLimit)
	ModerateLimit = ParseRateLimitFromEnv("MODERATE", ModerateLimit)
	LenientLimit = ParseRateLimitFromEnv("LENIENT", LenientLimit)
	PublicLimit = ParseRateLimitFromEnv("PUBLIC", PublicLimit)
}

type rateLimitEnv struct {
	Requests  int `env:"REQUESTS"`
	WindowSec int `env:"WINDOW_SEC"`
	Burst     int `env:"BURST"`
}

// ParseRateLimitFromEnv overlays RATELIMIT_<prefix>_* variables on def.
// Unparseable input discards all overrides; non-positive values are ignored.
func ParseRateLimitFromEnv(prefix string, def RateLimitConfig) RateLimitConfig {
	var raw rateLimitEnv
	if err := env.ParseWithOptions(&raw, env.Options{Prefix: "RATELIMIT_" + prefix + "_"}); err != nil {
		return def
	}

	cfg := def
	if raw.Requests > 0 {
		cfg.RequestsPerWindow = raw.Requests
	}
	if raw.WindowSec > 0 {
		cfg.Window = time.Duration(raw.WindowSec) * time.Second
	}
	if raw.Burst > 0 {
		cfg.Burst = raw.Burst
	}
	return cfg
}

// KeyExtractor groups requests into rate limit buckets. An empty key
// bypasses limiting.
type KeyExtractor func(*http.Request) string

// IPKeyExtractor prefers the first X-Forwarded-For hop, then X-Real-IP, then
// the connection address.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// UserIDKeyExtractor keys on the authenticated user, if any.
func UserIDKeyExtractor(r *http.Request) string {
	p, _ := PrincipalFromContext(r.Context())
	return p.UserID
}

// CompositeKeyExtractor joins the non-empty keys of extractors with sep.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(extractors))
		for _, extract := range extractors {
			if k := extract(r); k != "" {
				parts = append(parts, k)
			}
		}
		return strings.Join(parts, sep)
	}
}

// JSONFieldKeyExtractor keys on a top level string field of a JSON body.
// The body is restored for the downstream handler.
func JSONFieldKeyExtractor(field string) KeyExtractor {
	return func(r *http.Request) string {
		if r.Body == nil {
			return ""
		}
		body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes))
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))
		if err != nil {
			return ""
		}

		var doc map[string]any
		if err := json.Unmarshal(body, &doc); err != nil {
			return ""
		}
		v, _ := doc[field].(string)
		return v
	}
}

// idleAfter is how long a bucket may go unused before it is evicted.
const idleAfter = 10 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type keyedLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	limit     rate.Limit
	burst     int
	lastSweep time.Time
}

func newKeyedLimiter(cfg RateLimitConfig) *keyedLimiter {
	return &keyedLimiter{
		buckets:   make(map[string]*bucket),
		limit:     rate.Limit(float64(cfg.RequestsPerWindow) / cfg.Window.Seconds()),
		burst:     cfg.Burst,
		lastSweep: time.Now(),
	}
}

func (kl *keyedLimiter) bucketFor(key string, now time.Time) *bucket {
	if now.Sub(kl.lastSweep) > idleAfter {
		for k, b := range kl.buckets {
			if now.Sub(b.lastSeen) > idleAfter {
				delete(kl.buckets, k)
			}
		}
		kl.lastSweep = now
	}

	b, ok := kl.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(kl.limit, kl.burst)}
		kl.buckets[key] = b
	}
	b.lastSeen = now
	return b
}

// allow consumes a token for key. When refused it also reports how long
// until the next token is available.
func (kl *keyedLimiter) allow(key string, now time.Time) (bool, time.Duration) {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	b := kl.bucketFor(key, now)
	if b.limiter.AllowN(now, 1) {
		return true, 0
	}
	return false, delay(b.limiter, now)
}

// exhausted reports whether key has no token left without consuming one.
func (kl *keyedLimiter) exhausted(key string, now time.Time) (bool, time.Duration) {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	b := kl.bucketFor(key, now)
	if b.limiter.TokensAt(now) >= 1 {
		return false, 0
	}
	return true, delay(b.limiter, now)
}

func (kl *keyedLimiter) charge(key string, now time.Time) {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	kl.bucketFor(key, now).limiter.AllowN(now, 1)
}

func delay(l *rate.Limiter, now time.Time) time.Duration {
	r := l.ReserveN(now, 1)
	wait := r.DelayFrom(now)
	r.CancelAt(now)
	return wait
}

func writeRateLimited(w http.ResponseWriter, r *http.Request, cfg RateLimitConfig, key string, wait time.Duration) {
	retryAfter := max(int(wait.Seconds()), 1)
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerWindow))
	w.Header().Set("X-RateLimit-Window", cfg.Window.String())

	slogx.FromContext(r.Context()).Warn("rate limit exceeded", "key", key, "retry_after", retryAfter)
	WriteJSON(w, http.StatusTooManyRequests, map[string]string{
		"status":      "RATE_LIMIT_EXCEEDED",
		"description": "Too many requests. Please try again later.",
	})
}

// RateLimitMiddleware rejects requests over cfg with 429 RATE_LIMIT_EXCEEDED.
func RateLimitMiddleware(cfg RateLimitConfig, keyOf KeyExtractor) Middleware {
	kl := newKeyedLimiter(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyOf(r)
			if key == "" {
				slogx.FromContext(r.Context()).Warn("rate limit: no key for request, not limiting")
				next.ServeHTTP(w, r)
				return
			}

			ok, wait := kl.allow(key, time.Now())
			if ok {
				next.ServeHTTP(w, r)
				return
			}
			writeRateLimited(w, r, cfg, key, wait)
		})
	}
}

// RateLimitFailures limits like RateLimitMiddleware but only charges
// requests the handler answers with a 4xx status, so successful requests
// never use up a key's budget. Concurrent failures for one key may overshoot
// the burst by the number in flight.
func RateLimitFailures(cfg RateLimitConfig, keyOf KeyExtractor) Middleware {
	kl := newKeyedLimiter(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyOf(r)
			if key == "" {
				slogx.FromContext(r.Context()).Warn("rate limit: no key for request, not limiting")
				next.ServeHTTP(w, r)
				return
			}

			if blocked, wait := kl.exhausted(key, time.Now()); blocked {
				writeRateLimited(w, r, cfg, key, wait)
				return
			}

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			if sw.status >= 400 && sw.status < 500 {
				kl.charge(key, time.Now())
			}
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, IPKeyExtractor)
}

// RateLimitByUser falls back to the client address for anonymous requests.
func RateLimitByUser(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, CompositeKeyExtractor(":", UserIDKeyExtractor, IPKeyExtractor))
}

// RateLimitByIPAndJSONField buckets on client address plus a body field,
// for example the email of a login attempt.
func RateLimitByIPAndJSONField(cfg RateLimitConfig, field string) Middleware {
	return RateLimitMiddleware(cfg, CompositeKeyExtractor(":", IPKeyExtractor, JSONFieldKeyExtractor(field)))
}

// RateLimitFailuresByIP charges rejected requests to the client address.
func RateLimitFailuresByIP(cfg RateLimitConfig) Middleware {
	return RateLimitFailures(cfg, IPKeyExtractor)
}

// RateLimitFailuresByIPAndJSONField charges rejected requests to the client
// address plus a body field.
func RateLimitFailuresByIPAndJSONField(cfg RateLimitConfig, field string) Middleware {
	return RateLimitFailures(cfg, CompositeKeyExtractor(":", IPKeyExtractor, JSONFieldKeyExtractor(field)))
}
