package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/logger"
)

// AuthMiddleware validates the API key on every non-public path
func AuthMiddleware(apiKey string, proxies TrustedProxies, tracker *ClientTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := proxies.ClientIP(r)
				failures := tracker.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip,
					"failures_in_window", failures)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware enforces the per-client request budget and tags the
// request logger with the resolved client IP.
func RateLimitMiddleware(proxies TrustedProxies, tracker *ClientTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := proxies.ClientIP(r)

			if retryAfter, ok := tracker.RecordRequest(ip); !ok {
				w.Header().Set(HeaderRetryAfter, strconv.Itoa(int(retryAfter.Round(time.Second).Seconds())))
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			ctx := logger.WithAttrs(r.Context(), AttrKeyClientIP, ip)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ============================================================================
// Client tracking
// ============================================================================

type clientWindow struct {
	start      time.Time
	requests   int
	failedAuth int
}

// ClientTracker counts requests and failed logins per client IP over a
// fixed window. Entries expire with their window and the number of tracked
// clients is bounded, so a scan from many addresses cannot grow it without limit.
type ClientTracker struct {
	mu          sync.Mutex
	clients     *expirable.LRU[string, *clientWindow]
	window      time.Duration
	maxRequests int
	now         func() time.Time
}

// NewClientTracker creates a tracker with the given window and per-window budget
func NewClientTracker(window time.Duration, maxRequests int) *ClientTracker {
	return &ClientTracker{
		clients:     expirable.NewLRU[string, *clientWindow](MaxTrackedClients, nil, window),
		window:      window,
		maxRequests: maxRequests,
		now:         time.Now,
	}
}

// windowFor returns the live window for ip, starting a new one when the old
// one has elapsed. Caller must hold the mutex.
func (t *ClientTracker) windowFor(ip string) *clientWindow {
	now := t.now()
	cw, ok := t.clients.Get(ip)
	if !ok || now.Sub(cw.start) >= t.window {
		cw = &clientWindow{start: now}
		t.clients.Add(ip, cw)
	}
	return cw
}

// RecordFailedAuth counts a failed authentication and returns the count in the current window
func (t *ClientTracker) RecordFailedAuth(ip string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	cw := t.windowFor(ip)
	cw.failedAuth++
	if cw.failedAuth == FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", cw.failedAuth)
	}
	return cw.failedAuth
}

// RecordRequest counts a request. Once ip is over budget it returns false
// and the time left until its window resets.
func (t *ClientTracker) RecordRequest(ip string) (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cw := t.windowFor(ip)
	cw.requests++
	if cw.requests <= t.maxRequests {
		return 0, true
	}

	if (cw.requests-t.maxRequests)%HighRateLogEvery == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", cw.requests)
	}
	return cw.start.Add(t.window).Sub(t.now()), false
}

// ============================================================================
// Client IP resolution
// ============================================================================

// TrustedProxies lists the peers whose X-Forwarded-For header is believed
type TrustedProxies []netip.Prefix

// ParseTrustedProxies accepts single addresses and CIDR ranges. Invalid
// entries are logged and skipped.
func ParseTrustedProxies(entries []string) TrustedProxies {
	out := make(TrustedProxies, 0, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if prefix, err := netip.ParsePrefix(e); err == nil {
			out = append(out, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(e)
		if err != nil {
			slog.Warn(LogMsgInvalidTrustedProxy, "entry", e, "error", err)
			continue
		}
		out = append(out, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
	}
	return out
}

func (p TrustedProxies) contains(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range p {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// ClientIP resolves the caller's address. X-Forwarded-For is only honored
// when the direct peer is a trusted proxy, and then only its rightmost entry.
func (p TrustedProxies) ClientIP(r *http.Request) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if !p.contains(remoteIP) {
		return remoteIP
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	last := strings.TrimSpace(hops[len(hops)-1])
	if _, err := netip.ParseAddr(last); err != nil {
		return remoteIP
	}
	return last
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			// Outcomes and balances must never be served from a cache
			if strings.HasPrefix(r.URL.Path, APIPrefix) {
				h.Set(HeaderCacheControl, HeaderValueNoStore)
			}

			next.ServeHTTP(w, r)
		})
	}
}
