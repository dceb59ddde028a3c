package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopping   = "Server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgPanicRecovered   = "Panic recovered"

	LogMsgInvalidTrustedProxy = "Ignoring invalid trusted proxy entry"
)

// AttrKeyClientIP tags request logs with the resolved caller address
const AttrKeyClientIP = "client_ip"

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRequestID      = "X-Request-ID"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderCacheControl   = "Cache-Control"
	HeaderRetryAfter     = "Retry-After"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
	HeaderValueNoStore              = "no-store"
)

// Public path prefixes that bypass authentication
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/metrics",
	"/version",
}

// Unlogged path prefixes; probes and scrapes would drown the request log
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

// ============================================================================
// Limits
// ============================================================================

const (
	// DefaultMaxBodyBytes caps request bodies
	DefaultMaxBodyBytes = 1 << 20

	// ReadHeaderTimeout bounds slow clients sending headers
	ReadHeaderTimeout = 5 * time.Second

	// ClientWindow is the period after which per-IP counters reset
	ClientWindow = 5 * time.Minute

	// MaxTrackedClients bounds the number of IPs counted at once
	MaxTrackedClients = 10000

	// MaxRequestsPerWindow is the per-IP request budget inside one window
	MaxRequestsPerWindow = 1000

	// FailedAuthAlertThreshold is the failed-auth count per IP that raises an alert
	FailedAuthAlertThreshold = 5

	// HighRateLogEvery throttles the high-rate alert to one log per this many requests
	HighRateLogEvery = 100
)
