package logger

// Levels accepted by Config.Level
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Formats accepted by Config.Format
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Fallbacks for an empty Config
const (
	DefaultServiceName = "cs2-case-openings"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"
)

// Attribute keys shared by every package that logs
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyAccountID   = "account_id"
	AttrKeyOperation   = "operation"
)
