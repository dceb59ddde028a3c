package logger

import (
	"log/slog"
	"strings"
)

// Config selects the handler and the attributes stamped on every record
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// NewConfig builds a Config from application settings
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// DefaultConfig is info-level text output
func DefaultConfig() Config {
	return NewConfig(LogLevelInfo, LogFormatText, DefaultServiceName, DefaultVersion, DefaultEnvironment, false)
}

// LogLevel maps Level onto slog; unknown values mean info
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON reports whether records are written as JSON
func (c Config) IsJSON() bool {
	return strings.EqualFold(strings.TrimSpace(c.Format), LogFormatJSON)
}

// BaseAttributes are added to every record. Empty fields fall back to the package defaults.
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, fallback(c.ServiceName, DefaultServiceName)),
		slog.String(AttrKeyVersion, fallback(c.Version, DefaultVersion)),
		slog.String(AttrKeyEnvironment, fallback(c.Environment, DefaultEnvironment)),
	}
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
