package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// MinAPIKeyLength is the shortest API key accepted without a warning
const MinAPIKeyLength = 32

// RequiredEnvVars must always be set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"API_KEY",
}

// RequiredPostgresEnvVars must be set unless STORAGE_DRIVER selects the memory store
var RequiredPostgresEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

// RequiredRedisEnvVars must be set when IDEMPOTENCY_BACKEND selects redis
var RequiredRedisEnvVars = []string{
	"REDIS_ADDR",
}

// placeholderValues are the sample values shipped in .env.example
var placeholderValues = map[string]string{
	"DB_PASSWORD": "change_this_secure_password",
	"API_KEY":     "generate_with_openssl_rand_hex_32",
}

func envIs(key, want string) bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv(key)), want)
}

// requiredVars lists what the selected storage and idempotency backends need
func requiredVars() []string {
	required := append([]string{}, RequiredEnvVars...)
	if !envIs("STORAGE_DRIVER", StorageDriverMemory) {
		required = append(required, RequiredPostgresEnvVars...)
	}
	if envIs("IDEMPOTENCY_BACKEND", IdempotencyBackendRedis) {
		required = append(required, RequiredRedisEnvVars...)
	}
	return required
}

// ValidateEnv checks the raw environment before Load. Every problem found is
// reported, not only the first.
func ValidateEnv() error {
	var errs []error

	switch v := os.Getenv("ENV_SCHEMA_VERSION"); v {
	case ExpectedEnvSchemaVersion:
	case "":
		errs = append(errs, fmt.Errorf("ENV_SCHEMA_VERSION is not set (expected: %s)", ExpectedEnvSchemaVersion))
	default:
		errs = append(errs, fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s; the .env file may be outdated", ExpectedEnvSchemaVersion, v))
	}

	var missing []string
	for _, key := range requiredVars() {
		if key != "ENV_SCHEMA_VERSION" && os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", ")))
	}

	return errors.Join(errs...)
}

// ValidateEnvWithWarnings runs ValidateEnv and also reports settings that work
// but should not reach production
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, key := range []string{"DB_PASSWORD", "API_KEY"} {
		if os.Getenv(key) == placeholderValues[key] {
			warnings = append(warnings, fmt.Sprintf("%s is still the example value; generate one with: openssl rand -hex 32", key))
		}
	}

	if key := os.Getenv("API_KEY"); key != placeholderValues["API_KEY"] && len(key) < MinAPIKeyLength {
		warnings = append(warnings, fmt.Sprintf("API_KEY is shorter than %d characters", MinAPIKeyLength))
	}

	if envIs("STORAGE_DRIVER", StorageDriverMemory) {
		warnings = append(warnings, "STORAGE_DRIVER=memory keeps balances and inventories in process memory; all state is lost on restart")
	}

	return warnings, nil
}
