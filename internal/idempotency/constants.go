package idempotency

import "time"

// CacheSchemaVersion is bumped when the cached record layout changes so stale entries are ignored
const CacheSchemaVersion = "1"

const (
	// DefaultSize is the LRU capacity used when none is configured
	DefaultSize = 10000
	// DefaultTTL is how long a completed operation stays replayable from the cache
	DefaultTTL = 24 * time.Hour
	// RedisKeyPrefix namespaces the cache keys in a shared Redis
	RedisKeyPrefix = "cs2:op:"
	// KeySeparator joins account and request IDs
	KeySeparator = ":"
)

const (
	ErrMsgRedisGetFailed   = "failed to read cached operation"
	ErrMsgRedisSetFailed   = "failed to cache operation"
	ErrMsgDecodeFailed     = "failed to decode cached operation"
	ErrMsgEncodeFailed     = "failed to encode cached operation"
	LogMsgCacheVersionSkew = "Ignoring cached operation with old schema version"
)
