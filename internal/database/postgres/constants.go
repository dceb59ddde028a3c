package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"

	// PgErrorCodeCheckViolation is raised when the balance CHECK would go negative
	PgErrorCodeCheckViolation = "23514"

	// PgErrorCodeForeignKeyViolation is raised when a row references a missing account
	PgErrorCodeForeignKeyViolation = "23503"

	PgErrorCodeSerializationFailure = "40001"
	PgErrorCodeDeadlockDetected     = "40P01"
	PgErrorCodeLockNotAvailable     = "55P03"
)

// Advisory lock hashing
const (
	// AccountLockNamespace prefixes account IDs so keys cannot collide with other advisory lock users
	AccountLockNamespace = "account:"
	// HashMaskPositiveInt64 masks the MSB so advisory lock keys are positive int64 values
	HashMaskPositiveInt64 = 0x7FFFFFFFFFFFFFFF
)

// Error Messages
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgAcquireLockFailed         = "failed to acquire advisory lock"
	ErrMsgCreateAccountFailed       = "failed to create account"
	ErrMsgGetAccountFailed          = "failed to get account"
	ErrMsgUpdateBalanceFailed       = "failed to update balance"
	ErrMsgListItemsFailed           = "failed to list owned items"
	ErrMsgScanItemFailed            = "failed to scan owned item"
	ErrMsgInsertItemFailed          = "failed to insert owned item"
	ErrMsgDeleteItemsFailed         = "failed to delete owned items"
	ErrMsgGetOperationFailed        = "failed to get operation"
	ErrMsgSaveOperationFailed       = "failed to save operation"
	ErrMsgListOperationsFailed      = "failed to list operations"
	ErrMsgPurgeOperationsFailed     = "failed to purge operations"
)

// SQL
const (
	SQLAdvisoryLock = "SELECT pg_advisory_xact_lock($1)"

	SQLInsertAccount = `
		INSERT INTO accounts (account_id) VALUES ($1)
		ON CONFLICT (account_id) DO NOTHING`

	SQLSelectAccount = `
		SELECT account_id, balance, version, created_at, updated_at
		FROM accounts WHERE account_id = $1`

	SQLSelectAccountForUpdate = SQLSelectAccount + ` FOR UPDATE`

	SQLUpdateBalance = `
		UPDATE accounts
		SET balance = $2, version = version + 1, updated_at = NOW()
		WHERE account_id = $1 AND version = $3`

	sqlOwnedItemColumns = `instance_id, account_id, item_id, name, price, rarity, wear, source, acquired_at`

	SQLSelectOwnedItems = `
		SELECT ` + sqlOwnedItemColumns + `
		FROM owned_items WHERE account_id = $1
		ORDER BY acquired_at, instance_id`

	SQLSelectOwnedItemsForUpdate = SQLSelectOwnedItems + ` FOR UPDATE`

	SQLSelectOwnedItemsByIDForUpdate = `
		SELECT ` + sqlOwnedItemColumns + `
		FROM owned_items WHERE account_id = $1 AND instance_id = ANY($2::uuid[])
		FOR UPDATE`

	SQLInsertOwnedItem = `
		INSERT INTO owned_items (` + sqlOwnedItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	SQLDeleteOwnedItems = `
		DELETE FROM owned_items WHERE account_id = $1 AND instance_id = ANY($2::uuid[])`

	SQLSelectOperation = `
		SELECT account_id, request_id, kind, payload, created_at
		FROM operations WHERE account_id = $1 AND request_id = $2`

	SQLInsertOperation = `
		INSERT INTO operations (account_id, request_id, kind, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	SQLSelectOperations = `
		SELECT account_id, request_id, kind, payload, created_at
		FROM operations WHERE account_id = $1
		ORDER BY created_at DESC, request_id
		LIMIT $2`

	SQLPurgeOperations = `DELETE FROM operations WHERE created_at < $1`
)
