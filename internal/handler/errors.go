package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path and query parameter error messages
	ErrMsgMissingPathParam = "Missing %s path parameter"
	ErrMsgInvalidLimit     = "Invalid limit parameter"
	ErrMsgInvalidItemID    = "Invalid item id"
	ErrMsgQuoteNoTarget    = "No upgrade target fits that item"
)

// Success messages for API responses
const (
	MsgAccountOpened = "Account opened"
)

// Action names used in logs
const (
	ActionOpenCase      = "Open case"
	ActionUpgrade       = "Upgrade item"
	ActionUpgradeQuote  = "Upgrade quote"
	ActionFuseContract  = "Fuse contract"
	ActionOpenAccount   = "Open account"
	ActionDeposit       = "Deposit"
	ActionSellItems     = "Sell items"
	ActionSellAll       = "Sell all"
	ActionGetAccount    = "Get account"
	ActionGetInventory  = "Get inventory"
	ActionGetHistory    = "Get history"
	ActionGetCase       = "Get case"
	ActionGetCases      = "Get cases"
	ActionGetTargets    = "Get upgrade targets"
	ActionGetOutcomes   = "Get contract outcomes"
	ActionReadinessPing = "Readiness check"
)

// Header and path parameter names
const (
	HeaderIdempotencyKey = "Idempotency-Key"
	ParamCaseID          = "caseID"
	ParamAccountID       = "accountID"
	QueryLimit           = "limit"
)

// Health responses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgStoreDown      = "store unreachable"
)
