package ledger

// ============================================================================
// Error Contexts
// ============================================================================

const (
	ErrContextLoadAccount     = "failed to load account"
	ErrContextUpdateBalance   = "failed to update balance"
	ErrContextBalanceOverflow = "credit would overflow balance"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgDebited         = "Balance debited"
	LogMsgCredited        = "Balance credited"
	LogMsgVersionConflict = "Balance version conflict"
)
