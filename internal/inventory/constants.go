package inventory

// ============================================================================
// Error Contexts
// ============================================================================

const (
	ErrContextLoadItems   = "failed to load owned items"
	ErrContextDeleteItems = "failed to delete owned items"
	ErrContextInsertItem  = "failed to insert owned item"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgItemsTaken     = "Items removed from inventory"
	LogMsgItemsGranted   = "Items added to inventory"
	LogMsgDeleteMismatch = "Owned item delete count mismatch"
)
