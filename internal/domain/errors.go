package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Ledger errors
	ErrMsgInsufficientBalance = "insufficient balance"
	ErrMsgAccountNotFound     = "account not found"
	ErrMsgInvalidAmount       = "amount must be positive"

	// Inventory errors
	ErrMsgItemNotFound       = "item not found or not owned"
	ErrMsgDuplicateSelection = "item selected more than once"
	ErrMsgNothingToSell      = "no items to sell"

	// Engine errors
	ErrMsgInvalidSelectionCount = "contract requires between 3 and 10 items"
	ErrMsgInvalidChanceRange    = "upgrade chance must be between 10 and 90"
	ErrMsgInvalidCaseDefinition = "invalid case definition"
	ErrMsgEmptyOutcomePool      = "contract outcome pool is empty"
	ErrMsgTargetNotUpgrade      = "upgrade target must be priced above the source"
	ErrMsgTargetChanceMismatch  = "upgrade chance does not select this target"

	// Catalog errors
	ErrMsgCaseNotFound   = "case not found"
	ErrMsgTargetNotFound = "upgrade target not found"

	// Coordination errors
	ErrMsgConcurrentConflict = "concurrent operation on account, retry"
	ErrMsgPersistenceFailure = "persistence failure"
	ErrMsgRequestIDReused    = "request id already used for a different operation"
	ErrMsgServiceClosed      = "service is shutting down"

	// Transaction errors
	ErrMsgTxClosed = "tx is closed"
)

// Domain errors. Wrap with fmt.Errorf("%s: %w", context, err) and test with errors.Is.
// None of them is raised after a stake has left the account except ErrPersistenceFailure.
var (
	ErrInsufficientBalance = errors.New(ErrMsgInsufficientBalance)
	ErrAccountNotFound     = errors.New(ErrMsgAccountNotFound)
	ErrInvalidAmount       = errors.New(ErrMsgInvalidAmount)

	// ErrItemNotFound covers both absent instances and instances owned by another account
	ErrItemNotFound       = errors.New(ErrMsgItemNotFound)
	ErrDuplicateSelection = errors.New(ErrMsgDuplicateSelection)
	ErrNothingToSell      = errors.New(ErrMsgNothingToSell)

	ErrInvalidSelectionCount = errors.New(ErrMsgInvalidSelectionCount)
	ErrInvalidChanceRange    = errors.New(ErrMsgInvalidChanceRange)
	ErrInvalidCaseDefinition = errors.New(ErrMsgInvalidCaseDefinition)
	ErrEmptyOutcomePool      = errors.New(ErrMsgEmptyOutcomePool)
	ErrTargetNotUpgrade      = errors.New(ErrMsgTargetNotUpgrade)
	ErrTargetChanceMismatch  = errors.New(ErrMsgTargetChanceMismatch)

	ErrCaseNotFound   = errors.New(ErrMsgCaseNotFound)
	ErrTargetNotFound = errors.New(ErrMsgTargetNotFound)

	ErrConcurrentConflict = errors.New(ErrMsgConcurrentConflict)
	ErrPersistenceFailure = errors.New(ErrMsgPersistenceFailure)
	ErrRequestIDReused    = errors.New(ErrMsgRequestIDReused)
	ErrServiceClosed      = errors.New(ErrMsgServiceClosed)

	ErrTxClosed = errors.New(ErrMsgTxClosed)
)
