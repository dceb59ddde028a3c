package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "case.opened")
const (
	// EventTypeCaseOpened is published after a case draw has been committed
	EventTypeCaseOpened = "case.opened"

	// EventTypeItemUpgraded is published after an upgrade trial, successful or not
	EventTypeItemUpgraded = "item.upgraded"

	// EventTypeContractFused is published after a contract fusion has been committed
	EventTypeContractFused = "contract.fused"

	// EventTypeItemsSold is published when owned items are sold back for balance
	EventTypeItemsSold = "items.sold"

	// EventTypeBalanceDeposited is published after a balance top-up
	EventTypeBalanceDeposited = "balance.deposited"
)
