package domain

import (
	"encoding/json"
	"time"
)

// DropTier identifies which band of the case distribution a draw landed in
type DropTier string

const (
	TierJackpot DropTier = "jackpot" // 1%: most expensive item
	TierPremium DropTier = "premium" // 9%: one of the two most expensive
	TierMid     DropTier = "mid"     // 40%: above case price, below 5x
	TierCommon  DropTier = "common"  // 50%: below 3x case price
)

// DropOutcome is the result of opening a case
type DropOutcome struct {
	RequestID string    `json:"request_id"`
	CaseID    string    `json:"case_id"`
	Price     int64     `json:"price"`
	Tier      DropTier  `json:"tier"`
	Item      OwnedItem `json:"item"`
	Balance   int64     `json:"balance"`
	Reel      []Item    `json:"reel,omitempty"`
}

// UpgradeOutcome is the result of a single upgrade trial.
// Result is nil when the trial failed; the source is forfeit either way.
type UpgradeOutcome struct {
	RequestID string     `json:"request_id"`
	Success   bool       `json:"success"`
	Chance    int        `json:"chance"`
	Roll      float64    `json:"roll"`
	Source    OwnedItem  `json:"source"`
	Target    Item       `json:"target"`
	Result    *OwnedItem `json:"result,omitempty"`
}

// FusionOutcome is the result of a contract fusion
type FusionOutcome struct {
	RequestID    string      `json:"request_id"`
	Inputs       []OwnedItem `json:"inputs"`
	Result       OwnedItem   `json:"result"`
	AveragePrice float64     `json:"average_price"`
	Bonus        float64     `json:"bonus"`
}

// SaleOutcome is the result of selling owned items back for their price
type SaleOutcome struct {
	RequestID string      `json:"request_id"`
	Sold      []OwnedItem `json:"sold"`
	Credited  int64       `json:"credited"`
	Balance   int64       `json:"balance"`
}

// DepositOutcome is the result of a balance top-up
type DepositOutcome struct {
	RequestID string `json:"request_id"`
	Amount    int64  `json:"amount"`
	Balance   int64  `json:"balance"`
}

// OperationKind names a mutating coordinator operation
type OperationKind string

const (
	OperationOpenCase OperationKind = "open_case"
	OperationUpgrade  OperationKind = "upgrade"
	OperationContract OperationKind = "contract"
	OperationSell     OperationKind = "sell"
	OperationDeposit  OperationKind = "deposit"
)

// OperationRecord is a committed outcome keyed by (account, request).
// It backs idempotent replay and the account history.
type OperationRecord struct {
	AccountID string          `json:"account_id" db:"account_id"`
	RequestID string          `json:"request_id" db:"request_id"`
	Kind      OperationKind   `json:"kind" db:"kind"`
	Payload   json.RawMessage `json:"payload" db:"payload"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}
