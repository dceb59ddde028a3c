package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/logger"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Economy event types
const (
	CaseOpened       Type = domain.EventTypeCaseOpened
	ItemUpgraded     Type = domain.EventTypeItemUpgraded
	ContractFused    Type = domain.EventTypeContractFused
	ItemsSold        Type = domain.EventTypeItemsSold
	BalanceDeposited Type = domain.EventTypeBalanceDeposited
)

// Typed event payloads for type safety

// CaseOpenedPayloadV1 is the typed payload for case opened events
type CaseOpenedPayloadV1 struct {
	AccountID string          `json:"account_id"`
	RequestID string          `json:"request_id"`
	CaseID    string          `json:"case_id"`
	Price     int64           `json:"price"`
	Tier      domain.DropTier `json:"tier"`
	ItemID    string          `json:"item_id"`
	ItemPrice int64           `json:"item_price"`
	Rarity    domain.Rarity   `json:"rarity"`
	Timestamp int64           `json:"timestamp"`
}

// ItemUpgradedPayloadV1 is the typed payload for upgrade events.
// It is published for failed trials too.
type ItemUpgradedPayloadV1 struct {
	AccountID   string `json:"account_id"`
	RequestID   string `json:"request_id"`
	Success     bool   `json:"success"`
	Chance      int    `json:"chance"`
	SourcePrice int64  `json:"source_price"`
	TargetID    string `json:"target_id"`
	TargetPrice int64  `json:"target_price"`
	Timestamp   int64  `json:"timestamp"`
}

// ContractFusedPayloadV1 is the typed payload for contract events
type ContractFusedPayloadV1 struct {
	AccountID   string        `json:"account_id"`
	RequestID   string        `json:"request_id"`
	InputCount  int           `json:"input_count"`
	InputValue  int64         `json:"input_value"`
	ResultPrice int64         `json:"result_price"`
	Rarity      domain.Rarity `json:"rarity"`
	Timestamp   int64         `json:"timestamp"`
}

// ItemsSoldPayloadV1 is the typed payload for sale events
type ItemsSoldPayloadV1 struct {
	AccountID string `json:"account_id"`
	RequestID string `json:"request_id"`
	Count     int    `json:"count"`
	Credited  int64  `json:"credited"`
	Timestamp int64  `json:"timestamp"`
}

// BalanceDepositedPayloadV1 is the typed payload for deposit events
type BalanceDepositedPayloadV1 struct {
	AccountID string `json:"account_id"`
	RequestID string `json:"request_id"`
	Amount    int64  `json:"amount"`
	Balance   int64  `json:"balance"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

func accountMetadata(accountID string) map[string]interface{} {
	return map[string]interface{}{MetadataKeyAccountID: accountID}
}

// NewCaseOpenedEvent creates a case opened event from a committed drop
func NewCaseOpenedEvent(accountID string, o *domain.DropOutcome) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CaseOpened,
		Payload: CaseOpenedPayloadV1{
			AccountID: accountID,
			RequestID: o.RequestID,
			CaseID:    o.CaseID,
			Price:     o.Price,
			Tier:      o.Tier,
			ItemID:    o.Item.Item.ID,
			ItemPrice: o.Item.Item.Price,
			Rarity:    o.Item.Item.Rarity,
			Timestamp: time.Now().Unix(),
		},
		Metadata: accountMetadata(accountID),
	}
}

// NewItemUpgradedEvent creates an upgrade event from a committed trial
func NewItemUpgradedEvent(accountID string, o *domain.UpgradeOutcome) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemUpgraded,
		Payload: ItemUpgradedPayloadV1{
			AccountID:   accountID,
			RequestID:   o.RequestID,
			Success:     o.Success,
			Chance:      o.Chance,
			SourcePrice: o.Source.Item.Price,
			TargetID:    o.Target.ID,
			TargetPrice: o.Target.Price,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: accountMetadata(accountID),
	}
}

// NewContractFusedEvent creates a contract event from a committed fusion
func NewContractFusedEvent(accountID string, o *domain.FusionOutcome) Event {
	var inputValue int64
	for _, in := range o.Inputs {
		inputValue += in.Item.Price
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    ContractFused,
		Payload: ContractFusedPayloadV1{
			AccountID:   accountID,
			RequestID:   o.RequestID,
			InputCount:  len(o.Inputs),
			InputValue:  inputValue,
			ResultPrice: o.Result.Item.Price,
			Rarity:      o.Result.Item.Rarity,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: accountMetadata(accountID),
	}
}

// NewItemsSoldEvent creates a sale event
func NewItemsSoldEvent(accountID string, o *domain.SaleOutcome) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemsSold,
		Payload: ItemsSoldPayloadV1{
			AccountID: accountID,
			RequestID: o.RequestID,
			Count:     len(o.Sold),
			Credited:  o.Credited,
			Timestamp: time.Now().Unix(),
		},
		Metadata: accountMetadata(accountID),
	}
}

// NewBalanceDepositedEvent creates a deposit event
func NewBalanceDepositedEvent(accountID string, o *domain.DepositOutcome) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BalanceDeposited,
		Payload: BalanceDepositedPayloadV1{
			AccountID: accountID,
			RequestID: o.RequestID,
			Amount:    o.Amount,
			Balance:   o.Balance,
			Timestamp: time.Now().Unix(),
		},
		Metadata: accountMetadata(accountID),
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			logger.FromContext(ctx).Debug(LogMsgHandlerFailed, "event_type", event.Type, "error", err)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handlers failed for %s: %w", len(errs), event.Type, errors.Join(errs...))
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
