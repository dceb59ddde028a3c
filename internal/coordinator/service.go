// Package coordinator runs every balance and inventory mutation.
//
// An operation moves through Validated, Debited or ItemsRemoved,
// OutcomeComputed, Applied and Committed. Validation failures and lock
// timeouts abort before anything is touched. Past validation the operation
// runs in one store transaction under a context that ignores cancellation,
// so a disconnected client cannot leave a stake taken without its outcome.
package coordinator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/catalog"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/concurrency"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/contract"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/drop"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/event"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/idempotency"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/logger"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/repository"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/upgrade"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/utils"
)

// Service defines the coordinator operations
type Service interface {
	OpenCase(ctx context.Context, req OpenCaseRequest) (*domain.DropOutcome, error)
	Upgrade(ctx context.Context, req UpgradeRequest) (*domain.UpgradeOutcome, error)
	FuseContract(ctx context.Context, req FuseRequest) (*domain.FusionOutcome, error)

	OpenAccount(ctx context.Context, accountID string) (*domain.Account, error)
	Deposit(ctx context.Context, req DepositRequest) (*domain.DepositOutcome, error)
	SellItems(ctx context.Context, req SellRequest) (*domain.SaleOutcome, error)
	SellAll(ctx context.Context, req SellAllRequest) (*domain.SaleOutcome, error)

	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	GetInventory(ctx context.Context, accountID string) ([]domain.OwnedItem, error)
	GetHistory(ctx context.Context, accountID string, limit int) ([]domain.OperationRecord, error)

	Shutdown(ctx context.Context) error
}

// Config tunes a Service. Zero values select the defaults.
type Config struct {
	LockTimeout time.Duration
	// Rand is the uniform [0,1) source shared by every engine
	Rand func() float64
}

type service struct {
	store     repository.Store
	outcomes  catalog.Provider
	cache     idempotency.Store
	bus       event.Bus
	locks     *concurrency.LockManager
	drops     *drop.Engine
	upgrades  *upgrade.Engine
	contracts *contract.Engine

	lockTimeout time.Duration

	inflight sync.WaitGroup
	closed   atomic.Bool
}

// NewService creates a coordinator. cache and bus may be nil.
func NewService(store repository.Store, provider catalog.Provider, cache idempotency.Store, bus event.Bus, cfg Config) Service {
	if cfg.LockTimeout <= 0 {
		cfg.LockTimeout = DefaultLockTimeout
	}
	if cfg.Rand == nil {
		cfg.Rand = utils.RandomFloat
	}
	return &service{
		store:       store,
		outcomes:    provider,
		cache:       cache,
		bus:         bus,
		locks:       concurrency.NewLockManager(),
		drops:       drop.New(cfg.Rand),
		upgrades:    upgrade.New(cfg.Rand),
		contracts:   contract.New(cfg.Rand),
		lockTimeout: cfg.LockTimeout,
	}
}

// operation describes one idempotent mutation of an account
type operation[T any] struct {
	kind      domain.OperationKind
	accountID string
	requestID string
	apply     func(ctx context.Context, tx repository.Tx, requestID string) (*T, error)
	event     func(*T) event.Event
}

// execute runs op under the account lock in a single transaction and records
// its outcome for replay. A request ID seen before returns the stored outcome.
func execute[T any](ctx context.Context, s *service, op operation[T]) (*T, error) {
	if s.closed.Load() {
		return nil, domain.ErrServiceClosed
	}
	s.inflight.Add(1)
	defer s.inflight.Done()

	ctx = logger.WithAttrs(ctx, logger.AttrKeyAccountID, op.accountID, logger.AttrKeyOperation, op.kind)

	if op.requestID == "" {
		op.requestID = uuid.NewString()
	} else if out, ok := replayCached[T](ctx, s, op); ok {
		return out, nil
	}

	lockCtx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	if lockCtx.Err() != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextAcquireLock, domain.ErrConcurrentConflict)
	}
	release, err := s.locks.Acquire(lockCtx, op.accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextAcquireLock, domain.ErrConcurrentConflict)
	}
	defer release()

	tx, err := s.store.BeginTx(lockCtx)
	if err != nil {
		if lockCtx.Err() != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextBeginTx, domain.ErrConcurrentConflict)
		}
		return nil, classify(ErrContextBeginTx, err)
	}

	// From here on the operation completes even if the caller goes away
	ctx = context.WithoutCancel(ctx)
	defer repository.SafeRollback(ctx, tx)

	if err := tx.LockAccount(ctx, op.accountID); err != nil {
		return nil, classify(ErrContextLockAccount, err)
	}

	prior, err := tx.GetOperation(ctx, op.accountID, op.requestID)
	if err != nil {
		return nil, classify(ErrContextLoadOperation, err)
	}
	if prior != nil {
		out, err := decodeRecord[T](prior, op.kind)
		if err != nil {
			return nil, err
		}
		s.remember(ctx, *prior)
		logger.FromContext(ctx).Info(LogMsgOperationReplayed, "op_request_id", op.requestID)
		return out, nil
	}

	out, err := op.apply(ctx, tx, op.requestID)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgOperationAborted, "error", err)
		return nil, classifyOperation(err)
	}

	payload, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextEncodeOutcome, err)
	}
	rec := domain.OperationRecord{
		AccountID: op.accountID,
		RequestID: op.requestID,
		Kind:      op.kind,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
	if err := tx.SaveOperation(ctx, &rec); err != nil {
		return nil, classify(ErrContextSaveOperation, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, classify(ErrContextCommit, err)
	}

	logger.FromContext(ctx).Info(LogMsgOperationCommitted, "op_request_id", op.requestID)

	s.remember(ctx, rec)
	if op.event != nil {
		s.publish(ctx, op.event(out))
	}
	return out, nil
}

// OpenAccount creates an account with a zero balance, or returns the existing one.
// An empty accountID gets a generated one.
func (s *service) OpenAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	if accountID == "" {
		accountID = uuid.NewString()
	}
	acct, err := s.store.CreateAccount(ctx, accountID)
	if err != nil {
		return nil, classify(ErrContextCreateAccount, err)
	}
	logger.FromContext(ctx).Info(LogMsgAccountOpened, "account_id", acct.ID)
	return acct, nil
}

// GetAccount returns the committed account state
func (s *service) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	acct, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, classify(ErrContextGetAccount, err)
	}
	return acct, nil
}

// GetInventory returns the owned items of an existing account, oldest first
func (s *service) GetInventory(ctx context.Context, accountID string) ([]domain.OwnedItem, error) {
	if _, err := s.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	items, err := s.store.ListOwnedItems(ctx, accountID)
	if err != nil {
		return nil, classify(ErrContextListInventory, err)
	}
	return items, nil
}

// GetHistory returns the newest operation records of an account
func (s *service) GetHistory(ctx context.Context, accountID string, limit int) ([]domain.OperationRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	if _, err := s.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	recs, err := s.store.ListOperations(ctx, accountID, limit)
	if err != nil {
		return nil, classify(ErrContextListOperations, err)
	}
	return recs, nil
}

// Shutdown rejects new operations and waits for in-flight ones
func (s *service) Shutdown(ctx context.Context) error {
	s.closed.Store(true)
	logger.FromContext(ctx).Info(LogMsgShutdownWaiting)

	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.FromContext(ctx).Info(LogMsgShutdownComplete)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// knownErrors pass through unchanged; anything else from the store is a persistence failure
var knownErrors = []error{
	domain.ErrInsufficientBalance,
	domain.ErrAccountNotFound,
	domain.ErrInvalidAmount,
	domain.ErrItemNotFound,
	domain.ErrDuplicateSelection,
	domain.ErrNothingToSell,
	domain.ErrInvalidSelectionCount,
	domain.ErrInvalidChanceRange,
	domain.ErrInvalidCaseDefinition,
	domain.ErrEmptyOutcomePool,
	domain.ErrTargetNotUpgrade,
	domain.ErrTargetChanceMismatch,
	domain.ErrCaseNotFound,
	domain.ErrTargetNotFound,
	domain.ErrConcurrentConflict,
	domain.ErrPersistenceFailure,
	domain.ErrRequestIDReused,
}

func isKnown(err error) bool {
	for _, known := range knownErrors {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}

func classify(msg string, err error) error {
	if isKnown(err) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return fmt.Errorf("%s: %w: %w", msg, domain.ErrPersistenceFailure, err)
}

// classifyOperation keeps the context already added by apply
func classifyOperation(err error) error {
	if isKnown(err) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrPersistenceFailure, err)
}
