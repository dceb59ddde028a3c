// Package memory is an in-process implementation of repository.Store.
//
// A transaction locks each account it touches until it ends, keeps its
// writes in a private overlay and applies only those rows on Commit.
// Transactions on different accounts run concurrently. Reads outside a
// transaction only ever see committed state.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/concurrency"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/repository"
)

type opKey struct {
	accountID string
	requestID string
}

type state struct {
	accounts map[string]domain.Account
	items    map[uuid.UUID]domain.OwnedItem
	ops      map[opKey]domain.OperationRecord

	// owners indexes items by account
	owners map[string]map[uuid.UUID]struct{}
}

func newState() *state {
	return &state{
		accounts: make(map[string]domain.Account),
		items:    make(map[uuid.UUID]domain.OwnedItem),
		ops:      make(map[opKey]domain.OperationRecord),
		owners:   make(map[string]map[uuid.UUID]struct{}),
	}
}

func (s *state) putItem(it domain.OwnedItem) {
	s.items[it.InstanceID] = it
	ids, ok := s.owners[it.AccountID]
	if !ok {
		ids = make(map[uuid.UUID]struct{})
		s.owners[it.AccountID] = ids
	}
	ids[it.InstanceID] = struct{}{}
}

func (s *state) deleteItem(id uuid.UUID) {
	it, ok := s.items[id]
	if !ok {
		return
	}
	delete(s.items, id)
	if ids := s.owners[it.AccountID]; ids != nil {
		delete(ids, id)
		if len(ids) == 0 {
			delete(s.owners, it.AccountID)
		}
	}
}

// Store keeps accounts, owned items and operation records in maps
type Store struct {
	mu    sync.RWMutex
	state *state

	// locks holds the accounts touched by open transactions
	locks *concurrency.LockManager
	now   func() time.Time
}

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{
		state: newState(),
		locks: concurrency.NewLockManager(),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// BeginTx opens a transaction. Account locks are taken lazily by the first
// statement that touches an account.
func (s *Store) BeginTx(ctx context.Context) (repository.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConcurrentConflict, err)
	}
	return &Tx{
		store:    s,
		held:     make(map[string]func()),
		accounts: make(map[string]domain.Account),
		items:    make(map[uuid.UUID]*domain.OwnedItem),
		ops:      make(map[opKey]domain.OperationRecord),
	}, nil
}

// CreateAccount inserts the account if it does not exist and returns it
func (s *Store) CreateAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	if acct, err := s.GetAccount(ctx, accountID); err == nil {
		return acct, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.state.accounts[accountID]
	if !ok {
		now := s.now()
		acct = domain.Account{ID: accountID, CreatedAt: now, UpdatedAt: now}
		s.state.accounts[accountID] = acct
	}
	return &acct, nil
}

// GetAccount returns domain.ErrAccountNotFound when the account does not exist
func (s *Store) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acct, ok := s.state.accounts[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &acct, nil
}

// ListOwnedItems returns the account's inventory, oldest first
func (s *Store) ListOwnedItems(ctx context.Context, accountID string) ([]domain.OwnedItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.itemsOf(accountID), nil
}

// ListOperations returns up to limit records, newest first
func (s *Store) ListOperations(ctx context.Context, accountID string, limit int) ([]domain.OperationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.OperationRecord
	for k, rec := range s.state.ops {
		if k.accountID == accountID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].RequestID < out[j].RequestID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// PurgeOperations deletes operation records older than before
func (s *Store) PurgeOperations(ctx context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for k, rec := range s.state.ops {
		if rec.CreatedAt.Before(before) {
			delete(s.state.ops, k)
			n++
		}
	}
	return n, nil
}

// Ping always succeeds
func (s *Store) Ping(ctx context.Context) error {
	return nil
}

func (s *state) itemsOf(accountID string) []domain.OwnedItem {
	ids := s.owners[accountID]
	out := make([]domain.OwnedItem, 0, len(ids))
	for id := range ids {
		out = append(out, s.items[id])
	}
	sortItems(out)
	return out
}

// sortItems orders items oldest first
func sortItems(out []domain.OwnedItem) {
	sort.Slice(out, func(i, j int) bool {
		if out[i].AcquiredAt.Equal(out[j].AcquiredAt) {
			return out[i].InstanceID.String() < out[j].InstanceID.String()
		}
		return out[i].AcquiredAt.Before(out[j].AcquiredAt)
	})
}
