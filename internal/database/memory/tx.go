package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
)

// Tx reads through to the committed state and buffers its own writes
type Tx struct {
	store *Store

	// held maps each locked account to its release func
	held map[string]func()

	accounts map[string]domain.Account
	// items holds inserted items; a nil entry marks a deleted one
	items  map[uuid.UUID]*domain.OwnedItem
	ops    map[opKey]domain.OperationRecord
	closed bool
}

// LockAccount holds the account until the transaction ends. Waiting past
// ctx returns domain.ErrConcurrentConflict.
func (t *Tx) LockAccount(ctx context.Context, accountID string) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	return t.lock(ctx, accountID)
}

func (t *Tx) lock(ctx context.Context, accountID string) error {
	if _, ok := t.held[accountID]; ok {
		return nil
	}
	release, err := t.store.locks.Acquire(ctx, accountID)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrConcurrentConflict, err)
	}
	t.held[accountID] = release
	return nil
}

// begin checks the transaction is open and locks accountID
func (t *Tx) begin(ctx context.Context, accountID string) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	return t.lock(ctx, accountID)
}

func (t *Tx) account(accountID string) (domain.Account, bool) {
	if acct, ok := t.accounts[accountID]; ok {
		return acct, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	acct, ok := t.store.state.accounts[accountID]
	return acct, ok
}

func (t *Tx) item(id uuid.UUID) (domain.OwnedItem, bool) {
	if it, ok := t.items[id]; ok {
		if it == nil {
			return domain.OwnedItem{}, false
		}
		return *it, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	it, ok := t.store.state.items[id]
	return it, ok
}

func (t *Tx) operation(key opKey) (domain.OperationRecord, bool) {
	if rec, ok := t.ops[key]; ok {
		return rec, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	rec, ok := t.store.state.ops[key]
	return rec, ok
}

func (t *Tx) GetAccountForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	if err := t.begin(ctx, accountID); err != nil {
		return nil, err
	}
	acct, ok := t.account(accountID)
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &acct, nil
}

func (t *Tx) UpdateBalance(ctx context.Context, accountID string, balance, expectedVersion int64) (int64, error) {
	if err := t.begin(ctx, accountID); err != nil {
		return 0, err
	}
	if balance < 0 {
		return 0, domain.ErrInsufficientBalance
	}
	acct, ok := t.account(accountID)
	if !ok || acct.Version != expectedVersion {
		return 0, nil
	}
	acct.Balance = balance
	acct.Version++
	acct.UpdatedAt = t.store.now()
	t.accounts[accountID] = acct
	return 1, nil
}

func (t *Tx) GetOwnedItemsForUpdate(ctx context.Context, accountID string, ids []uuid.UUID) ([]domain.OwnedItem, error) {
	if err := t.begin(ctx, accountID); err != nil {
		return nil, err
	}
	var out []domain.OwnedItem
	for _, id := range ids {
		if it, ok := t.item(id); ok && it.AccountID == accountID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (t *Tx) ListOwnedItemsForUpdate(ctx context.Context, accountID string) ([]domain.OwnedItem, error) {
	if err := t.begin(ctx, accountID); err != nil {
		return nil, err
	}

	t.store.mu.RLock()
	committed := t.store.state.itemsOf(accountID)
	t.store.mu.RUnlock()

	out := committed[:0]
	for _, it := range committed {
		if _, touched := t.items[it.InstanceID]; !touched {
			out = append(out, it)
		}
	}
	for _, it := range t.items {
		if it != nil && it.AccountID == accountID {
			out = append(out, *it)
		}
	}
	sortItems(out)
	return out, nil
}

func (t *Tx) InsertOwnedItem(ctx context.Context, item *domain.OwnedItem) error {
	if err := t.begin(ctx, item.AccountID); err != nil {
		return err
	}
	if _, ok := t.account(item.AccountID); !ok {
		return domain.ErrAccountNotFound
	}
	if _, dup := t.item(item.InstanceID); dup {
		return domain.ErrConcurrentConflict
	}
	it := *item
	t.items[item.InstanceID] = &it
	return nil
}

func (t *Tx) DeleteOwnedItems(ctx context.Context, accountID string, ids []uuid.UUID) (int64, error) {
	if err := t.begin(ctx, accountID); err != nil {
		return 0, err
	}
	var n int64
	for _, id := range ids {
		if it, ok := t.item(id); ok && it.AccountID == accountID {
			t.items[id] = nil
			n++
		}
	}
	return n, nil
}

func (t *Tx) GetOperation(ctx context.Context, accountID, requestID string) (*domain.OperationRecord, error) {
	if err := t.begin(ctx, accountID); err != nil {
		return nil, err
	}
	rec, ok := t.operation(opKey{accountID, requestID})
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (t *Tx) SaveOperation(ctx context.Context, rec *domain.OperationRecord) error {
	if err := t.begin(ctx, rec.AccountID); err != nil {
		return err
	}
	if _, ok := t.account(rec.AccountID); !ok {
		return domain.ErrAccountNotFound
	}
	key := opKey{rec.AccountID, rec.RequestID}
	if _, dup := t.operation(key); dup {
		return domain.ErrConcurrentConflict
	}
	t.ops[key] = *rec
	return nil
}

// Commit applies the rows the transaction wrote
func (t *Tx) Commit(ctx context.Context) error {
	if t.closed {
		return domain.ErrTxClosed
	}

	t.store.mu.Lock()
	st := t.store.state
	for id, acct := range t.accounts {
		st.accounts[id] = acct
	}
	for id, it := range t.items {
		if it == nil {
			st.deleteItem(id)
		} else {
			st.putItem(*it)
		}
	}
	for k, rec := range t.ops {
		st.ops[k] = rec
	}
	t.store.mu.Unlock()

	t.finish()
	return nil
}

// Rollback discards the transaction's writes
func (t *Tx) Rollback(ctx context.Context) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	t.finish()
	return nil
}

func (t *Tx) finish() {
	t.closed = true
	t.accounts, t.items, t.ops = nil, nil, nil
	for _, release := range t.held {
		release()
	}
	t.held = nil
}
