package coordinator

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/catalog"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/database/memory"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/drop"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/event"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/idempotency"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/inventory"
)

func fixed(v float64) func() float64 {
	return func() float64 { return v }
}

type fixture struct {
	svc   Service
	store *memory.Store
	cat   *catalog.Catalog
	bus   *event.MemoryBus
}

func newFixture(t *testing.T, rnd func() float64) *fixture {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	store := memory.NewStore()
	bus := event.NewMemoryBus()
	svc := NewService(store, cat, idempotency.NewLRUStore(100, time.Hour), bus, Config{Rand: rnd})
	return &fixture{svc: svc, store: store, cat: cat, bus: bus}
}

func (f *fixture) account(t *testing.T, id string, balance int64) {
	t.Helper()
	_, err := f.svc.OpenAccount(context.Background(), id)
	require.NoError(t, err)
	if balance > 0 {
		_, err = f.svc.Deposit(context.Background(), DepositRequest{AccountID: id, Amount: balance})
		require.NoError(t, err)
	}
}

// grant puts catalog-less items straight into an account
func (f *fixture) grant(t *testing.T, accountID string, prices ...int64) []uuid.UUID {
	t.Helper()
	ctx := context.Background()
	tx, err := f.store.BeginTx(ctx)
	require.NoError(t, err)

	items := make([]domain.Item, len(prices))
	for i, p := range prices {
		items[i] = domain.Item{ID: "seed", Name: "Seed", Price: p, Rarity: domain.RarityMilSpec}
	}
	owned, err := inventory.Grant(ctx, tx, accountID, domain.SourceCase, items...)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	ids := make([]uuid.UUID, len(owned))
	for i, o := range owned {
		ids[i] = o.InstanceID
	}
	return ids
}

func (f *fixture) balance(t *testing.T, accountID string) int64 {
	t.Helper()
	acct, err := f.svc.GetAccount(context.Background(), accountID)
	require.NoError(t, err)
	return acct.Balance
}

func (f *fixture) inventory(t *testing.T, accountID string) []domain.OwnedItem {
	t.Helper()
	items, err := f.svc.GetInventory(context.Background(), accountID)
	require.NoError(t, err)
	return items
}

func (f *fixture) prism(t *testing.T) domain.Case {
	t.Helper()
	c, err := f.cat.Case("prism")
	require.NoError(t, err)
	return c
}

// =============================================================================
// OpenCase
// =============================================================================

func TestOpenCase_DebitsAndGrants(t *testing.T) {
	f := newFixture(t, fixed(0.005))
	f.account(t, "alice", 500)
	prism := f.prism(t)

	out, err := f.svc.OpenCase(context.Background(), OpenCaseRequest{AccountID: "alice", Case: prism})
	require.NoError(t, err)

	assert.Equal(t, domain.TierJackpot, out.Tier)
	assert.Equal(t, "prism-awp-asiimov", out.Item.Item.ID)
	assert.Equal(t, int64(270), out.Balance)
	assert.Equal(t, "alice", out.Item.AccountID)
	assert.NotEmpty(t, out.RequestID)
	require.Len(t, out.Reel, drop.ReelLength)
	assert.Equal(t, out.Item.Item, out.Reel[drop.ReelWinIndex])

	assert.Equal(t, int64(270), f.balance(t, "alice"))
	items := f.inventory(t, "alice")
	require.Len(t, items, 1)
	assert.Equal(t, out.Item.InstanceID, items[0].InstanceID)
}

func TestOpenCase_InsufficientBalance(t *testing.T) {
	f := newFixture(t, fixed(0.5))
	f.account(t, "alice", 100)

	_, err := f.svc.OpenCase(context.Background(), OpenCaseRequest{AccountID: "alice", Case: f.prism(t)})
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	assert.Equal(t, int64(100), f.balance(t, "alice"))
	assert.Empty(t, f.inventory(t, "alice"))
}

func TestOpenCase_InvalidCase(t *testing.T) {
	f := newFixture(t, fixed(0.5))
	f.account(t, "alice", 1000)

	_, err := f.svc.OpenCase(context.Background(), OpenCaseRequest{
		AccountID: "alice",
		Case:      domain.Case{ID: "empty", Price: 10},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCaseDefinition)
	assert.Equal(t, int64(1000), f.balance(t, "alice"))
}

func TestOpenCase_UnknownAccount(t *testing.T) {
	f := newFixture(t, fixed(0.5))

	_, err := f.svc.OpenCase(context.Background(), OpenCaseRequest{AccountID: "ghost", Case: f.prism(t)})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestOpenCase_ReplaysSameRequest(t *testing.T) {
	f := newFixture(t, nil)
	f.account(t, "alice", 1000)
	req := OpenCaseRequest{RequestID: "req-1", AccountID: "alice", Case: f.prism(t)}

	first, err := f.svc.OpenCase(context.Background(), req)
	require.NoError(t, err)
	second, err := f.svc.OpenCase(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Item.InstanceID, second.Item.InstanceID)
	assert.Equal(t, first.Balance, second.Balance)
	assert.Equal(t, int64(770), f.balance(t, "alice"))
	assert.Len(t, f.inventory(t, "alice"), 1)
}

func TestOpenCase_ReplayWithoutCache(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	store := memory.NewStore()
	svc := NewService(store, cat, nil, nil, Config{})
	ctx := context.Background()

	_, err = svc.OpenAccount(ctx, "alice")
	require.NoError(t, err)
	_, err = svc.Deposit(ctx, DepositRequest{AccountID: "alice", Amount: 500})
	require.NoError(t, err)

	prism, err := cat.Case("prism")
	require.NoError(t, err)
	req := OpenCaseRequest{RequestID: "req-1", AccountID: "alice", Case: prism}

	first, err := svc.OpenCase(ctx, req)
	require.NoError(t, err)
	second, err := svc.OpenCase(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.Item.InstanceID, second.Item.InstanceID)
	acct, err := svc.GetAccount(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(270), acct.Balance)
}

func TestRequestIDReusedForDifferentOperation(t *testing.T) {
	f := newFixture(t, nil)
	f.account(t, "alice", 0)

	_, err := f.svc.Deposit(context.Background(), DepositRequest{RequestID: "shared", AccountID: "alice", Amount: 1000})
	require.NoError(t, err)

	_, err = f.svc.OpenCase(context.Background(), OpenCaseRequest{RequestID: "shared", AccountID: "alice", Case: f.prism(t)})
	assert.ErrorIs(t, err, domain.ErrRequestIDReused)
	assert.Equal(t, int64(1000), f.balance(t, "alice"))
}

func TestOpenCase_ConcurrentRequestsSerialize(t *testing.T) {
	f := newFixture(t, nil)
	prism := f.prism(t)
	f.account(t, "alice", prism.Price)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		failures  []error
	)
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := f.svc.OpenCase(context.Background(), OpenCaseRequest{AccountID: "alice", Case: prism})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
				return
			}
			failures = append(failures, err)
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	for _, err := range failures {
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	}
	assert.Equal(t, int64(0), f.balance(t, "alice"))
	assert.Len(t, f.inventory(t, "alice"), 1)
}

func TestOpenCase_LockTimeout(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	svc := NewService(memory.NewStore(), cat, nil, nil, Config{LockTimeout: 20 * time.Millisecond}).(*service)
	_, err = svc.OpenAccount(context.Background(), "alice")
	require.NoError(t, err)

	release, err := svc.locks.Acquire(context.Background(), "alice")
	require.NoError(t, err)
	defer release()

	_, err = svc.Deposit(context.Background(), DepositRequest{AccountID: "alice", Amount: 10})
	assert.ErrorIs(t, err, domain.ErrConcurrentConflict)
}

func TestOpenCase_PublishesEvent(t *testing.T) {
	f := newFixture(t, fixed(0.3))
	f.account(t, "alice", 500)

	var got []event.Event
	f.bus.Subscribe(event.CaseOpened, func(_ context.Context, evt event.Event) error {
		got = append(got, evt)
		return nil
	})

	out, err := f.svc.OpenCase(context.Background(), OpenCaseRequest{AccountID: "alice", Case: f.prism(t)})
	require.NoError(t, err)

	require.Len(t, got, 1)
	payload := got[0].Payload.(event.CaseOpenedPayloadV1)
	assert.Equal(t, out.RequestID, payload.RequestID)
	assert.Equal(t, out.Item.Item.Price, payload.ItemPrice)
}

func TestOpenCase_SubscriberErrorDoesNotFailOperation(t *testing.T) {
	f := newFixture(t, fixed(0.3))
	f.account(t, "alice", 500)
	f.bus.Subscribe(event.CaseOpened, func(context.Context, event.Event) error {
		return errors.New("subscriber down")
	})

	_, err := f.svc.OpenCase(context.Background(), OpenCaseRequest{AccountID: "alice", Case: f.prism(t)})
	require.NoError(t, err)
	assert.Equal(t, int64(270), f.balance(t, "alice"))
}

func TestOpenCase_CancelledBeforeLock(t *testing.T) {
	f := newFixture(t, fixed(0.3))
	f.account(t, "alice", 500)

	var published bool
	f.bus.Subscribe(event.CaseOpened, func(context.Context, event.Event) error {
		published = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.svc.OpenCase(ctx, OpenCaseRequest{AccountID: "alice", Case: f.prism(t)})
	assert.ErrorIs(t, err, domain.ErrConcurrentConflict)
	assert.False(t, published)
	assert.Equal(t, int64(500), f.balance(t, "alice"))
	assert.Empty(t, f.inventory(t, "alice"))
}

// =============================================================================
// Upgrade
// =============================================================================

func TestUpgrade_Success(t *testing.T) {
	f := newFixture(t, fixed(0))
	f.account(t, "alice", 0)
	ids := f.grant(t, "alice", 120)
	target, err := f.cat.UpgradeTarget("target2")
	require.NoError(t, err)

	out, err := f.svc.Upgrade(context.Background(), UpgradeRequest{
		AccountID:    "alice",
		SourceItemID: ids[0],
		Target:       target,
	})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, 60, out.Chance)
	require.NotNil(t, out.Result)
	assert.Equal(t, target, out.Result.Item)
	assert.Equal(t, domain.SourceUpgrade, out.Result.Source)

	items := f.inventory(t, "alice")
	require.Len(t, items, 1)
	assert.Equal(t, out.Result.InstanceID, items[0].InstanceID)
}

func TestUpgrade_FailureForfeitsSource(t *testing.T) {
	f := newFixture(t, fixed(0.99))
	f.account(t, "alice", 0)
	ids := f.grant(t, "alice", 120)
	target, err := f.cat.UpgradeTarget("target2")
	require.NoError(t, err)

	out, err := f.svc.Upgrade(context.Background(), UpgradeRequest{
		AccountID:    "alice",
		SourceItemID: ids[0],
		Target:       target,
		Chance:       50,
	})
	require.NoError(t, err)

	assert.False(t, out.Success)
	assert.Equal(t, 60, out.Chance)
	assert.Nil(t, out.Result)
	assert.Empty(t, f.inventory(t, "alice"))
	assert.Equal(t, int64(0), f.balance(t, "alice"))
}

func TestUpgrade_RequestedChanceOutOfRange(t *testing.T) {
	f := newFixture(t, fixed(0))
	f.account(t, "alice", 0)
	ids := f.grant(t, "alice", 120)
	target, err := f.cat.UpgradeTarget("target2")
	require.NoError(t, err)

	for _, chance := range []int{5, 9, 91, 100} {
		_, err := f.svc.Upgrade(context.Background(), UpgradeRequest{
			AccountID: "alice", SourceItemID: ids[0], Target: target, Chance: chance,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidChanceRange, "chance %d", chance)
	}
	assert.Len(t, f.inventory(t, "alice"), 1)
}

func TestUpgrade_ChanceRollsAtSelectedTargetPrice(t *testing.T) {
	// 90% from 120 asks for a 133 target; target1 at 150 is closest and prices at 80%
	f := newFixture(t, fixed(0.85))
	f.account(t, "alice", 0)
	ids := f.grant(t, "alice", 120)
	target, err := f.cat.UpgradeTarget("target1")
	require.NoError(t, err)

	out, err := f.svc.Upgrade(context.Background(), UpgradeRequest{
		AccountID: "alice", SourceItemID: ids[0], Target: target, Chance: 90,
	})
	require.NoError(t, err)

	assert.Equal(t, 80, out.Chance)
	assert.False(t, out.Success)
	assert.Empty(t, f.inventory(t, "alice"))
}

func TestUpgrade_ChanceNotMatchingTarget(t *testing.T) {
	f := newFixture(t, fixed(0.85))
	f.account(t, "alice", 0)
	ids := f.grant(t, "alice", 10)
	knife, err := f.cat.UpgradeTarget("target5")
	require.NoError(t, err)

	var published bool
	f.bus.Subscribe(event.ItemUpgraded, func(context.Context, event.Event) error {
		published = true
		return nil
	})

	_, err = f.svc.Upgrade(context.Background(), UpgradeRequest{
		AccountID: "alice", SourceItemID: ids[0], Target: knife, Chance: 90,
	})
	assert.ErrorIs(t, err, domain.ErrTargetChanceMismatch)
	assert.False(t, published)

	items := f.inventory(t, "alice")
	require.Len(t, items, 1)
	assert.Equal(t, ids[0], items[0].InstanceID)
}

func TestUpgrade_TargetNotAboveSource(t *testing.T) {
	f := newFixture(t, fixed(0))
	f.account(t, "alice", 0)
	ids := f.grant(t, "alice", 200, 300)
	target, err := f.cat.UpgradeTarget("target2")
	require.NoError(t, err)

	for _, id := range ids {
		_, err := f.svc.Upgrade(context.Background(), UpgradeRequest{AccountID: "alice", SourceItemID: id, Target: target})
		assert.ErrorIs(t, err, domain.ErrTargetNotUpgrade)
	}
	assert.Len(t, f.inventory(t, "alice"), 2)
}

func TestUpgrade_DerivedChanceBelowMinimum(t *testing.T) {
	f := newFixture(t, fixed(0))
	f.account(t, "alice", 0)
	ids := f.grant(t, "alice", 50)
	target, err := f.cat.UpgradeTarget("target5")
	require.NoError(t, err)

	_, err = f.svc.Upgrade(context.Background(), UpgradeRequest{AccountID: "alice", SourceItemID: ids[0], Target: target})
	assert.ErrorIs(t, err, domain.ErrInvalidChanceRange)
	assert.Len(t, f.inventory(t, "alice"), 1)
}

func TestUpgrade_ItemOwnedByAnotherAccount(t *testing.T) {
	f := newFixture(t, fixed(0))
	f.account(t, "alice", 0)
	f.account(t, "bob", 0)
	bobs := f.grant(t, "bob", 120)
	target, err := f.cat.UpgradeTarget("target2")
	require.NoError(t, err)

	_, err = f.svc.Upgrade(context.Background(), UpgradeRequest{AccountID: "alice", SourceItemID: bobs[0], Target: target})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Len(t, f.inventory(t, "bob"), 1)
}

func TestUpgrade_MissingTarget(t *testing.T) {
	f := newFixture(t, fixed(0))
	_, err := f.svc.Upgrade(context.Background(), UpgradeRequest{AccountID: "alice", SourceItemID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrTargetNotFound)
}

// =============================================================================
// FuseContract
// =============================================================================

func TestFuseContract_RemovesInputsAddsOne(t *testing.T) {
	f := newFixture(t, fixed(0))
	f.account(t, "alice", 0)
	ids := f.grant(t, "alice", 1000, 1000, 1000, 1000, 1000, 1000, 1000, 1000, 1000, 1000)
	keep := f.grant(t, "alice", 5)

	out, err := f.svc.FuseContract(context.Background(), FuseRequest{AccountID: "alice", ItemIDs: ids})
	require.NoError(t, err)

	assert.Equal(t, int64(1620), out.Result.Item.Price)
	assert.Equal(t, domain.RarityCovert, out.Result.Item.Rarity)
	assert.Equal(t, "AWP | Lightning Strike", out.Result.Item.Name)
	assert.Len(t, out.Inputs, 10)
	assert.InDelta(t, 1.35, out.Bonus, 1e-9)

	items := f.inventory(t, "alice")
	require.Len(t, items, 2)
	got := []uuid.UUID{items[0].InstanceID, items[1].InstanceID}
	assert.ElementsMatch(t, []uuid.UUID{keep[0], out.Result.InstanceID}, got)
}

func TestFuseContract_MinimumInputsFallsBackToWholePool(t *testing.T) {
	f := newFixture(t, fixed(0))
	f.account(t, "alice", 0)
	ids := f.grant(t, "alice", 100, 100, 100)

	out, err := f.svc.FuseContract(context.Background(), FuseRequest{AccountID: "alice", ItemIDs: ids})
	require.NoError(t, err)

	// The default pool has no mil-spec outcome
	assert.Equal(t, int64(120), out.Result.Item.Price)
	assert.Equal(t, f.cat.ContractOutcomes()[0].Name, out.Result.Item.Name)
	assert.Equal(t, f.cat.ContractOutcomes()[0].ID, out.Result.Item.ID)
}

func TestFuseContract_SelectionErrors(t *testing.T) {
	f := newFixture(t, fixed(0))
	f.account(t, "alice", 0)
	ids := f.grant(t, "alice", 100, 100, 100)

	_, err := f.svc.FuseContract(context.Background(), FuseRequest{AccountID: "alice", ItemIDs: ids[:2]})
	assert.ErrorIs(t, err, domain.ErrInvalidSelectionCount)

	_, err = f.svc.FuseContract(context.Background(), FuseRequest{AccountID: "alice", ItemIDs: []uuid.UUID{ids[0], ids[0], ids[1]}})
	assert.ErrorIs(t, err, domain.ErrDuplicateSelection)

	_, err = f.svc.FuseContract(context.Background(), FuseRequest{AccountID: "alice", ItemIDs: []uuid.UUID{ids[0], ids[1], uuid.New()}})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	assert.Len(t, f.inventory(t, "alice"), 3, "failed fusions must not remove anything")
}

// =============================================================================
// Sell, Deposit, History
// =============================================================================

func TestSellItems(t *testing.T) {
	f := newFixture(t, nil)
	f.account(t, "alice", 10)
	ids := f.grant(t, "alice", 300, 450, 800)

	out, err := f.svc.SellItems(context.Background(), SellRequest{AccountID: "alice", ItemIDs: ids[:2]})
	require.NoError(t, err)

	assert.Equal(t, int64(750), out.Credited)
	assert.Equal(t, int64(760), out.Balance)
	assert.Len(t, out.Sold, 2)
	assert.Len(t, f.inventory(t, "alice"), 1)
}

func TestSellAll(t *testing.T) {
	f := newFixture(t, nil)
	f.account(t, "alice", 0)
	f.grant(t, "alice", 300, 450, 800)

	out, err := f.svc.SellAll(context.Background(), SellAllRequest{AccountID: "alice"})
	require.NoError(t, err)
	assert.Equal(t, int64(1550), out.Credited)
	assert.Empty(t, f.inventory(t, "alice"))

	_, err = f.svc.SellAll(context.Background(), SellAllRequest{AccountID: "alice"})
	assert.ErrorIs(t, err, domain.ErrNothingToSell)
}

func TestSellItems_Empty(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.svc.SellItems(context.Background(), SellRequest{AccountID: "alice"})
	assert.ErrorIs(t, err, domain.ErrNothingToSell)
}

func TestDeposit_InvalidAmount(t *testing.T) {
	f := newFixture(t, nil)
	f.account(t, "alice", 0)
	for _, amount := range []int64{0, -5} {
		_, err := f.svc.Deposit(context.Background(), DepositRequest{AccountID: "alice", Amount: amount})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	}
}

func TestDeposit_BalanceOverflow(t *testing.T) {
	f := newFixture(t, nil)
	f.account(t, "alice", math.MaxInt64-5)

	_, err := f.svc.Deposit(context.Background(), DepositRequest{AccountID: "alice", Amount: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.Equal(t, int64(math.MaxInt64-5), f.balance(t, "alice"))
}

func TestOpenAccount_GeneratesID(t *testing.T) {
	f := newFixture(t, nil)
	acct, err := f.svc.OpenAccount(context.Background(), "")
	require.NoError(t, err)
	_, err = uuid.Parse(acct.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), acct.Balance)
}

func TestGetHistory_NewestFirst(t *testing.T) {
	f := newFixture(t, fixed(0.3))
	f.account(t, "alice", 1000)
	_, err := f.svc.OpenCase(context.Background(), OpenCaseRequest{AccountID: "alice", Case: f.prism(t)})
	require.NoError(t, err)

	recs, err := f.svc.GetHistory(context.Background(), "alice", 0)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, domain.OperationOpenCase, recs[0].Kind)
	assert.Equal(t, domain.OperationDeposit, recs[1].Kind)

	recs, err = f.svc.GetHistory(context.Background(), "alice", 1)
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	_, err = f.svc.GetHistory(context.Background(), "ghost", 10)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestShutdown_RejectsNewOperations(t *testing.T) {
	f := newFixture(t, nil)
	f.account(t, "alice", 0)

	require.NoError(t, f.svc.Shutdown(context.Background()))

	_, err := f.svc.Deposit(context.Background(), DepositRequest{AccountID: "alice", Amount: 10})
	assert.ErrorIs(t, err, domain.ErrServiceClosed)
}

// =============================================================================
// Store failures
// =============================================================================

func TestOpenCase_CommitFailureIsPersistenceFailure(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	store := new(MockStore)
	tx := new(MockTx)
	svc := NewService(store, cat, nil, nil, Config{Rand: fixed(0.3)})
	prism, err := cat.Case("prism")
	require.NoError(t, err)

	store.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("LockAccount", mock.Anything, "alice").Return(nil)
	tx.On("GetOperation", mock.Anything, "alice", "req-1").Return(nil, nil)
	tx.On("GetAccountForUpdate", mock.Anything, "alice").Return(&domain.Account{ID: "alice", Balance: 500, Version: 3}, nil)
	tx.On("UpdateBalance", mock.Anything, "alice", int64(270), int64(3)).Return(int64(1), nil)
	tx.On("InsertOwnedItem", mock.Anything, mock.Anything).Return(nil)
	tx.On("SaveOperation", mock.Anything, mock.MatchedBy(func(rec *domain.OperationRecord) bool {
		return rec.Kind == domain.OperationOpenCase && rec.RequestID == "req-1"
	})).Return(nil)
	tx.On("Commit", mock.Anything).Return(errors.New("connection reset by peer"))
	tx.On("Rollback", mock.Anything).Return(nil)

	_, err = svc.OpenCase(context.Background(), OpenCaseRequest{RequestID: "req-1", AccountID: "alice", Case: prism})

	assert.ErrorIs(t, err, domain.ErrPersistenceFailure)
	tx.AssertCalled(t, "Rollback", mock.Anything)
	store.AssertExpectations(t)
}

func TestOpenCase_SerializationFailurePassesThrough(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	store := new(MockStore)
	tx := new(MockTx)
	svc := NewService(store, cat, nil, nil, Config{})
	prism, err := cat.Case("prism")
	require.NoError(t, err)

	store.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("LockAccount", mock.Anything, "alice").Return(domain.ErrConcurrentConflict)
	tx.On("Rollback", mock.Anything).Return(nil)

	_, err = svc.OpenCase(context.Background(), OpenCaseRequest{AccountID: "alice", Case: prism})

	assert.ErrorIs(t, err, domain.ErrConcurrentConflict)
	assert.NotErrorIs(t, err, domain.ErrPersistenceFailure)
	tx.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetAccount_StoreFailure(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	store := new(MockStore)
	svc := NewService(store, cat, nil, nil, Config{})

	store.On("GetAccount", mock.Anything, "alice").Return(nil, errors.New("pool closed"))

	_, err = svc.GetAccount(context.Background(), "alice")
	assert.ErrorIs(t, err, domain.ErrPersistenceFailure)
}
