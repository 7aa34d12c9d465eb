package account

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/time"
)

func newStoreUseCase(store *memoryStore, policy Policy) *AccountUseCase {
	return NewAccountUseCase(store, timeadapter.NewRealTimeProvider(), logger.NewNopLogger(), policy)
}

func TestLedger_SavingsWalkthrough(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(7)
	uc := newStoreUseCase(store, DefaultPolicy())

	created, err := uc.CreateAccount(ctx, 7, usecase.CreateAccountInput{
		Name: "Savings", AccountNumber: "001", Amount: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	assert.Equal(t, "100.00", created.GetBalance())

	credited, err := uc.CreditAccount(ctx, 7, created.ID, decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.Equal(t, "150.00", credited.GetBalance())

	debited, err := uc.DebitAccount(ctx, 7, created.ID, decimal.NewFromInt(30))
	require.NoError(t, err)
	assert.Equal(t, "120.00", debited.GetBalance())

	entries := store.ledgerFor(7)
	require.Len(t, entries, 3)
	assert.Equal(t, "Savings (Initial Deposit)", entries[0].Description)
	assert.Equal(t, entity.EntryTypeIncome, entries[0].Type)
	assert.Equal(t, "Savings (Deposit)", entries[1].Description)
	assert.Equal(t, entity.EntryTypeIncome, entries[1].Type)
	assert.True(t, entries[1].Amount.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "Savings (Withdrawal)", entries[2].Description)
	assert.Equal(t, entity.EntryTypeExpense, entries[2].Type)
	assert.True(t, entries[2].Amount.Equal(decimal.NewFromInt(30)))

	assert.Equal(t, []string{"Savings"}, store.users[7].Accounts)

	accounts, err := uc.ListAccounts(ctx, 7)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "120.00", accounts[0].GetBalance())
}

func TestLedger_DuplicateNameWritesNothing(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(7)
	uc := newStoreUseCase(store, DefaultPolicy())
	input := usecase.CreateAccountInput{Name: "Savings", AccountNumber: "001", Amount: decimal.NewFromInt(100)}

	_, err := uc.CreateAccount(ctx, 7, input)
	require.NoError(t, err)

	_, err = uc.CreateAccount(ctx, 7, input)
	assert.ErrorIs(t, err, errs.ErrAccountExists)

	assert.Len(t, store.accounts, 1)
	assert.Len(t, store.ledger, 1)
	assert.Equal(t, []string{"Savings"}, store.users[7].Accounts)
}

func TestLedger_SameNameForDifferentUsers(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(7, 8)
	uc := newStoreUseCase(store, DefaultPolicy())
	input := usecase.CreateAccountInput{Name: "Savings", AccountNumber: "001", Amount: decimal.NewFromInt(1)}

	_, err := uc.CreateAccount(ctx, 7, input)
	require.NoError(t, err)
	_, err = uc.CreateAccount(ctx, 8, input)
	require.NoError(t, err)

	assert.Len(t, store.accounts, 2)
}

func TestLedger_MissingAccountWritesNoEntry(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(7)
	uc := newStoreUseCase(store, DefaultPolicy())

	_, err := uc.CreditAccount(ctx, 7, 404, decimal.NewFromInt(5))
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)

	_, err = uc.DebitAccount(ctx, 7, 404, decimal.NewFromInt(5))
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)

	assert.Empty(t, store.ledger)
}

func TestLedger_AccountOfAnotherUserIsNotFound(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(7, 8)
	uc := newStoreUseCase(store, DefaultPolicy())

	created, err := uc.CreateAccount(ctx, 7, usecase.CreateAccountInput{
		Name: "Savings", AccountNumber: "001", Amount: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	_, err = uc.CreditAccount(ctx, 8, created.ID, decimal.NewFromInt(5))
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	assert.Equal(t, "10.00", store.accounts[created.ID].GetBalance())
}

func TestLedger_FailedLedgerWriteRollsBackCreate(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(7)
	uc := newStoreUseCase(store, DefaultPolicy())
	store.failLedger = errors.New("disk full")

	_, err := uc.CreateAccount(ctx, 7, usecase.CreateAccountInput{
		Name: "Savings", AccountNumber: "001", Amount: decimal.NewFromInt(100),
	})
	require.Error(t, err)

	assert.Empty(t, store.accounts)
	assert.Empty(t, store.ledger)
	assert.Empty(t, store.users[7].Accounts)
}

func TestLedger_NegativeBalancePolicy(t *testing.T) {
	ctx := context.Background()

	t.Run("allowed", func(t *testing.T) {
		store := newMemoryStore(7)
		uc := newStoreUseCase(store, DefaultPolicy())
		created, err := uc.CreateAccount(ctx, 7, usecase.CreateAccountInput{
			Name: "Wallet", AccountNumber: "002", Amount: decimal.NewFromInt(10),
		})
		require.NoError(t, err)

		debited, err := uc.DebitAccount(ctx, 7, created.ID, decimal.NewFromInt(25))
		require.NoError(t, err)
		assert.Equal(t, "-15.00", debited.GetBalance())
	})

	t.Run("rejected", func(t *testing.T) {
		store := newMemoryStore(7)
		uc := newStoreUseCase(store, Policy{AllowNegativeBalance: false})
		created, err := uc.CreateAccount(ctx, 7, usecase.CreateAccountInput{
			Name: "Wallet", AccountNumber: "002", Amount: decimal.NewFromInt(10),
		})
		require.NoError(t, err)

		_, err = uc.DebitAccount(ctx, 7, created.ID, decimal.NewFromInt(25))
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, "10.00", store.accounts[created.ID].GetBalance())
		assert.Len(t, store.ledger, 1)
	})
}

func TestLedger_ConcurrentDepositsAreNotLost(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(7)
	uc := newStoreUseCase(store, DefaultPolicy())
	created, err := uc.CreateAccount(ctx, 7, usecase.CreateAccountInput{
		Name: "Savings", AccountNumber: "001", Amount: decimal.Zero,
	})
	require.NoError(t, err)

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.CreditAccount(ctx, 7, created.ID, decimal.RequireFromString("1.25"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, "62.50", store.accounts[created.ID].GetBalance())
	assert.Len(t, store.ledger, workers+1)
}

func TestLedger_ReconcileRebuildsList(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(7)
	uc := newStoreUseCase(store, DefaultPolicy())
	for _, name := range []string{"Savings", "Checking"} {
		_, err := uc.CreateAccount(ctx, 7, usecase.CreateAccountInput{
			Name: name, AccountNumber: "001", Amount: decimal.Zero,
		})
		require.NoError(t, err)
	}
	store.users[7].Accounts = []string{"Ghost"}

	names, err := uc.ReconcileAccountNames(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, []string{"Savings", "Checking"}, names)
	assert.Equal(t, []string{"Savings", "Checking"}, store.users[7].Accounts)
}
