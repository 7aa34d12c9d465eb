package database

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/usecase"
	accountUseCase "github.com/amirhossein-jamali/account-ledger/internal/domain/usecase/account"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/model"
)

func setupLedger(t *testing.T, policy accountUseCase.Policy, userIDs ...uint64) (*TestDBManager, *accountUseCase.AccountUseCase) {
	t.Helper()

	tdb := NewTestDBManager(t, logger.NewNopLogger())
	tdb.SetupTestDB(t)
	for _, id := range userIDs {
		tdb.CreateTestUser(t, id)
	}

	uc := accountUseCase.NewAccountUseCase(tdb.Manager.CreateUnitOfWork(), tdb.TimeProvider, tdb.Logger, policy)
	return tdb, uc
}

func TestPostgres_SavingsWalkthrough(t *testing.T) {
	ctx := context.Background()
	tdb, uc := setupLedger(t, accountUseCase.DefaultPolicy(), 7)

	created, err := uc.CreateAccount(ctx, 7, usecase.CreateAccountInput{
		Name: "Savings", AccountNumber: "001", Amount: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	credited, err := uc.CreditAccount(ctx, 7, created.ID, decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.Equal(t, "150.00", credited.GetBalance())

	debited, err := uc.DebitAccount(ctx, 7, created.ID, decimal.NewFromInt(30))
	require.NoError(t, err)
	assert.Equal(t, "120.00", debited.GetBalance())

	var entries []model.Transaction
	require.NoError(t, tdb.Manager.DB().Where("user_id = ?", 7).Order("id").Find(&entries).Error)
	require.Len(t, entries, 3)
	assert.Equal(t, "Savings (Initial Deposit)", entries[0].Description)
	assert.Equal(t, "income", entries[1].Type)
	assert.Equal(t, "expense", entries[2].Type)
	assert.True(t, entries[2].Amount.Equal(decimal.NewFromInt(30)))

	var user model.User
	require.NoError(t, tdb.Manager.DB().First(&user, 7).Error)
	assert.Equal(t, []string{"Savings"}, []string(user.Accounts))
}

func TestPostgres_DuplicateAndOwnership(t *testing.T) {
	ctx := context.Background()
	tdb, uc := setupLedger(t, accountUseCase.DefaultPolicy(), 7, 8)
	input := usecase.CreateAccountInput{Name: "Savings", AccountNumber: "001", Amount: decimal.NewFromInt(10)}

	created, err := uc.CreateAccount(ctx, 7, input)
	require.NoError(t, err)

	_, err = uc.CreateAccount(ctx, 7, input)
	assert.ErrorIs(t, err, errs.ErrAccountExists)

	_, err = uc.CreditAccount(ctx, 8, created.ID, decimal.NewFromInt(5))
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)

	var count int64
	require.NoError(t, tdb.Manager.DB().Model(&model.Transaction{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPostgres_InsufficientBalanceRejected(t *testing.T) {
	ctx := context.Background()
	_, uc := setupLedger(t, accountUseCase.Policy{AllowNegativeBalance: false}, 7)

	created, err := uc.CreateAccount(ctx, 7, usecase.CreateAccountInput{
		Name: "Wallet", AccountNumber: "002", Amount: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	_, err = uc.DebitAccount(ctx, 7, created.ID, decimal.NewFromInt(25))
	assert.ErrorIs(t, err, errs.ErrInsufficientBalance)

	accounts, err := uc.ListAccounts(ctx, 7)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "10.00", accounts[0].GetBalance())
}

func TestPostgres_ConcurrentUpdatesAreNotLost(t *testing.T) {
	ctx := context.Background()
	_, uc := setupLedger(t, accountUseCase.DefaultPolicy(), 7)

	created, err := uc.CreateAccount(ctx, 7, usecase.CreateAccountInput{
		Name: "Savings", AccountNumber: "001", Amount: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := uc.CreditAccount(ctx, 7, created.ID, decimal.RequireFromString("2.50"))
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := uc.DebitAccount(ctx, 7, created.ID, decimal.NewFromInt(1))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	accounts, err := uc.ListAccounts(ctx, 7)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "130.00", accounts[0].GetBalance())
}

func TestPostgres_ConcurrentCreateSameName(t *testing.T) {
	ctx := context.Background()
	tdb, uc := setupLedger(t, accountUseCase.DefaultPolicy(), 7)

	const workers = 8
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			_, err := uc.CreateAccount(ctx, 7, usecase.CreateAccountInput{
				Name: "Savings", AccountNumber: "001", Amount: decimal.NewFromInt(1),
			})
			results <- err
		}()
	}

	succeeded := 0
	for i := 0; i < workers; i++ {
		if err := <-results; err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, errs.ErrAccountExists)
		}
	}
	assert.Equal(t, 1, succeeded)

	var user model.User
	require.NoError(t, tdb.Manager.DB().First(&user, 7).Error)
	assert.Equal(t, []string{"Savings"}, []string(user.Accounts))
}

func TestPostgres_TransactionsRunUnderQueryTimeout(t *testing.T) {
	tdb := NewTestDBManager(t, logger.NewNopLogger())
	uow := tdb.Manager.CreateUnitOfWork()

	var remaining time.Duration
	err := uow.RunInTransaction(context.Background(), func(txCtx context.Context) error {
		deadline, ok := txCtx.Deadline()
		require.True(t, ok)
		remaining = time.Until(deadline)
		return nil
	})

	require.NoError(t, err)
	assert.Positive(t, remaining)
	assert.LessOrEqual(t, remaining, tdb.Config.QueryTimeout)
}

func TestPostgres_BalanceOverflowIsRejected(t *testing.T) {
	ctx := context.Background()
	tdb, uc := setupLedger(t, accountUseCase.DefaultPolicy(), 7)

	created, err := uc.CreateAccount(ctx, 7, usecase.CreateAccountInput{
		Name: "Savings", AccountNumber: "001", Amount: entity.MaxAmount,
	})
	require.NoError(t, err)

	_, err = uc.CreditAccount(ctx, 7, created.ID, decimal.RequireFromString("0.01"))
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)

	var entries []model.Transaction
	require.NoError(t, tdb.Manager.DB().Where("user_id = ?", 7).Find(&entries).Error)
	assert.Len(t, entries, 1)
}
