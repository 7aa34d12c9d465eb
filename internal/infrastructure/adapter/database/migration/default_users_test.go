package migration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	coremocks "github.com/amirhossein-jamali/account-ledger/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/account-ledger/mocks/port/persistence"
)

func TestCreateDefaultUsers(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Creates only missing users", func(t *testing.T) {
		users := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		users.EXPECT().Exists(ctx, uint64(1)).Return(true, nil)
		users.EXPECT().Exists(ctx, uint64(2)).Return(false, nil)
		users.EXPECT().Exists(ctx, uint64(3)).Return(false, nil)
		users.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return (u.ID == 2 || u.ID == 3) && u.Accounts != nil && u.CreatedAt.Equal(fixedTime)
		})).Return(nil).Times(2)

		created, err := CreateDefaultUsers(ctx, users, mockTime)

		require.NoError(t, err)
		assert.Equal(t, 2, created)
	})

	t.Run("Stops on store error", func(t *testing.T) {
		users := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		storeErr := errors.New("connection refused")

		users.EXPECT().Exists(ctx, uint64(1)).Return(false, storeErr)

		created, err := CreateDefaultUsers(ctx, users, mockTime)

		assert.ErrorIs(t, err, storeErr)
		assert.Zero(t, created)
	})
}
