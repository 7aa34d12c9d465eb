package migration

import (
	"context"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/persistence"
)

// defaultUsers are the demo owners created for local development
var defaultUsers = []entity.User{
	{ID: 1, Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"},
	{ID: 2, Email: "alan@example.com", FirstName: "Alan", LastName: "Turing"},
	{ID: 3, Email: "grace@example.com", FirstName: "Grace", LastName: "Hopper"},
}

// CreateDefaultUsers inserts the demo users that do not exist yet
func CreateDefaultUsers(ctx context.Context, users persistence.UserRepository, timeProvider coreport.TimeProvider) (int, error) {
	created := 0
	for _, u := range defaultUsers {
		exists, err := users.Exists(ctx, u.ID)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		now := timeProvider.Now()
		user := u
		user.Accounts = []string{}
		user.CreatedAt = now
		user.UpdatedAt = now
		if err := users.Create(ctx, &user); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
