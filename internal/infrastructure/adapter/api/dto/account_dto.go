package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
)

// Amount is a money value that arrives either as a JSON number or a numeric string.
// The raw text is kept so entity.ParseAmount can enforce the two-decimal rule.
type Amount string

// UnmarshalJSON accepts 12, 12.5 and "12.50"
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("amount must be a number or a numeric string")
	}
	*a = Amount(n.String())
	return nil
}

// CreateAccountRequest is the body of POST /api/v1/accounts
type CreateAccountRequest struct {
	Name          string `json:"name" validate:"required,max=50"`
	Amount        Amount `json:"amount" validate:"required,amount"`
	AccountNumber string `json:"account_number" validate:"required,max=50"`
}

// AmountRequest is the body of the deposit and withdraw endpoints
type AmountRequest struct {
	Amount Amount `json:"amount" validate:"required,positive_amount"`
}

// AccountResponse is the JSON form of an account. The balance is rendered with two decimals.
type AccountResponse struct {
	ID             uint64    `json:"id"`
	UserID         uint64    `json:"user_id"`
	AccountNumber  string    `json:"account_number"`
	AccountName    string    `json:"account_name"`
	AccountBalance string    `json:"account_balance"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewAccountResponse converts an account entity to its JSON form
func NewAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:             account.ID,
		UserID:         account.UserID,
		AccountNumber:  account.AccountNumber,
		AccountName:    account.AccountName,
		AccountBalance: account.GetBalance(),
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}
}

// NewAccountListResponse converts accounts, always returning a non-nil slice
func NewAccountListResponse(accounts []*entity.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, NewAccountResponse(a))
	}
	return out
}
