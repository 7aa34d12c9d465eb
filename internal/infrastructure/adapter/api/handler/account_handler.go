package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/middleware"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountUseCase usecase.AccountUseCase
	logger         coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accountUseCase usecase.AccountUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

// ListAccounts handles GET /api/v1/accounts
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	accounts, err := h.accountUseCase.ListAccounts(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, map[string]any{"user_id": userID})
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Status: dto.StatusSuccess,
		Data:   dto.NewAccountListResponse(accounts),
	})
}

// CreateAccount handles POST /api/v1/accounts
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if !h.bind(c, &req) {
		return
	}

	amount, err := entity.ParseAmount(string(req.Amount))
	if err != nil {
		h.respondError(c, err, map[string]any{"user_id": userID})
		return
	}

	account, err := h.accountUseCase.CreateAccount(c.Request.Context(), userID, usecase.CreateAccountInput{
		Name:          req.Name,
		AccountNumber: req.AccountNumber,
		Amount:        amount,
	})
	if err != nil {
		h.respondError(c, err, map[string]any{
			"user_id":      userID,
			"account_name": req.Name,
		})
		return
	}

	c.JSON(http.StatusCreated, dto.Response{
		Status:  dto.StatusSuccess,
		Message: account.AccountName + " Account created successfully",
		Data:    dto.NewAccountResponse(account),
	})
}

// Deposit handles PATCH /api/v1/accounts/:id/deposit
func (h *AccountHandler) Deposit(c *gin.Context) {
	h.changeBalance(c, h.accountUseCase.CreditAccount, "Operation completed successfully")
}

// Withdraw handles PATCH /api/v1/accounts/:id/withdraw
func (h *AccountHandler) Withdraw(c *gin.Context) {
	h.changeBalance(c, h.accountUseCase.DebitAccount, "Money deleted from the account successfully")
}

// ReconcileAccountNames handles POST /api/v1/accounts/reconcile
func (h *AccountHandler) ReconcileAccountNames(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	names, err := h.accountUseCase.ReconcileAccountNames(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, map[string]any{"user_id": userID})
		return
	}
	if names == nil {
		names = []string{}
	}

	c.JSON(http.StatusOK, dto.Response{
		Status:  dto.StatusSuccess,
		Message: "Account names reconciled",
		Data:    names,
	})
}

type balanceOperation func(ctx context.Context, userID, accountID uint64, amount decimal.Decimal) (*entity.Account, error)

func (h *AccountHandler) changeBalance(c *gin.Context, op balanceOperation, message string) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	accountID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || accountID == 0 {
		h.respondError(c, domainerr.ErrInvalidAccountID, map[string]any{"id": c.Param("id")})
		return
	}

	var req dto.AmountRequest
	if !h.bind(c, &req) {
		return
	}

	amount, err := entity.ParseAmount(string(req.Amount))
	if err != nil {
		h.respondError(c, err, map[string]any{"account_id": accountID})
		return
	}

	account, err := op(c.Request.Context(), userID, accountID, amount)
	if err != nil {
		h.respondError(c, err, map[string]any{
			"user_id":    userID,
			"account_id": accountID,
			"amount":     entity.FormatAmount(amount),
		})
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Status:  dto.StatusSuccess,
		Message: message,
		Data:    dto.NewAccountResponse(account),
	})
}

func (h *AccountHandler) requireUser(c *gin.Context) (uint64, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Status:  dto.StatusFailed,
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Unauthorized",
		})
		return 0, false
	}
	return userID, true
}

// bind decodes the JSON body into req and runs the validator
func (h *AccountHandler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Warn("Invalid request format", map[string]any{
			"path":  c.FullPath(),
			"error": err,
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Status:  dto.StatusFailed,
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format",
		})
		return false
	}

	if details := middleware.ValidateRequest(req); len(details) > 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Status:  dto.StatusFailed,
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Validation failed",
			Details: details,
		})
		return false
	}
	return true
}

// respondError maps a domain error to its HTTP status and envelope
func (h *AccountHandler) respondError(c *gin.Context, err error, fields map[string]any) {
	status := domainerr.HTTPStatus(err)

	fields["error"] = err
	fields["request_id"] = coreport.RequestIDFromContext(c.Request.Context())
	var lf interface{ LogFields() map[string]any }
	if errors.As(err, &lf) {
		for k, v := range lf.LogFields() {
			fields[k] = v
		}
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("Account request failed", fields)
	} else {
		h.logger.Warn("Account request rejected", fields)
	}

	c.JSON(status, dto.ErrorResponse{
		Status:  dto.StatusFailed,
		Code:    domainerr.ErrorCode(err),
		Message: errorMessage(err),
	})
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, domainerr.ErrAccountExists):
		return "Account already created."
	case errors.Is(err, domainerr.ErrAccountNotFound):
		return "Account not found."
	case errors.Is(err, domainerr.ErrUserNotFound):
		return "User not found."
	case errors.Is(err, domainerr.ErrAccountLocked):
		return "Account is busy, please retry."
	default:
		return err.Error()
	}
}
