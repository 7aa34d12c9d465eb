package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerr "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/logger"
)

func TestValidateRequest(t *testing.T) {
	assert.Empty(t, ValidateRequest(&dto.AmountRequest{Amount: "10.25"}))

	errs := ValidateRequest(&dto.AmountRequest{Amount: "0"})
	require.Len(t, errs, 1)
	assert.Equal(t, "amount", errs[0].Field)
	assert.Equal(t, "positive_amount", errs[0].Type)

	assert.Empty(t, ValidateRequest(&dto.AmountRequest{Amount: "999999999999.99"}))
	errs = ValidateRequest(&dto.AmountRequest{Amount: "1000000000000"})
	require.Len(t, errs, 1)
	assert.Equal(t, "positive_amount", errs[0].Type)

	errs = ValidateRequest(&dto.CreateAccountRequest{Name: "Savings", AccountNumber: "001", Amount: "1000000000000"})
	require.Len(t, errs, 1)
	assert.Equal(t, "amount", errs[0].Type)

	errs = ValidateRequest(&dto.CreateAccountRequest{Amount: "0"})
	require.Len(t, errs, 2)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "required", errs[0].Type)
	assert.Equal(t, "account_number", errs[1].Field)
}

func TestQueryTimeoutSetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var (
		deadline time.Time
		bounded  bool
	)
	router := gin.New()
	router.GET("/bounded", QueryTimeout(3*time.Second), func(c *gin.Context) {
		deadline, bounded = c.Request.Context().Deadline()
		c.Status(http.StatusNoContent)
	})
	router.GET("/unbounded", QueryTimeout(0), func(c *gin.Context) {
		_, bounded = c.Request.Context().Deadline()
		c.Status(http.StatusNoContent)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bounded", nil))
	require.True(t, bounded)
	assert.WithinDuration(t, time.Now().Add(3*time.Second), deadline, time.Second)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/unbounded", nil))
	assert.False(t, bounded)
}

func TestRequestIDIsGeneratedOrPropagated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		seen = coreport.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ErrorHandler(logger.NewNopLogger()))
	router.GET("/", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, dto.StatusFailed, body.Status)
	assert.Equal(t, domainerr.ErrorCode(domainerr.ErrInternalServer), body.Code)
	assert.Equal(t, "Internal server error", body.Message)
}

func TestAuthRejectsWrongAlgorithmAndIssuer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := AuthConfig{Secret: []byte("secret"), Issuer: "account-ledger"}

	router := gin.New()
	router.Use(Auth(cfg, logger.NewNopLogger()))
	router.GET("/", func(c *gin.Context) {
		userID, ok := GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user": userID})
	})

	call := func(token string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	valid, err := IssueToken(cfg, 5, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, call(valid))

	otherIssuer, err := IssueToken(AuthConfig{Secret: cfg.Secret, Issuer: "someone-else"}, 5, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, call(otherIssuer))

	expired, err := IssueToken(cfg, 5, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, call(expired))

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 5}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, call(unsigned))

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: cfg.Issuer},
	}).SignedString(cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, call(noUser))
}

func TestIssueTokenRejectsZeroUser(t *testing.T) {
	_, err := IssueToken(AuthConfig{Secret: []byte("s")}, 0, time.Minute)
	assert.Error(t, err)
}
