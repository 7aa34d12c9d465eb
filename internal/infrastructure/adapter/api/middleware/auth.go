package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	domainerr "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/dto"
)

const userIDKey = "userId"

// Claims carries the authenticated user id
type Claims struct {
	UserID uint64 `json:"userId"`
	jwt.RegisteredClaims
}

// AuthConfig configures bearer token verification
type AuthConfig struct {
	Secret []byte
	Issuer string
}

// Auth verifies an HS256 bearer token and stores the user id on the context
func Auth(cfg AuthConfig, logger coreport.Logger) gin.HandlerFunc {
	options := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if cfg.Issuer != "" {
		options = append(options, jwt.WithIssuer(cfg.Issuer))
	}
	parser := jwt.NewParser(options...)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c, "Invalid authorization header format")
			return
		}

		claims := &Claims{}
		token, err := parser.ParseWithClaims(parts[1], claims, func(*jwt.Token) (any, error) {
			return cfg.Secret, nil
		})
		if err != nil || !token.Valid || claims.UserID == 0 {
			fields := map[string]any{"path": c.Request.URL.Path}
			if err != nil {
				fields["error"] = err
			}
			logger.Warn("Rejected bearer token", fields)
			unauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Status:  dto.StatusFailed,
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
		Message: message,
	})
}

// GetUserID returns the user id stored by Auth
func GetUserID(c *gin.Context) (uint64, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := v.(uint64)
	return userID, ok && userID > 0
}

// IssueToken signs a token for userID. Used by tooling and tests.
func IssueToken(cfg AuthConfig, userID uint64, ttl time.Duration) (string, error) {
	if userID == 0 {
		return "", errors.New("user id must be positive")
	}

	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.Secret)
}
