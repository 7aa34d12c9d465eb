package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API.
// Account requests run under queryTimeout.
func SetupRoutes(
	router *gin.Engine,
	accountHandler *handler.AccountHandler,
	healthHandler *handler.HealthHandler,
	auth gin.HandlerFunc,
	queryTimeout time.Duration,
) {
	router.GET("/health", healthHandler.Health)

	accounts := router.Group("/api/v1/accounts", auth, middleware.QueryTimeout(queryTimeout))
	{
		accounts.GET("", accountHandler.ListAccounts)
		accounts.POST("", accountHandler.CreateAccount)
		accounts.POST("/reconcile", accountHandler.ReconcileAccountNames)
		accounts.PATCH("/:id/deposit", accountHandler.Deposit)
		accounts.PATCH("/:id/withdraw", accountHandler.Withdraw)
	}
}

// SetupMiddlewares configures global middlewares for the API.
// RequestID runs before Logger so every log line carries the id.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
}
