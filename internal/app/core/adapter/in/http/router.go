package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JoeShih716/audit-ledger/internal/app/core/usecase"
)

// NewRouter 建立 REST 路由
func NewRouter(ledger *usecase.LedgerService, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := NewHandler(ledger)
	v1 := r.Group("/v1")
	v1.POST("/accounts", h.CreateAccount)
	v1.GET("/accounts", h.ListAccounts)

	account := v1.Group("/accounts/:number")
	account.GET("", h.GetAccount)
	account.GET("/balance", h.GetBalance)
	account.GET("/transactions", h.ListTransactions)
	account.POST("/deposits", h.Deposit)
	account.POST("/withdrawals", h.Withdraw)
	account.POST("/deactivate", h.Deactivate)

	v1.POST("/transfers", h.Transfer)
	v1.GET("/audit", h.Audit)
	return r
}
