// Package api exposes the collaborator-facing controller operations as a
// local HTTP API.
package api

import (
	"net/http"
	"os"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/SKnight-7/BudgetsApp/internal/finance"
)

// API wraps the financial controller for HTTP access. The core is strictly
// single-writer, so all handlers serialize on one mutex; this keeps the
// whole-file store rewrites safe without the managers needing locks.
type API struct {
	mu         sync.Mutex
	controller *finance.Controller
}

// New returns an API around the given controller.
func New(controller *finance.Controller) *API {
	return &API{controller: controller}
}

// RegisterBudgetRoutes registers the budget routes with the RouterGroup
// that is passed.
func (a *API) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.GET("", a.GetBudgets)
	r.GET("/display", a.GetBudgetDisplay)
	r.PATCH("/:name", a.UpdateBudget)
}

// RegisterTransactionRoutes registers the transaction routes with the
// RouterGroup that is passed.
func (a *API) RegisterTransactionRoutes(r *gin.RouterGroup) {
	r.GET("", a.GetTransactions)
	r.GET("/display", a.GetTransactionDisplay)
	r.POST("/import", a.ImportTransactions)
	r.PATCH("/:number", a.RecategorizeTransaction)
}

// Healthz returns the application health. The stores are plain files, so
// healthy means both are present and readable.
func (a *API) Healthz(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, path := range []string{
		a.controller.Budgets().StorePath(),
		a.controller.Transactions().StorePath(),
	} {
		if _, err := os.Stat(path); err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
			return
		}
	}

	c.Status(http.StatusNoContent)
}
