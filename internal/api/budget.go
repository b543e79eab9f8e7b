package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/SKnight-7/BudgetsApp/internal/models"
)

// BudgetResponse is one budget category with its accumulated actuals.
type BudgetResponse struct {
	models.BudgetCategory
	AccumulatedIncome      decimal.Decimal `json:"accumulatedIncome"`
	AccumulatedExpenditure decimal.Decimal `json:"accumulatedExpenditure"`
}

// UpdateBudgetRequest carries the new budgeted amount. Zero is valid and
// means "delete the budget" in the sense of no longer planning for it.
type UpdateBudgetRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// GetBudgets returns all budget categories with freshly calculated
// actuals.
func (a *API) GetBudgets(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.controller.CalculateTotalsByCategory()
	income := a.controller.Budgets().AccumulatedIncome()
	expenditure := a.controller.Budgets().AccumulatedExpenditure()

	categories := a.controller.Budgets().Categories()
	budgets := make([]BudgetResponse, 0, len(categories))
	for _, category := range categories {
		budgets = append(budgets, BudgetResponse{
			BudgetCategory:         category,
			AccumulatedIncome:      income[category.Name],
			AccumulatedExpenditure: expenditure[category.Name],
		})
	}

	c.JSON(http.StatusOK, budgets)
}

// GetBudgetDisplay returns the tabular budget display including actuals.
func (a *API) GetBudgetDisplay(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	c.String(http.StatusOK, a.controller.ViewCurrentBudgets())
}

// UpdateBudget replaces the budgeted amount of the category named in the
// URI.
func (a *API) UpdateBudget(c *gin.Context) {
	var request UpdateBudgetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	name := c.Param("name")
	if err := a.controller.UpdateBudgets(name, request.Amount); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	category, err := a.controller.Budgets().Category(name)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}
