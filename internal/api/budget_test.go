package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SKnight-7/BudgetsApp/internal/api"
	"github.com/SKnight-7/BudgetsApp/internal/models"
	"github.com/SKnight-7/BudgetsApp/internal/test"
)

func TestGetBudgets(t *testing.T) {
	app := test.App(t)

	recorder := test.Request(t, app, http.MethodGet, "/v1/budgets", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var budgets []api.BudgetResponse
	test.DecodeResponse(t, &recorder, &budgets)
	require.Len(t, budgets, 20)

	assert.Equal(t, "Paycheck", budgets[0].Name, "budgets are ordered by option number")
	assert.Equal(t, "Income", budgets[0].Classification)
	assert.True(t, budgets[0].AccumulatedIncome.IsZero())
}

func TestGetBudgetDisplay(t *testing.T) {
	app := test.App(t)

	recorder := test.Request(t, app, http.MethodGet, "/v1/budgets/display", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)
	assert.Contains(t, recorder.Body.String(), "There are no budgets to display.", "all defaults start with a zero budget")
}

func TestUpdateBudget(t *testing.T) {
	app := test.App(t)

	recorder := test.Request(t, app, http.MethodPatch, "/v1/budgets/Groceries", `{"amount": 325.50}`)
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var category models.BudgetCategory
	test.DecodeResponse(t, &recorder, &category)
	assert.Equal(t, "Groceries", category.Name)
	assert.Equal(t, "325.50", category.BudgetedAmount.StringFixed(2))

	// Now the display has something to show
	recorder = test.Request(t, app, http.MethodGet, "/v1/budgets/display", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)
	assert.Contains(t, recorder.Body.String(), "Groceries")
}

func TestUpdateBudgetErrors(t *testing.T) {
	app := test.App(t)

	tests := []struct {
		name   string
		url    string
		body   string
		status int
	}{
		{"unknown category", "/v1/budgets/Hobbies", `{"amount": 10}`, http.StatusNotFound},
		{"negative amount", "/v1/budgets/Groceries", `{"amount": -10}`, http.StatusBadRequest},
		{"broken json", "/v1/budgets/Groceries", `{"amount":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, app, http.MethodPatch, tt.url, tt.body)
			test.AssertHTTPStatus(t, tt.status, &recorder)
		})
	}
}
