package api

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SKnight-7/BudgetsApp/internal/transactions"
)

// RecategorizeRequest carries the new category for one transaction.
type RecategorizeRequest struct {
	Category string `json:"category" binding:"required"`
}

// ImportResponse reports the outcome of a bank export upload.
type ImportResponse struct {
	SourceFile   string `json:"sourceFile"`
	Transactions int    `json:"transactions"`
}

// GetTransactions returns all transactions ordered by the sortBy query
// parameter (number, date, amount or category).
func (a *API) GetTransactions(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	by := transactions.ParseSortBy(c.Query("sortBy"))
	c.JSON(http.StatusOK, a.controller.Transactions().All(by))
}

// GetTransactionDisplay returns the tabular transaction display.
func (a *API) GetTransactionDisplay(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	by := transactions.ParseSortBy(c.Query("sortBy"))
	c.String(http.StatusOK, a.controller.FormatTransactions(by))
}

// ImportTransactions ingests a bank export file sent as multipart form
// data, categorizes it and recalculates the totals. A malformed row fails
// the whole upload without a partial commit.
func (a *API) ImportTransactions(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: errNoFilePost.Error()})
		return
	}
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, httpError{Error: errWrongFileSuffix.Error()})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.controller.ProcessUserTransactions(rows, header.Filename); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ImportResponse{
		SourceFile:   header.Filename,
		Transactions: len(rows),
	})
}

// RecategorizeTransaction reassigns the transaction numbered in the URI to
// the category in the request body.
func (a *API) RecategorizeTransaction(c *gin.Context) {
	number, err := strconv.ParseUint(c.Param("number"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: "the transaction number must be a non-negative integer"})
		return
	}

	var request RecategorizeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.controller.RecategorizeTransaction(number, request.Category); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	transaction, err := a.controller.Transactions().GetByNumber(number)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, transaction)
}
