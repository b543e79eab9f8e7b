package api

import (
	"errors"
	"net/http"

	"github.com/SKnight-7/BudgetsApp/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no budget category named \"Hobbies\""`
}

// status returns the appropriate HTTP status for a core error.
func status(err error) int {
	if errors.Is(err, models.ErrNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrValidation) || errors.Is(err, models.ErrParse) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports CSV files")
)
