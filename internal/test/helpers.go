// Package test provides helpers for HTTP tests against the full router.
package test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SKnight-7/BudgetsApp/internal/api"
	"github.com/SKnight-7/BudgetsApp/internal/budget"
	"github.com/SKnight-7/BudgetsApp/internal/finance"
	"github.com/SKnight-7/BudgetsApp/internal/router"
	"github.com/SKnight-7/BudgetsApp/internal/transactions"
)

// App builds the full router around a fresh controller whose stores live in
// a per-test temporary directory. Both stores bootstrap their defaults.
func App(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	controller, err := finance.New(
		budget.NewManager(filepath.Join(dir, "current_budgets.csv")),
		transactions.NewManager(filepath.Join(dir, "last_uploaded_transactions.csv")),
	)
	require.NoError(t, err, "controller could not be initialized")

	return router.Router(api.New(controller))
}

// Request is a helper method to simplify making a HTTP request for tests.
func Request(t *testing.T, r *gin.Engine, method, url, body string, headers ...map[string]string) httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, bytes.NewBufferString(body))

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// Upload sends a multipart form upload with the body as the contents of a
// single file field named "file".
func Upload(t *testing.T, r *gin.Engine, url, fileName, body string) httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = io.WriteString(part, body)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, url, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	r.ServeHTTP(recorder, req)

	return *recorder
}

func AssertHTTPStatus(t *testing.T, expected int, r *httptest.ResponseRecorder) {
	t.Helper()

	assert.Equal(t, expected, r.Code, "HTTP status is wrong. Response body: %s", r.Body.String())
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target interface{}) {
	t.Helper()

	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v'", r.Body, reflect.TypeOf(target), err)
	}
}
