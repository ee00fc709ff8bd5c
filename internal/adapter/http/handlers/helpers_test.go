package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"catrental/internal/adapter/http/middleware"
	"catrental/internal/domain/entities"
	"catrental/pkg"

	"github.com/gin-gonic/gin"
)

var (
	testCustomer = entities.Caller{UserID: "cust-1", Name: "Asha", Role: entities.RoleCustomer}
	testAdmin    = entities.Caller{UserID: "admin-1", Name: "Ravi", Role: entities.RoleAdmin, DealershipID: "dealer-1"}
	testNow      = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
)

func withCaller(caller entities.Caller) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetCaller(c, caller)
		c.Next()
	}
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	return body
}
