package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-service-errors/internal/adapters/http/errhandler"
	"github.com/jsamuelsen11/go-service-errors/internal/domain/account"
	"github.com/jsamuelsen11/go-service-errors/internal/domain/customer"
	"github.com/jsamuelsen11/go-service-errors/internal/platform/config"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func newDispatcher() *errhandler.Handler {
	return errhandler.New(config.DefaultProblemConfig(), nil)
}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validCustomer() *customer.Customer {
	return &customer.Customer{
		ID:        "c-1",
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Phone:     "+441234567890",
		CreatedAt: testTime,
	}
}

func validAccount() *account.Account {
	return &account.Account{
		ID:         "acc-1",
		CustomerID: "c-1",
		Balance:    250,
		Currency:   "EUR",
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func rawBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func requireProblem(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, wantCode string) map[string]any {
	t.Helper()
	requireStatus(t, rec, wantStatus)
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
	body := decodeJSON[map[string]any](t, rec)
	if code, _ := body["errorCode"].(string); code != wantCode {
		t.Errorf("errorCode = %q, want %q", code, wantCode)
	}
	return body
}
