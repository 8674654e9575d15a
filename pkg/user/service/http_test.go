package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/deploy-admin/pkg/app/errors"
	apphttp "github.com/chainsafe/deploy-admin/pkg/app/http"
	"github.com/chainsafe/deploy-admin/pkg/user"
	"github.com/chainsafe/deploy-admin/pkg/user/service/mocks"
)

type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func newUserTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func doRequest(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var got errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	return got
}

func TestUserHTTP_Errors(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantError  string
	}{
		{"post without data", http.MethodPost, "/user", "", http.StatusBadRequest, "No data provided"},
		{"get without data", http.MethodGet, "/user", "", http.StatusBadRequest, "No data provided"},
		{"get without wallet param", http.MethodGet, "/user?foo=bar", "", http.StatusBadRequest, "Wallet address is required"},
		{"post without wallet field", http.MethodPost, "/user", `{}`, http.StatusBadRequest, "Wallet address is required"},
		{"post invalid json", http.MethodPost, "/user", `{invalid`, http.StatusInternalServerError, "Internal server error"},
		{"delete", http.MethodDelete, "/user?walletAddress=ABC123", "", http.StatusMethodNotAllowed, "Method not allowed"},
		{"put without data", http.MethodPut, "/user", "", http.StatusMethodNotAllowed, "Method not allowed"},
		{"post oversized body", http.MethodPost, "/user", `{"walletAddress":"` + strings.Repeat("a", apphttp.MaxBodySize) + `"}`,
			http.StatusRequestEntityTooLarge, "Request body too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newUserTestServer(mocks.NewService(t))

			rec := doRequest(handler, tt.method, tt.target, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			got := decodeError(t, rec)
			if got.Error != tt.wantError {
				t.Fatalf("expected error %q, got %q", tt.wantError, got.Error)
			}
			if got.Code != tt.wantStatus {
				t.Fatalf("expected code %d, got %d", tt.wantStatus, got.Code)
			}
		})
	}
}

func TestUserHTTP_CreateUser_Success(t *testing.T) {
	created := newTestUser("ABC123")

	svc := mocks.NewService(t)
	svc.EXPECT().CreateUser(mock.Anything, "ABC123").Return(created, nil).Once()

	rec := doRequest(newUserTestServer(svc), http.MethodPost, "/user", `{"walletAddress":"ABC123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var got user.User
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.ID != created.ID || got.WalletAddress != "ABC123" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUserHTTP_CreateUser_Conflict(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().CreateUser(mock.Anything, "ABC123").
		Return(nil, apperrors.ConflictError(errors.New("dup"), UserExistsMessage)).Once()

	rec := doRequest(newUserTestServer(svc), http.MethodPost, "/user", `{"walletAddress":"ABC123"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, rec.Code)
	}
	if got := decodeError(t, rec); got.Error != UserExistsMessage {
		t.Fatalf("expected error %q, got %q", UserExistsMessage, got.Error)
	}
}

func TestUserHTTP_CreateUser_InternalErrorIsGeneric(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().CreateUser(mock.Anything, "ABC123").
		Return(nil, apperrors.GeneralError(errors.New("pq: password authentication failed"))).Once()

	rec := doRequest(newUserTestServer(svc), http.MethodPost, "/user", `{"walletAddress":"ABC123"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if got := decodeError(t, rec); got.Error != "Internal server error" {
		t.Fatalf("expected generic error, got %q", got.Error)
	}
}

func TestUserHTTP_GetUser(t *testing.T) {
	existing := newTestUser("ABC123")

	svc := mocks.NewService(t)
	svc.EXPECT().GetUserByWallet(mock.Anything, "ABC123").Return(existing, nil).Once()
	svc.EXPECT().GetUserByWallet(mock.Anything, "nobody").Return(nil, nil).Once()
	handler := newUserTestServer(svc)

	rec := doRequest(handler, http.MethodGet, "/user?walletAddress=ABC123", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var got user.User
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.ID != existing.ID {
		t.Fatalf("expected id %s, got %s", existing.ID, got.ID)
	}

	rec = doRequest(handler, http.MethodGet, "/user?walletAddress=nobody", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if body := bytes.TrimSpace(rec.Body.Bytes()); string(body) != "null" {
		t.Fatalf("expected null body, got %q", body)
	}
}
