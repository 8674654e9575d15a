package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/chainsafe/deploy-admin/pkg/app/errors"
)

func TestReadBody(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		body    string
		want    string
		wantErr bool
	}{
		{name: "body only", target: "/x", body: `{"a":1}`, want: `{"a":1}`},
		{name: "query only", target: "/x?a=1", want: ""},
		{name: "nothing", target: "/x", wantErr: true},
		{name: "whitespace body", target: "/x", body: " \n\t", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.target, strings.NewReader(tt.body))

			got, err := ReadBody(httptest.NewRecorder(), req)
			if tt.wantErr {
				if !apperrors.Is(err, apperrors.CategoryDataError) {
					t.Fatalf("expected data error, got %v", err)
				}
				var svcErr *apperrors.ServiceError
				if !asServiceError(err, &svcErr) || svcErr.Message != NoDataMessage {
					t.Fatalf("expected message %q, got %v", NoDataMessage, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadBody() failed: %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestReadBody_TooLarge(t *testing.T) {
	body := `{"walletAddress":"` + strings.Repeat("a", MaxBodySize) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(body))

	_, err := ReadBody(httptest.NewRecorder(), req)

	var svcErr *apperrors.ServiceError
	if !asServiceError(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %v", err)
	}
	if svcErr.StatusCode() != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected status %d, got %d", http.StatusRequestEntityTooLarge, svcErr.StatusCode())
	}
	if svcErr.Message != BodyTooLargeMessage {
		t.Fatalf("expected message %q, got %q", BodyTooLargeMessage, svcErr.Message)
	}
}

func TestReadBody_AtLimit(t *testing.T) {
	body := strings.Repeat("a", MaxBodySize)
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(body))

	got, err := ReadBody(httptest.NewRecorder(), req)
	if err != nil {
		t.Fatalf("ReadBody() failed: %v", err)
	}
	if len(got) != MaxBodySize {
		t.Fatalf("expected %d bytes, got %d", MaxBodySize, len(got))
	}
}

func asServiceError(err error, target **apperrors.ServiceError) bool {
	se, ok := err.(*apperrors.ServiceError)
	if ok {
		*target = se
	}
	return ok
}
