package credential

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/deploy-admin/pkg/config"
)

type recordedRequest struct {
	auth      string
	query     string
	variables map[string]any
}

func newRailwayServer(t *testing.T, status int, response string) (*httptest.Server, <-chan recordedRequest) {
	t.Helper()

	seen := make(chan recordedRequest, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body graphQLRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		seen <- recordedRequest{
			auth:      r.Header.Get("Authorization"),
			query:     body.Query,
			variables: body.Variables,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, seen
}

func newTestRailwayChecker(url string, timeout time.Duration) *RailwayChecker {
	return NewRailwayChecker(&config.CredentialsConfig{
		RailwayURL:     url,
		RailwayTimeout: timeout,
	})
}

func TestRailwayChecker_Check_Success(t *testing.T) {
	srv, seen := newRailwayServer(t, http.StatusOK, `{"data":{"project":{"id":"p1","name":"alerts"}}}`)
	c := newTestRailwayChecker(srv.URL, time.Second)

	err := c.Check(context.Background(), RailwayCredentials{APIKey: "tok", ProjectID: "p1"})
	require.NoError(t, err)

	req := <-seen
	assert.Equal(t, "Bearer tok", req.auth)
	assert.Contains(t, req.query, "project(id: $id)")
	assert.Equal(t, map[string]any{"id": "p1"}, req.variables)
}

func TestRailwayChecker_Check_Failures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
	}{
		{"null project", http.StatusOK, `{"data":{"project":null}}`},
		{"graphql errors", http.StatusOK, `{"data":null,"errors":[{"message":"Not Authorized"}]}`},
		{"unauthorized", http.StatusUnauthorized, `{"errors":[{"message":"Not Authorized"}]}`},
		{"bad json", http.StatusBadGateway, `<html>bad gateway</html>`},
		{"empty body", http.StatusOK, ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newRailwayServer(t, tt.status, tt.response)
			c := newTestRailwayChecker(srv.URL, time.Second)

			err := c.Check(context.Background(), RailwayCredentials{APIKey: "tok", ProjectID: "p1"})
			assert.ErrorIs(t, err, ErrInvalidProject)
			assert.Equal(t, "invalid project credentials", Message(err))
		})
	}
}

func TestRailwayChecker_Check_Timeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(block)
		srv.Close()
	})

	c := newTestRailwayChecker(srv.URL, 100*time.Millisecond)

	err := c.Check(context.Background(), RailwayCredentials{APIKey: "tok", ProjectID: "p1"})
	assert.ErrorIs(t, err, ErrConnectionTimeout)
}

func TestRailwayChecker_Check_MissingFields(t *testing.T) {
	c := newTestRailwayChecker("http://127.0.0.1:1", time.Second)

	assert.ErrorIs(t, c.Check(context.Background(), RailwayCredentials{ProjectID: "p"}), ErrMissingAPIKey)
	assert.ErrorIs(t, c.Check(context.Background(), RailwayCredentials{APIKey: "k"}), ErrMissingProjectID)
}

func TestRailwayChecker_Check_Unreachable(t *testing.T) {
	c := newTestRailwayChecker("http://127.0.0.1:1", time.Second)

	err := c.Check(context.Background(), RailwayCredentials{APIKey: "k", ProjectID: "p"})
	require.Error(t, err)
	assert.Equal(t, ErrConnectionFailed.Error(), Message(err))
}
