package credential

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/chainsafe/deploy-admin/internal/metrics"
	"github.com/chainsafe/deploy-admin/pkg/config"
)

const projectQuery = `query project($id: String!) {
  project(id: $id) {
    id
    name
  }
}`

const maxResponseSize = 1 << 20 // 1MB

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type projectResponse struct {
	Data *struct {
		Project *struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"project"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// RailwayChecker verifies a Railway API token against a project id
type RailwayChecker struct {
	endpoint string
	client   *http.Client
}

// NewRailwayChecker creates a checker from the credentials config
func NewRailwayChecker(cfg *config.CredentialsConfig) *RailwayChecker {
	return &RailwayChecker{
		endpoint: cfg.RailwayURL,
		client:   &http.Client{Timeout: cfg.RailwayTimeout},
	}
}

// Check succeeds when the project query returns a project.
// It never retries.
func (c *RailwayChecker) Check(ctx context.Context, creds RailwayCredentials) (err error) {
	defer func() {
		metrics.CredentialChecksTotal.WithLabelValues(KindRailway, metrics.Result(err)).Inc()
	}()

	if creds.APIKey == "" {
		return ErrMissingAPIKey
	}
	if creds.ProjectID == "" {
		return ErrMissingProjectID
	}

	payload, err := json.Marshal(graphQLRequest{
		Query:     projectQuery,
		Variables: map[string]any{"id": creds.ProjectID},
	})
	if err != nil {
		return fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+creds.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: %w", ErrConnectionTimeout, err)
		}
		return fmt.Errorf("railway request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read railway response: %w", err)
	}

	var out projectResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return fmt.Errorf("%w: unexpected response (status %d): %w", ErrInvalidProject, resp.StatusCode, err)
	}
	if len(out.Errors) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidProject, out.Errors[0].Message)
	}
	if out.Data == nil || out.Data.Project == nil {
		return fmt.Errorf("%w: project %q not found (status %d)", ErrInvalidProject, creds.ProjectID, resp.StatusCode)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
