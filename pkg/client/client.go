// Package client is an HTTP client for the deploy-admin API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chainsafe/deploy-admin/pkg/credential"
	"github.com/chainsafe/deploy-admin/pkg/user"
	"github.com/chainsafe/deploy-admin/pkg/userconfig"
)

const (
	// DefaultTimeout bounds every API call
	DefaultTimeout = 30 * time.Second

	maxResponseSize = 1 << 20 // 1MB
)

var (
	// ErrConflict is returned for 409 responses, e.g. a wallet that is already registered
	ErrConflict = errors.New("conflict")
	// ErrCheckFailed is returned when a remote credential check reports an error status
	ErrCheckFailed = errors.New("credential check failed")
)

// StatusError is returned for any other non-200 response
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Message)
}

// Client calls the /user, /config and /credentials endpoints
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API served at baseURL
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetUserByWallet returns nil when no user has the wallet address
func (c *Client) GetUserByWallet(ctx context.Context, walletAddress string) (*user.User, error) {
	var out *user.User
	q := url.Values{"walletAddress": {walletAddress}}
	if err := c.do(ctx, http.MethodGet, "/user", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser registers walletAddress. A duplicate returns ErrConflict.
func (c *Client) CreateUser(ctx context.Context, walletAddress string) (*user.User, error) {
	var out *user.User
	if err := c.do(ctx, http.MethodPost, "/user", nil, &user.CreateRequest{WalletAddress: walletAddress}, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("empty response creating user")
	}
	return out, nil
}

// GetConfigByUser returns nil when the user has no saved config
func (c *Client) GetConfigByUser(ctx context.Context, userID uuid.UUID) (*userconfig.Config, error) {
	var out *userconfig.Config
	q := url.Values{"userId": {userID.String()}}
	if err := c.do(ctx, http.MethodGet, "/config", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveConfig upserts the config named by req.UserID
func (c *Client) SaveConfig(ctx context.Context, req *userconfig.SaveRequest) (*userconfig.Config, error) {
	var out *userconfig.Config
	if err := c.do(ctx, http.MethodPost, "/config", nil, req, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("empty response saving config")
	}
	return out, nil
}

// CheckRPC asks the server to probe RPC credentials
func (c *Client) CheckRPC(ctx context.Context, creds credential.RPCCredentials) error {
	return c.check(ctx, "/credentials/rpc/check", creds)
}

// CheckRailway asks the server to probe Railway credentials
func (c *Client) CheckRailway(ctx context.Context, creds credential.RailwayCredentials) error {
	return c.check(ctx, "/credentials/railway/check", creds)
}

func (c *Client) check(ctx context.Context, path string, in any) error {
	var res credential.Result
	if err := c.do(ctx, http.MethodPost, path, nil, in, &res); err != nil {
		return err
	}
	if res.Status != credential.StatusConnected {
		return fmt.Errorf("%w: %s", ErrCheckFailed, res.Error)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(respBody, &errBody)

		if resp.StatusCode == http.StatusConflict {
			return fmt.Errorf("%w: %s", ErrConflict, errBody.Error)
		}
		return &StatusError{StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
