// Package credential probes third-party credentials before they are saved:
// an RPC provider websocket endpoint and a Railway project.
package credential

import (
	"errors"
)

// Check statuses reported to the caller
const (
	StatusConnected = "connected"
	StatusError     = "error"
)

// Probe kinds, used as the metrics label
const (
	KindRPC     = "rpc"
	KindRailway = "railway"
)

var (
	// ErrMissingAPIKey is returned when a check needs an API key and none was given
	ErrMissingAPIKey = errors.New("api key is required")
	// ErrMissingURL is returned when a QuickNode check has no endpoint URL
	ErrMissingURL = errors.New("rpc url is required")
	// ErrMissingProjectID is returned when a Railway check has no project id
	ErrMissingProjectID = errors.New("project id is required")
	// ErrUnsupportedScheme is returned for endpoints that are not ws(s) or http(s)
	ErrUnsupportedScheme = errors.New("rpc url must use ws, wss, http or https")
	// ErrForbiddenTarget is returned when an RPC endpoint resolves to a non-public address
	ErrForbiddenTarget = errors.New("rpc url must point to a public host")
	// ErrConnectionTimeout is returned when the probe does not finish in time
	ErrConnectionTimeout = errors.New("connection timeout")
	// ErrConnectionFailed is returned when the RPC websocket handshake fails
	ErrConnectionFailed = errors.New("connection failed")
	// ErrInvalidProject is returned when Railway does not resolve the project
	ErrInvalidProject = errors.New("invalid project credentials")
)

// RPCCredentials are the RPC provider fields of a config
type RPCCredentials struct {
	Provider string `json:"provider" validate:"required,oneof=helius quicknode"`
	APIKey   string `json:"api_key" validate:"max=1024"`
	URL      string `json:"url" validate:"max=2048"`
}

// RailwayCredentials are the Railway fields of a config
type RailwayCredentials struct {
	APIKey    string `json:"api_key" validate:"required,max=1024"`
	ProjectID string `json:"project_id" validate:"required,max=255"`
}

// Message returns the caller-facing text for a failed check.
// Causes not listed here collapse into a generic message.
func Message(err error) string {
	for _, known := range []error{
		ErrMissingAPIKey,
		ErrMissingURL,
		ErrMissingProjectID,
		ErrUnsupportedScheme,
		ErrForbiddenTarget,
		ErrConnectionTimeout,
		ErrInvalidProject,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return ErrConnectionFailed.Error()
}

// Result is the outcome of a single credential check
type Result struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// NewResult converts the error of a check into a Result
func NewResult(err error) *Result {
	if err != nil {
		return &Result{Status: StatusError, Error: Message(err)}
	}
	return &Result{Status: StatusConnected}
}
