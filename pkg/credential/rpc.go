package credential

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/gorilla/websocket"

	"github.com/chainsafe/deploy-admin/internal/metrics"
	"github.com/chainsafe/deploy-admin/pkg/config"
	"github.com/chainsafe/deploy-admin/pkg/userconfig"
)

// RPCChecker verifies RPC credentials by opening a websocket to the provider.
// The connection is closed as soon as the handshake completes.
type RPCChecker struct {
	heliusURL    string
	timeout      time.Duration
	allowPrivate bool
}

// NewRPCChecker creates a checker from the credentials config
func NewRPCChecker(cfg *config.CredentialsConfig) *RPCChecker {
	return &RPCChecker{
		heliusURL:    cfg.HeliusWSURL,
		timeout:      cfg.RPCTimeout,
		allowPrivate: cfg.AllowPrivateRPCTargets,
	}
}

// Endpoint returns the websocket URL probed for creds
func (c *RPCChecker) Endpoint(creds RPCCredentials) (string, error) {
	provider, err := userconfig.ParseProvider(creds.Provider)
	if err != nil {
		return "", err
	}

	switch provider {
	case userconfig.ProviderHelius:
		if creds.APIKey == "" {
			return "", ErrMissingAPIKey
		}
		u, err := url.Parse(c.heliusURL)
		if err != nil {
			return "", fmt.Errorf("invalid helius url: %w", err)
		}
		q := u.Query()
		q.Set("api-key", creds.APIKey)
		u.RawQuery = q.Encode()
		return u.String(), nil

	default:
		if creds.URL == "" {
			return "", ErrMissingURL
		}
		u, err := url.Parse(creds.URL)
		if err != nil {
			return "", fmt.Errorf("invalid rpc url: %w", err)
		}
		switch u.Scheme {
		case "ws", "wss":
		case "http":
			u.Scheme = "ws"
		case "https":
			u.Scheme = "wss"
		default:
			return "", ErrUnsupportedScheme
		}
		return u.String(), nil
	}
}

// Check succeeds when the websocket handshake completes within the timeout.
// Unless private targets are allowed, endpoints resolving to loopback, private,
// link-local or unspecified addresses are refused before any connection is made.
// It never retries.
func (c *RPCChecker) Check(ctx context.Context, creds RPCCredentials) (err error) {
	defer func() {
		metrics.CredentialChecksTotal.WithLabelValues(KindRPC, metrics.Result(err)).Inc()
	}()

	endpoint, err := c.Endpoint(creds)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := rpc.DialOptions(ctx, endpoint, rpc.WithWebsocketDialer(c.dialer()))
	if err != nil {
		if errors.Is(err, ErrForbiddenTarget) {
			return err
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) || isTimeout(err) {
			return fmt.Errorf("%w: %w", ErrConnectionTimeout, err)
		}
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	client.Close()

	return nil
}

func (c *RPCChecker) dialer() websocket.Dialer {
	if c.allowPrivate {
		return websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: c.timeout,
		}
	}
	// no proxy: it would dial a host that was never checked
	return websocket.Dialer{
		NetDialContext:   newPublicDialer().DialContext,
		HandshakeTimeout: c.timeout,
	}
}
