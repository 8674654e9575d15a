// Package settings models the configuration panel: two credential groups that
// must each be tested before the config can be saved for the connected wallet.
package settings

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/deploy-admin/pkg/client"
	"github.com/chainsafe/deploy-admin/pkg/credential"
	"github.com/chainsafe/deploy-admin/pkg/user"
	"github.com/chainsafe/deploy-admin/pkg/userconfig"
)

var (
	// ErrTestInProgress is returned when a group is already being tested
	ErrTestInProgress = errors.New("test already in progress")
	// ErrNotReady is returned by Save until both groups are connected and a user is known
	ErrNotReady = errors.New("configuration is not ready to save")
	// ErrDeployInProgress is returned when a save is already running
	ErrDeployInProgress = errors.New("deploy already in progress")
)

// Backend is the user and config API the panel talks to.
// CreateUser must return an error wrapping client.ErrConflict for a duplicate wallet.
//
//go:generate mockery --name Backend --output mocks --outpkg mocks --filename mock_backend.go --with-expecter
type Backend interface {
	GetUserByWallet(ctx context.Context, walletAddress string) (*user.User, error)
	CreateUser(ctx context.Context, walletAddress string) (*user.User, error)
	GetConfigByUser(ctx context.Context, userID uuid.UUID) (*userconfig.Config, error)
	SaveConfig(ctx context.Context, req *userconfig.SaveRequest) (*userconfig.Config, error)
}

// Checker probes credential groups
//
//go:generate mockery --name Checker --output mocks --outpkg mocks --filename mock_checker.go --with-expecter
type Checker interface {
	CheckRPC(ctx context.Context, creds credential.RPCCredentials) error
	CheckRailway(ctx context.Context, creds credential.RailwayCredentials) error
}

// Panel is safe for concurrent use. No lock is held while a network call is in flight.
type Panel struct {
	mu      sync.Mutex
	state   State
	backend Backend
	checker Checker
	logger  *zap.Logger
}

// NewPanel creates a panel with both groups unconfigured and the Helius provider selected
func NewPanel(backend Backend, checker Checker, logger *zap.Logger) *Panel {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Panel{
		state:   initialState(),
		backend: backend,
		checker: checker,
		logger:  logger,
	}
}

// State returns a snapshot
func (p *Panel) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// SetProvider switches the RPC provider. A different provider clears the key and URL.
func (p *Panel) SetProvider(provider userconfig.Provider) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state.RPC.Provider == provider {
		return
	}
	p.state.RPC.Provider = provider
	p.state.RPC.APIKey = ""
	p.state.RPC.URL = ""
	p.resetRPC()
}

// SetRPCAPIKey edits the RPC API key
func (p *Panel) SetRPCAPIKey(apiKey string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state.RPC.APIKey = apiKey
	p.resetRPC()
}

// SetRPCURL edits the RPC endpoint URL
func (p *Panel) SetRPCURL(url string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state.RPC.URL = url
	p.resetRPC()
}

// SetRailwayAPIKey edits the Railway API key
func (p *Panel) SetRailwayAPIKey(apiKey string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state.Railway.APIKey = apiKey
	p.resetRailway()
}

// SetRailwayProjectID edits the Railway project id
func (p *Panel) SetRailwayProjectID(projectID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state.Railway.ProjectID = projectID
	p.resetRailway()
}

// must hold p.mu
func (p *Panel) resetRPC() {
	p.state.RPC.Status = StatusUnconfigured
	p.state.RPC.Error = ""
	p.state.RPC.generation++
}

// must hold p.mu
func (p *Panel) resetRailway() {
	p.state.Railway.Status = StatusUnconfigured
	p.state.Railway.Error = ""
	p.state.Railway.generation++
}

// TestRPC probes the current RPC fields and records the outcome.
// An edit made while the probe runs wins over its result.
func (p *Panel) TestRPC(ctx context.Context) error {
	p.mu.Lock()
	if p.state.RPC.Status == StatusTesting {
		p.mu.Unlock()
		return ErrTestInProgress
	}
	p.state.RPC.Status = StatusTesting
	p.state.RPC.Error = ""
	gen := p.state.RPC.generation
	creds := credential.RPCCredentials{
		Provider: string(p.state.RPC.Provider),
		APIKey:   p.state.RPC.APIKey,
		URL:      p.state.RPC.URL,
	}
	p.mu.Unlock()

	err := p.checker.CheckRPC(ctx, creds)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.RPC.generation != gen {
		return err
	}
	if err != nil {
		p.logger.Info("RPC connection test failed", zap.String("provider", creds.Provider), zap.Error(err))
		p.state.RPC.Status = StatusError
		p.state.RPC.Error = err.Error()
		return err
	}
	p.state.RPC.Status = StatusConnected
	return nil
}

// TestRailway probes the current Railway fields and records the outcome
func (p *Panel) TestRailway(ctx context.Context) error {
	p.mu.Lock()
	if p.state.Railway.Status == StatusTesting {
		p.mu.Unlock()
		return ErrTestInProgress
	}
	p.state.Railway.Status = StatusTesting
	p.state.Railway.Error = ""
	gen := p.state.Railway.generation
	creds := credential.RailwayCredentials{
		APIKey:    p.state.Railway.APIKey,
		ProjectID: p.state.Railway.ProjectID,
	}
	p.mu.Unlock()

	err := p.checker.CheckRailway(ctx, creds)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.Railway.generation != gen {
		return err
	}
	if err != nil {
		p.logger.Info("Railway setup test failed", zap.String("project_id", creds.ProjectID), zap.Error(err))
		p.state.Railway.Status = StatusError
		p.state.Railway.Error = err.Error()
		return err
	}
	p.state.Railway.Status = StatusConnected
	return nil
}

// CanSave reports whether both groups are connected and a user is known
func (p *Panel) CanSave() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.canSave()
}

// must hold p.mu
func (p *Panel) canSave() bool {
	return p.state.HasUser() &&
		p.state.RPC.Status == StatusConnected &&
		p.state.Railway.Status == StatusConnected
}

// Save writes the config of the connected user. It sends nothing unless CanSave is true.
func (p *Panel) Save(ctx context.Context) error {
	p.mu.Lock()
	if !p.canSave() {
		p.mu.Unlock()
		return ErrNotReady
	}
	if p.state.Deploy == DeployDeploying {
		p.mu.Unlock()
		return ErrDeployInProgress
	}
	p.state.Deploy = DeployDeploying
	p.state.DeployError = ""
	req := &userconfig.SaveRequest{
		UserID:           p.state.UserID.String(),
		RPCProvider:      string(p.state.RPC.Provider),
		RPCAPIKey:        p.state.RPC.APIKey,
		RPCURL:           p.state.RPC.URL,
		RailwayAPIKey:    p.state.Railway.APIKey,
		RailwayProjectID: p.state.Railway.ProjectID,
	}
	p.mu.Unlock()

	_, err := p.backend.SaveConfig(ctx, req)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.logger.Warn("Save config failed", zap.String("user_id", req.UserID), zap.Error(err))
		p.state.Deploy = DeployError
		p.state.DeployError = "Failed to save configuration"
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	p.state.Deploy = DeploySuccess
	return nil
}

// ConnectWallet resolves the wallet to a user, creating one on first connect,
// then loads the saved config. A saved config marks both groups connected
// without testing them again.
func (p *Panel) ConnectWallet(ctx context.Context, walletAddress string) error {
	p.mu.Lock()
	p.state.WalletAddress = walletAddress
	p.state.UserID = uuid.Nil
	p.state.Loading = true
	p.state.LoadError = ""
	p.mu.Unlock()

	usr, cfg, err := p.load(ctx, walletAddress)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Loading = false
	if err != nil {
		p.logger.Warn("Error loading user data", zap.String("wallet_address", walletAddress), zap.Error(err))
		p.state.LoadError = err.Error()
		return err
	}

	p.state.UserID = usr.ID
	if cfg != nil {
		p.hydrate(cfg)
	}
	return nil
}

func (p *Panel) load(ctx context.Context, walletAddress string) (*user.User, *userconfig.Config, error) {
	usr, err := p.backend.GetUserByWallet(ctx, walletAddress)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load user: %w", err)
	}

	if usr == nil {
		usr, err = p.backend.CreateUser(ctx, walletAddress)
		if errors.Is(err, client.ErrConflict) {
			// created concurrently by another session
			usr, err = p.backend.GetUserByWallet(ctx, walletAddress)
			if err == nil && usr == nil {
				err = errors.New("user vanished after conflict")
			}
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create user: %w", err)
		}
	}

	cfg, err := p.backend.GetConfigByUser(ctx, usr.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return usr, cfg, nil
}

// must hold p.mu
func (p *Panel) hydrate(cfg *userconfig.Config) {
	p.state.RPC.Provider = cfg.RPCProvider
	p.state.RPC.APIKey = cfg.RPCAPIKey
	p.state.RPC.URL = ""
	if cfg.RPCURL != nil {
		p.state.RPC.URL = *cfg.RPCURL
	}
	p.state.RPC.Status = StatusConnected
	p.state.RPC.Error = ""
	p.state.RPC.generation++

	p.state.Railway.APIKey = cfg.RailwayAPIKey
	p.state.Railway.ProjectID = cfg.RailwayProjectID
	p.state.Railway.Status = StatusConnected
	p.state.Railway.Error = ""
	p.state.Railway.generation++
}
