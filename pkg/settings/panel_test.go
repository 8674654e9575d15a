package settings

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/deploy-admin/pkg/client"
	"github.com/chainsafe/deploy-admin/pkg/credential"
	"github.com/chainsafe/deploy-admin/pkg/settings/mocks"
	"github.com/chainsafe/deploy-admin/pkg/user"
	"github.com/chainsafe/deploy-admin/pkg/userconfig"
)

func newTestPanel(t *testing.T) (*Panel, *mocks.Backend, *mocks.Checker) {
	t.Helper()
	backend := mocks.NewBackend(t)
	checker := mocks.NewChecker(t)
	return NewPanel(backend, checker, nil), backend, checker
}

// connectedPanel returns a panel with a known user and both groups connected.
func connectedPanel(t *testing.T) (*Panel, *mocks.Backend, *mocks.Checker, uuid.UUID) {
	t.Helper()
	p, backend, checker := newTestPanel(t)
	userID := uuid.New()

	backend.EXPECT().GetUserByWallet(mock.Anything, "W").Return(&user.User{ID: userID, WalletAddress: "W"}, nil).Once()
	backend.EXPECT().GetConfigByUser(mock.Anything, userID).Return(nil, nil).Once()
	require.NoError(t, p.ConnectWallet(context.Background(), "W"))

	checker.EXPECT().CheckRPC(mock.Anything, mock.Anything).Return(nil).Once()
	checker.EXPECT().CheckRailway(mock.Anything, mock.Anything).Return(nil).Once()

	p.SetRPCAPIKey("k")
	p.SetRailwayAPIKey("r")
	p.SetRailwayProjectID("p")
	require.NoError(t, p.TestRPC(context.Background()))
	require.NoError(t, p.TestRailway(context.Background()))
	require.True(t, p.CanSave())

	return p, backend, checker, userID
}

func TestPanel_InitialState(t *testing.T) {
	p, _, _ := newTestPanel(t)
	s := p.State()

	assert.Equal(t, userconfig.ProviderHelius, s.RPC.Provider)
	assert.Equal(t, StatusUnconfigured, s.RPC.Status)
	assert.Equal(t, StatusUnconfigured, s.Railway.Status)
	assert.Equal(t, DeployIdle, s.Deploy)
	assert.False(t, s.HasUser())
	assert.False(t, p.CanSave())
}

func TestPanel_TestRPC_Transitions(t *testing.T) {
	p, _, checker := newTestPanel(t)
	ctx := context.Background()

	checker.EXPECT().CheckRPC(ctx, credential.RPCCredentials{Provider: "helius", APIKey: "bad"}).
		Return(credential.ErrConnectionTimeout).Once()
	checker.EXPECT().CheckRPC(ctx, credential.RPCCredentials{Provider: "helius", APIKey: "good"}).
		Return(nil).Once()

	p.SetRPCAPIKey("bad")
	assert.ErrorIs(t, p.TestRPC(ctx), credential.ErrConnectionTimeout)
	assert.Equal(t, StatusError, p.State().RPC.Status)
	assert.Equal(t, "connection timeout", p.State().RPC.Error)

	p.SetRPCAPIKey("good")
	assert.Equal(t, StatusUnconfigured, p.State().RPC.Status)
	assert.Empty(t, p.State().RPC.Error)

	require.NoError(t, p.TestRPC(ctx))
	assert.Equal(t, StatusConnected, p.State().RPC.Status)
}

func TestPanel_EditsResetOnlyTheirGroup(t *testing.T) {
	p, _, _, _ := connectedPanel(t)

	p.SetRailwayProjectID("other")
	s := p.State()
	assert.Equal(t, StatusUnconfigured, s.Railway.Status)
	assert.Equal(t, StatusConnected, s.RPC.Status)
	assert.False(t, p.CanSave())
}

func TestPanel_SetProvider_ClearsFields(t *testing.T) {
	p, _, _, _ := connectedPanel(t)
	p.SetRPCURL("wss://old")

	p.SetProvider(userconfig.ProviderQuickNode)
	s := p.State()
	assert.Equal(t, userconfig.ProviderQuickNode, s.RPC.Provider)
	assert.Empty(t, s.RPC.APIKey)
	assert.Empty(t, s.RPC.URL)
	assert.Equal(t, StatusUnconfigured, s.RPC.Status)
}

func TestPanel_SetProvider_SameProviderKeepsFields(t *testing.T) {
	p, _, _, _ := connectedPanel(t)

	p.SetProvider(userconfig.ProviderHelius)
	s := p.State()
	assert.Equal(t, "k", s.RPC.APIKey)
	assert.Equal(t, StatusConnected, s.RPC.Status)
}

func TestPanel_TestInProgress(t *testing.T) {
	p, _, checker := newTestPanel(t)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	checker.EXPECT().CheckRailway(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, credential.RailwayCredentials) error {
			close(started)
			<-release
			return nil
		}).Once()

	done := make(chan error, 1)
	go func() { done <- p.TestRailway(ctx) }()

	<-started
	assert.Equal(t, StatusTesting, p.State().Railway.Status)
	assert.ErrorIs(t, p.TestRailway(ctx), ErrTestInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StatusConnected, p.State().Railway.Status)
}

func TestPanel_EditDuringTestDiscardsResult(t *testing.T) {
	p, _, checker := newTestPanel(t)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	checker.EXPECT().CheckRPC(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, credential.RPCCredentials) error {
			close(started)
			<-release
			return nil
		}).Once()

	done := make(chan error, 1)
	go func() { done <- p.TestRPC(ctx) }()

	<-started
	p.SetRPCAPIKey("edited")
	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, StatusUnconfigured, p.State().RPC.Status)
}

func TestPanel_Save_NotReady(t *testing.T) {
	p, _, _ := newTestPanel(t)

	// backend mock has no SaveConfig expectation; any call would fail the test
	assert.ErrorIs(t, p.Save(context.Background()), ErrNotReady)
	assert.Equal(t, DeployIdle, p.State().Deploy)
}

func TestPanel_Save_Success(t *testing.T) {
	p, backend, _, userID := connectedPanel(t)

	backend.EXPECT().SaveConfig(mock.Anything, &userconfig.SaveRequest{
		UserID:           userID.String(),
		RPCProvider:      "helius",
		RPCAPIKey:        "k",
		RPCURL:           "",
		RailwayAPIKey:    "r",
		RailwayProjectID: "p",
	}).Return(&userconfig.Config{ID: uuid.New(), UserID: userID}, nil).Once()

	require.NoError(t, p.Save(context.Background()))
	assert.Equal(t, DeploySuccess, p.State().Deploy)
}

func TestPanel_Save_Failure(t *testing.T) {
	p, backend, _, _ := connectedPanel(t)

	backend.EXPECT().SaveConfig(mock.Anything, mock.Anything).
		Return(nil, &client.StatusError{StatusCode: 500, Message: "Internal server error"}).Once()

	err := p.Save(context.Background())
	require.Error(t, err)

	s := p.State()
	assert.Equal(t, DeployError, s.Deploy)
	assert.Equal(t, "Failed to save configuration", s.DeployError)
}

func TestPanel_Save_Deploying(t *testing.T) {
	p, backend, _, _ := connectedPanel(t)

	started := make(chan struct{})
	release := make(chan struct{})
	backend.EXPECT().SaveConfig(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *userconfig.SaveRequest) (*userconfig.Config, error) {
			close(started)
			<-release
			return &userconfig.Config{}, nil
		}).Once()

	done := make(chan error, 1)
	go func() { done <- p.Save(context.Background()) }()

	<-started
	assert.Equal(t, DeployDeploying, p.State().Deploy)
	assert.ErrorIs(t, p.Save(context.Background()), ErrDeployInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, DeploySuccess, p.State().Deploy)
}

func TestPanel_ConnectWallet_CreatesUserOnMiss(t *testing.T) {
	p, backend, _ := newTestPanel(t)
	created := &user.User{ID: uuid.New(), WalletAddress: "W"}

	getUser := backend.EXPECT().GetUserByWallet(mock.Anything, "W").Return(nil, nil).Once()
	createUser := backend.EXPECT().CreateUser(mock.Anything, "W").Return(created, nil).Once().NotBefore(getUser)
	backend.EXPECT().GetConfigByUser(mock.Anything, created.ID).Return(nil, nil).Once().NotBefore(createUser)

	require.NoError(t, p.ConnectWallet(context.Background(), "W"))

	s := p.State()
	assert.Equal(t, created.ID, s.UserID)
	assert.Equal(t, "W", s.WalletAddress)
	assert.False(t, s.Loading)
	assert.Equal(t, StatusUnconfigured, s.RPC.Status)
}

func TestPanel_ConnectWallet_ConflictRefetches(t *testing.T) {
	p, backend, _ := newTestPanel(t)
	existing := &user.User{ID: uuid.New(), WalletAddress: "W"}

	backend.EXPECT().GetUserByWallet(mock.Anything, "W").Return(nil, nil).Once()
	backend.EXPECT().CreateUser(mock.Anything, "W").Return(nil, fmt.Errorf("%w: User already exists", client.ErrConflict)).Once()
	backend.EXPECT().GetUserByWallet(mock.Anything, "W").Return(existing, nil).Once()
	backend.EXPECT().GetConfigByUser(mock.Anything, existing.ID).Return(nil, nil).Once()

	require.NoError(t, p.ConnectWallet(context.Background(), "W"))
	assert.Equal(t, existing.ID, p.State().UserID)
}

func TestPanel_ConnectWallet_HydratesSavedConfig(t *testing.T) {
	p, backend, _ := newTestPanel(t)
	userID := uuid.New()
	url := "wss://example.quiknode.pro/abc/"

	backend.EXPECT().GetUserByWallet(mock.Anything, "W").Return(&user.User{ID: userID}, nil).Once()
	backend.EXPECT().GetConfigByUser(mock.Anything, userID).Return(&userconfig.Config{
		ID:               uuid.New(),
		UserID:           userID,
		RPCProvider:      userconfig.ProviderQuickNode,
		RPCURL:           &url,
		RailwayAPIKey:    "r",
		RailwayProjectID: "p",
		CreatedAt:        time.Now(),
	}, nil).Once()

	require.NoError(t, p.ConnectWallet(context.Background(), "W"))

	s := p.State()
	assert.Equal(t, userconfig.ProviderQuickNode, s.RPC.Provider)
	assert.Equal(t, url, s.RPC.URL)
	assert.Equal(t, StatusConnected, s.RPC.Status)
	assert.Equal(t, "r", s.Railway.APIKey)
	assert.Equal(t, "p", s.Railway.ProjectID)
	assert.Equal(t, StatusConnected, s.Railway.Status)
	assert.True(t, p.CanSave())
}

func TestPanel_ConnectWallet_Failure(t *testing.T) {
	p, backend, _ := newTestPanel(t)

	backend.EXPECT().GetUserByWallet(mock.Anything, "W").Return(nil, errors.New("network down")).Once()

	err := p.ConnectWallet(context.Background(), "W")
	require.Error(t, err)

	s := p.State()
	assert.False(t, s.Loading)
	assert.Contains(t, s.LoadError, "network down")
	assert.False(t, s.HasUser())
	assert.False(t, p.CanSave())
}
