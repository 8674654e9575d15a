package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	credmocks "github.com/chainsafe/deploy-admin/pkg/credential/service/mocks"
	"github.com/chainsafe/deploy-admin/pkg/keys"
	"github.com/chainsafe/deploy-admin/pkg/user"
	userservice "github.com/chainsafe/deploy-admin/pkg/user/service"
	"github.com/chainsafe/deploy-admin/pkg/userconfig"
	configservice "github.com/chainsafe/deploy-admin/pkg/userconfig/service"
	"github.com/chainsafe/deploy-admin/pkg/userstore"
)

// memStore keeps users and configs in maps with the same semantics as the
// postgres store: unique wallets and one config per user, upserted in place.
type memStore struct {
	mu      sync.Mutex
	users   map[string]*user.User
	configs map[uuid.UUID]*userconfig.Config
	// stored holds the last values written, as the cipher produced them
	stored *userconfig.Config
}

func newMemStore() *memStore {
	return &memStore{
		users:   make(map[string]*user.User),
		configs: make(map[uuid.UUID]*userconfig.Config),
	}
}

func (s *memStore) CreateUser(_ context.Context, walletAddress string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[walletAddress]; ok {
		return nil, userstore.ErrUserExists
	}
	now := time.Now()
	usr := &user.User{ID: uuid.New(), WalletAddress: walletAddress, CreatedAt: now, UpdatedAt: now}
	s.users[walletAddress] = usr
	cp := *usr
	return &cp, nil
}

func (s *memStore) GetUserByWallet(_ context.Context, walletAddress string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	usr, ok := s.users[walletAddress]
	if !ok {
		return nil, userstore.ErrUserNotFound
	}
	cp := *usr
	return &cp, nil
}

func (s *memStore) SaveConfig(_ context.Context, cfg *userconfig.Config) (*userconfig.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	saved := *cfg
	if prev, ok := s.configs[cfg.UserID]; ok {
		saved.ID = prev.ID
		saved.CreatedAt = prev.CreatedAt
	} else {
		saved.ID = uuid.New()
		saved.CreatedAt = now
	}
	saved.UpdatedAt = now
	s.configs[cfg.UserID] = &saved
	s.stored = &saved
	cp := saved
	return &cp, nil
}

func (s *memStore) GetConfigByUser(_ context.Context, userID uuid.UUID) (*userconfig.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, ok := s.configs[userID]
	if !ok {
		return nil, userstore.ErrConfigNotFound
	}
	cp := *cfg
	return &cp, nil
}

func newFlowRouter(t *testing.T, store *memStore) http.Handler {
	t.Helper()

	cipher, err := keys.NewMasterKeyCipher(bytes.Repeat([]byte{7}, keys.MasterKeySize))
	require.NoError(t, err)

	svcs := services{
		users:       userservice.NewService(store),
		configs:     configservice.NewService(store, cipher),
		credentials: credmocks.NewService(t),
	}
	return NewServer(newTestServerConfig(true)).setupRouter(svcs, zap.NewNop())
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestRouter_WalletToConfigFlow(t *testing.T) {
	store := newMemStore()
	router := newFlowRouter(t, store)

	// first connect creates the user
	rec := doJSON(t, router, http.MethodPost, "/user", `{"walletAddress":"ABC123"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var usr user.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &usr))
	require.NotEqual(t, uuid.Nil, usr.ID)
	assert.Equal(t, "ABC123", usr.WalletAddress)

	rec = doJSON(t, router, http.MethodGet, "/user?walletAddress=ABC123", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var found user.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	assert.Equal(t, usr.ID, found.ID)

	rec = doJSON(t, router, http.MethodGet, "/user?walletAddress="+strings.Repeat("Z", 129), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))

	// no config yet
	rec = doJSON(t, router, http.MethodGet, "/config?userId="+usr.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))

	// first save with helius
	rec = doJSON(t, router, http.MethodPost, "/config", `{
		"user_id":"`+usr.ID.String()+`",
		"rpc_provider":"helius",
		"rpc_api_key":"helius-key",
		"rpc_url":"",
		"railway_api_key":"railway-key",
		"railway_project_id":"proj-1"
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var first userconfig.Config
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
	require.NotEqual(t, uuid.Nil, first.ID)
	assert.Equal(t, userconfig.ProviderHelius, first.RPCProvider)
	assert.Equal(t, "helius-key", first.RPCAPIKey)
	assert.Nil(t, first.RPCURL)

	require.NotNil(t, store.stored)
	assert.True(t, strings.HasPrefix(store.stored.RPCAPIKey, keys.EncryptedPrefix))
	assert.True(t, strings.HasPrefix(store.stored.RailwayAPIKey, keys.EncryptedPrefix))

	// switching to quicknode overwrites in place
	rec = doJSON(t, router, http.MethodPost, "/config", `{
		"user_id":"`+usr.ID.String()+`",
		"rpc_provider":"quicknode",
		"rpc_api_key":"",
		"rpc_url":"wss://example.quiknode.pro/abc/",
		"railway_api_key":"railway-key-2",
		"railway_project_id":"proj-2"
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var second userconfig.Config
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, userconfig.ProviderQuickNode, second.RPCProvider)
	assert.Equal(t, "", second.RPCAPIKey)
	require.NotNil(t, second.RPCURL)
	assert.Equal(t, "wss://example.quiknode.pro/abc/", *second.RPCURL)

	rec = doJSON(t, router, http.MethodGet, "/config?userId="+usr.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var loaded userconfig.Config
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loaded))
	assert.Equal(t, first.ID, loaded.ID)
	assert.Equal(t, userconfig.ProviderQuickNode, loaded.RPCProvider)
	assert.Equal(t, "railway-key-2", loaded.RailwayAPIKey)
	assert.Equal(t, "proj-2", loaded.RailwayProjectID)

	// reconnecting the same wallet conflicts
	rec = doJSON(t, router, http.MethodPost, "/user", `{"walletAddress":"ABC123"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
