// Package userconfig holds the per-user deployment configuration: the RPC
// provider credentials and the Railway project credentials.
package userconfig

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Provider identifies a supported RPC provider
type Provider string

const (
	ProviderHelius    Provider = "helius"
	ProviderQuickNode Provider = "quicknode"
)

// Providers lists every supported provider
var Providers = []Provider{ProviderHelius, ProviderQuickNode}

// ParseProvider validates s as a supported provider
func ParseProvider(s string) (Provider, error) {
	for _, p := range Providers {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unsupported rpc provider %q", s)
}

// Config is the single stored configuration of a user.
// RPCURL is nil when the user never supplied one.
type Config struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	RPCProvider      Provider  `json:"rpc_provider"`
	RPCAPIKey        string    `json:"rpc_api_key"`
	RPCURL           *string   `json:"rpc_url"`
	RailwayAPIKey    string    `json:"railway_api_key"`
	RailwayProjectID string    `json:"railway_project_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SaveRequest is the body of POST /config. Every field is written on save;
// there are no partial updates.
type SaveRequest struct {
	UserID           string `json:"user_id" validate:"required,uuid"`
	RPCProvider      string `json:"rpc_provider" validate:"required,oneof=helius quicknode"`
	RPCAPIKey        string `json:"rpc_api_key" validate:"max=1024"`
	RPCURL           string `json:"rpc_url" validate:"omitempty,url,max=2048"`
	RailwayAPIKey    string `json:"railway_api_key" validate:"required,max=1024"`
	RailwayProjectID string `json:"railway_project_id" validate:"required,max=255"`
}

// ToConfig converts a validated request into a Config without identity or
// timestamps.
func (r *SaveRequest) ToConfig() (*Config, error) {
	userID, err := uuid.Parse(r.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	provider, err := ParseProvider(r.RPCProvider)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		UserID:           userID,
		RPCProvider:      provider,
		RPCAPIKey:        r.RPCAPIKey,
		RailwayAPIKey:    r.RailwayAPIKey,
		RailwayProjectID: r.RailwayProjectID,
	}
	if r.RPCURL != "" {
		url := r.RPCURL
		cfg.RPCURL = &url
	}
	return cfg, nil
}
