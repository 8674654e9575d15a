package userstore

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/chainsafe/deploy-admin/pkg/user"
	"github.com/chainsafe/deploy-admin/pkg/userconfig"
)

var (
	// ErrUserNotFound is returned when a user lookup finds no matching record.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when a wallet address is already registered.
	ErrUserExists = errors.New("user already exists")
	// ErrConfigNotFound is returned when a user has no saved config.
	ErrConfigNotFound = errors.New("config not found")
	// ErrInvalidRecord is returned when a stored row fails decoding.
	ErrInvalidRecord = errors.New("invalid record")
)

// UserStore persists users
type UserStore interface {
	CreateUser(ctx context.Context, walletAddress string) (*user.User, error)
	GetUserByWallet(ctx context.Context, walletAddress string) (*user.User, error)
}

// ConfigStore persists the per-user configuration
type ConfigStore interface {
	SaveConfig(ctx context.Context, cfg *userconfig.Config) (*userconfig.Config, error)
	GetConfigByUser(ctx context.Context, userID uuid.UUID) (*userconfig.Config, error)
}

// Store defines the interface for user and config persistence
type Store interface {
	UserStore
	ConfigStore
}
