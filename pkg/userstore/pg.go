package userstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/chainsafe/deploy-admin/internal/metrics"
	"github.com/chainsafe/deploy-admin/pkg/user"
	"github.com/chainsafe/deploy-admin/pkg/userconfig"
)

// SQLSTATE for unique_violation
const uniqueViolation = "23505"

// sqlStateError is satisfied by pgdriver.Error
type sqlStateError interface {
	error
	Field(k byte) string
}

var _ sqlStateError = pgdriver.Error{}

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the user store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func observe(operation string, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrConfigNotFound):
		err = nil
	}
	metrics.StoreOperationsTotal.WithLabelValues(operation, metrics.Result(err)).Inc()
}

func isUniqueViolation(err error) bool {
	var pgErr sqlStateError
	return errors.As(err, &pgErr) && pgErr.Field('C') == uniqueViolation
}

func (s *pgStore) CreateUser(ctx context.Context, walletAddress string) (usr *user.User, err error) {
	defer func() { observe("create_user", err) }()

	dao := &UserDao{WalletAddress: walletAddress}
	_, err = s.db.NewInsert().
		Model(dao).
		Returning("*").
		Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %w", ErrUserExists, err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return decodeUser(dao)
}

func (s *pgStore) GetUserByWallet(ctx context.Context, walletAddress string) (usr *user.User, err error) {
	defer func() { observe("get_user_by_wallet", err) }()

	dao := new(UserDao)
	err = s.db.NewSelect().
		Model(dao).
		Where("wallet_address = ?", walletAddress).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return decodeUser(dao)
}

// SaveConfig inserts the config or, when the user already has one,
// overwrites every field and refreshes updated_at.
func (s *pgStore) SaveConfig(ctx context.Context, cfg *userconfig.Config) (saved *userconfig.Config, err error) {
	defer func() { observe("save_config", err) }()

	dao := toConfigDao(cfg)
	_, err = s.db.NewInsert().
		Model(dao).
		On("CONFLICT (user_id) DO UPDATE").
		Set("rpc_provider = EXCLUDED.rpc_provider").
		Set("rpc_api_key = EXCLUDED.rpc_api_key").
		Set("rpc_url = EXCLUDED.rpc_url").
		Set("railway_api_key = EXCLUDED.railway_api_key").
		Set("railway_project_id = EXCLUDED.railway_project_id").
		Set("updated_at = CURRENT_TIMESTAMP").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return decodeConfig(dao)
}

func (s *pgStore) GetConfigByUser(ctx context.Context, userID uuid.UUID) (cfg *userconfig.Config, err error) {
	defer func() { observe("get_config_by_user", err) }()

	dao := new(ConfigDao)
	err = s.db.NewSelect().
		Model(dao).
		Where("user_id = ?", userID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to get config: %w", err)
	}

	return decodeConfig(dao)
}
