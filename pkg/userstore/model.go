package userstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/chainsafe/deploy-admin/pkg/user"
	"github.com/chainsafe/deploy-admin/pkg/userconfig"
)

// UserDao is a data access object that maps directly to the 'users' table in PostgreSQL.
type UserDao struct {
	bun.BaseModel `bun:"table:users,alias:u"`
	ID            uuid.UUID `bun:"id,pk,type:uuid,nullzero,default:gen_random_uuid()" validate:"required"`
	WalletAddress string    `bun:"wallet_address,unique,notnull,type:text" validate:"required"`
	CreatedAt     time.Time `bun:"created_at,notnull,nullzero,default:current_timestamp" validate:"required"`
	UpdatedAt     time.Time `bun:"updated_at,notnull,nullzero,default:current_timestamp" validate:"required"`
}

// ConfigDao is a data access object that maps directly to the 'configs' table in PostgreSQL.
// Credential columns hold whatever the caller passed in, which is ciphertext
// when the service encrypts at rest.
type ConfigDao struct {
	bun.BaseModel    `bun:"table:configs,alias:c"`
	ID               uuid.UUID `bun:"id,pk,type:uuid,nullzero,default:gen_random_uuid()" validate:"required"`
	UserID           uuid.UUID `bun:"user_id,unique,notnull,type:uuid" validate:"required"`
	RPCProvider      string    `bun:"rpc_provider,notnull,type:varchar(32)" validate:"oneof=helius quicknode"`
	RPCAPIKey        string    `bun:"rpc_api_key,notnull,type:text"`
	RPCURL           *string   `bun:"rpc_url,type:text"`
	RailwayAPIKey    string    `bun:"railway_api_key,notnull,type:text"`
	RailwayProjectID string    `bun:"railway_project_id,notnull,type:varchar(255)"`
	CreatedAt        time.Time `bun:"created_at,notnull,nullzero,default:current_timestamp" validate:"required"`
	UpdatedAt        time.Time `bun:"updated_at,notnull,nullzero,default:current_timestamp" validate:"required"`
}

// ConfigForeignKeys are the table constraints of ConfigDao that bun tags cannot express.
var ConfigForeignKeys = []string{
	`("user_id") REFERENCES "users" ("id") ON DELETE CASCADE`,
}

func toUser(dao *UserDao) *user.User {
	return &user.User{
		ID:            dao.ID,
		WalletAddress: dao.WalletAddress,
		CreatedAt:     dao.CreatedAt,
		UpdatedAt:     dao.UpdatedAt,
	}
}

func toConfigDao(cfg *userconfig.Config) *ConfigDao {
	return &ConfigDao{
		UserID:           cfg.UserID,
		RPCProvider:      string(cfg.RPCProvider),
		RPCAPIKey:        cfg.RPCAPIKey,
		RPCURL:           cfg.RPCURL,
		RailwayAPIKey:    cfg.RailwayAPIKey,
		RailwayProjectID: cfg.RailwayProjectID,
	}
}

func toConfig(dao *ConfigDao) *userconfig.Config {
	return &userconfig.Config{
		ID:               dao.ID,
		UserID:           dao.UserID,
		RPCProvider:      userconfig.Provider(dao.RPCProvider),
		RPCAPIKey:        dao.RPCAPIKey,
		RPCURL:           dao.RPCURL,
		RailwayAPIKey:    dao.RailwayAPIKey,
		RailwayProjectID: dao.RailwayProjectID,
		CreatedAt:        dao.CreatedAt,
		UpdatedAt:        dao.UpdatedAt,
	}
}
