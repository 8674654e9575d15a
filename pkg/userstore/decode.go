package userstore

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/chainsafe/deploy-admin/pkg/user"
	"github.com/chainsafe/deploy-admin/pkg/userconfig"
)

var rowValidator = validator.New()

// decodeUser validates a scanned users row before it leaves the store.
func decodeUser(dao *UserDao) (*user.User, error) {
	if err := rowValidator.Struct(dao); err != nil {
		return nil, fmt.Errorf("%w: users row %s: %w", ErrInvalidRecord, dao.ID, err)
	}
	return toUser(dao), nil
}

// decodeConfig validates a scanned configs row before it leaves the store.
func decodeConfig(dao *ConfigDao) (*userconfig.Config, error) {
	if err := rowValidator.Struct(dao); err != nil {
		return nil, fmt.Errorf("%w: configs row %s: %w", ErrInvalidRecord, dao.ID, err)
	}
	return toConfig(dao), nil
}
