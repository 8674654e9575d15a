package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	apperrors "github.com/chainsafe/deploy-admin/pkg/app/errors"
	"github.com/chainsafe/deploy-admin/pkg/keys"
	"github.com/chainsafe/deploy-admin/pkg/userconfig"
	"github.com/chainsafe/deploy-admin/pkg/userstore"
)

const (
	// UserIDRequiredMessage is returned when a request names no user
	UserIDRequiredMessage = "User ID is required"
	// UserIDInvalidMessage is returned when the user id is not a UUID
	UserIDInvalidMessage = "User ID must be a valid UUID"
)

// Store is the narrow data-access interface for the config service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	SaveConfig(ctx context.Context, cfg *userconfig.Config) (*userconfig.Config, error)
	GetConfigByUser(ctx context.Context, userID uuid.UUID) (*userconfig.Config, error)
}

// Service defines the interface for the config business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	// SaveConfig creates or fully overwrites the config of req.UserID
	SaveConfig(ctx context.Context, req *userconfig.SaveRequest) (*userconfig.Config, error)
	// GetConfigByUser returns the user's config, or nil when none was saved
	GetConfigByUser(ctx context.Context, userID string) (*userconfig.Config, error)
}

type configService struct {
	store     Store
	keyCipher keys.KeyCipher
	validate  *validator.Validate
}

// NewService creates a new config service. Credential fields are sealed with
// keyCipher before they reach the store and opened again on the way out.
func NewService(store Store, keyCipher keys.KeyCipher) Service {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	return &configService{
		store:     store,
		keyCipher: keyCipher,
		validate:  v,
	}
}

func (s *configService) SaveConfig(ctx context.Context, req *userconfig.SaveRequest) (*userconfig.Config, error) {
	if req == nil {
		return nil, apperrors.BadRequestError(nil, UserIDRequiredMessage)
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	cfg, err := req.ToConfig()
	if err != nil {
		return nil, apperrors.BadRequestError(err, err.Error())
	}

	sealed, err := s.seal(cfg)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}

	saved, err := s.store.SaveConfig(ctx, sealed)
	if err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to save config: %w", err))
	}

	opened, err := s.open(saved)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return opened, nil
}

func (s *configService) GetConfigByUser(ctx context.Context, userID string) (*userconfig.Config, error) {
	if userID == "" {
		return nil, apperrors.BadRequestError(nil, UserIDRequiredMessage)
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.BadRequestError(err, UserIDInvalidMessage)
	}

	cfg, err := s.store.GetConfigByUser(ctx, id)
	if err != nil {
		if errors.Is(err, userstore.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, apperrors.GeneralError(fmt.Errorf("failed to get config: %w", err))
	}

	opened, err := s.open(cfg)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return opened, nil
}

// seal returns a copy of cfg with its credential fields encrypted
func (s *configService) seal(cfg *userconfig.Config) (*userconfig.Config, error) {
	out := *cfg
	var err error

	if out.RPCAPIKey, err = s.keyCipher.Encrypt(cfg.RPCAPIKey); err != nil {
		return nil, fmt.Errorf("failed to encrypt rpc_api_key: %w", err)
	}
	if cfg.RPCURL != nil {
		url, err := s.keyCipher.Encrypt(*cfg.RPCURL)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt rpc_url: %w", err)
		}
		out.RPCURL = &url
	}
	if out.RailwayAPIKey, err = s.keyCipher.Encrypt(cfg.RailwayAPIKey); err != nil {
		return nil, fmt.Errorf("failed to encrypt railway_api_key: %w", err)
	}
	return &out, nil
}

// open returns a copy of cfg with its credential fields decrypted
func (s *configService) open(cfg *userconfig.Config) (*userconfig.Config, error) {
	out := *cfg
	var err error

	if out.RPCAPIKey, err = s.decrypt(cfg.RPCAPIKey); err != nil {
		return nil, fmt.Errorf("failed to decrypt rpc_api_key: %w", err)
	}
	if cfg.RPCURL != nil {
		url, err := s.decrypt(*cfg.RPCURL)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt rpc_url: %w", err)
		}
		out.RPCURL = &url
	}
	if out.RailwayAPIKey, err = s.decrypt(cfg.RailwayAPIKey); err != nil {
		return nil, fmt.Errorf("failed to decrypt railway_api_key: %w", err)
	}
	return &out, nil
}

// decrypt passes through values written before a master key was configured
func (s *configService) decrypt(value string) (string, error) {
	plain, err := s.keyCipher.Decrypt(value)
	if errors.Is(err, keys.ErrNotEncrypted) {
		return value, nil
	}
	return plain, err
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// validationError turns the first failed rule into a caller-facing message
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.BadRequestError(err, "invalid config")
	}

	fe := verrs[0]
	if fe.Field() == "user_id" {
		if fe.Tag() == "required" {
			return apperrors.BadRequestError(err, UserIDRequiredMessage)
		}
		return apperrors.BadRequestError(err, UserIDInvalidMessage)
	}

	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		msg = fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "max":
		msg = fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "url":
		msg = fmt.Sprintf("%s must be a valid URL", fe.Field())
	default:
		msg = fmt.Sprintf("%s is invalid", fe.Field())
	}
	return apperrors.BadRequestError(err, msg)
}
