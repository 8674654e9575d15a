package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/chainsafe/deploy-admin/pkg/app/errors"
	"github.com/chainsafe/deploy-admin/pkg/user"
	"github.com/chainsafe/deploy-admin/pkg/userstore"
)

const (
	// WalletRequiredMessage is returned when a request names no wallet address
	WalletRequiredMessage = "Wallet address is required"
	// UserExistsMessage is returned when the wallet address is already registered
	UserExistsMessage = "User already exists"
)

// Store is the narrow data-access interface for the user service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	CreateUser(ctx context.Context, walletAddress string) (*user.User, error)
	GetUserByWallet(ctx context.Context, walletAddress string) (*user.User, error)
}

// Service defines the interface for the user business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	// CreateUser registers a new wallet address
	CreateUser(ctx context.Context, walletAddress string) (*user.User, error)
	// GetUserByWallet returns the user for the wallet, or nil when there is none.
	// It never creates a user.
	GetUserByWallet(ctx context.Context, walletAddress string) (*user.User, error)
}

type walletInput struct {
	WalletAddress string `validate:"required"`
}

type userService struct {
	store    Store
	validate *validator.Validate
}

// NewService creates a new user service
func NewService(store Store) Service {
	return &userService{
		store:    store,
		validate: validator.New(),
	}
}

func (s *userService) CreateUser(ctx context.Context, walletAddress string) (*user.User, error) {
	if err := s.validateWallet(walletAddress); err != nil {
		return nil, err
	}

	usr, err := s.store.CreateUser(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, userstore.ErrUserExists) {
			return nil, apperrors.ConflictError(err, UserExistsMessage)
		}
		return nil, apperrors.GeneralError(fmt.Errorf("failed to create user: %w", err))
	}
	return usr, nil
}

func (s *userService) GetUserByWallet(ctx context.Context, walletAddress string) (*user.User, error) {
	if err := s.validateWallet(walletAddress); err != nil {
		return nil, err
	}

	usr, err := s.store.GetUserByWallet(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			return nil, nil
		}
		return nil, apperrors.GeneralError(fmt.Errorf("failed to get user: %w", err))
	}
	return usr, nil
}

func (s *userService) validateWallet(walletAddress string) error {
	if err := s.validate.Struct(walletInput{WalletAddress: walletAddress}); err != nil {
		return apperrors.BadRequestError(err, WalletRequiredMessage)
	}
	return nil
}
