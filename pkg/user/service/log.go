package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/deploy-admin/pkg/user"
)

const serviceName = "UserService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the user Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// CreateUser wraps the service method with logging
func (ls *logService) CreateUser(ctx context.Context, walletAddress string) (usr *user.User, err error) {
	start := time.Now()

	ls.logger.Info("CreateUser started",
		zap.String("service", serviceName),
		zap.String("method", "CreateUser"),
		zap.String("wallet_address", walletAddress),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("CreateUser failed",
				zap.String("service", serviceName),
				zap.String("method", "CreateUser"),
				zap.String("wallet_address", walletAddress),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("CreateUser completed",
				zap.String("service", serviceName),
				zap.String("method", "CreateUser"),
				zap.String("user_id", usr.ID.String()),
				zap.String("wallet_address", usr.WalletAddress),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.CreateUser(ctx, walletAddress)
}

// GetUserByWallet wraps the service method with logging
func (ls *logService) GetUserByWallet(ctx context.Context, walletAddress string) (usr *user.User, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("GetUserByWallet failed",
				zap.String("service", serviceName),
				zap.String("method", "GetUserByWallet"),
				zap.String("wallet_address", walletAddress),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Debug("GetUserByWallet completed",
			zap.String("service", serviceName),
			zap.String("method", "GetUserByWallet"),
			zap.String("wallet_address", walletAddress),
			zap.Bool("found", usr != nil),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.GetUserByWallet(ctx, walletAddress)
}
