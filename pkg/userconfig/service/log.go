package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/deploy-admin/pkg/userconfig"
)

const serviceName = "ConfigService"

const secretVisibleSuffix = 4

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the config Service.
// Credentials are redacted before they are logged.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// SaveConfig wraps the service method with logging
func (ls *logService) SaveConfig(ctx context.Context, req *userconfig.SaveRequest) (cfg *userconfig.Config, err error) {
	start := time.Now()

	fields := []zap.Field{
		zap.String("service", serviceName),
		zap.String("method", "SaveConfig"),
	}
	if req != nil {
		fields = append(fields,
			zap.String("user_id", req.UserID),
			zap.String("rpc_provider", req.RPCProvider),
			zap.String("rpc_api_key", redactSecret(req.RPCAPIKey)),
			zap.Bool("has_rpc_url", req.RPCURL != ""),
			zap.String("railway_api_key", redactSecret(req.RailwayAPIKey)),
			zap.String("railway_project_id", req.RailwayProjectID),
		)
	}
	ls.logger.Info("SaveConfig started", fields...)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("SaveConfig failed",
				zap.String("service", serviceName),
				zap.String("method", "SaveConfig"),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("SaveConfig completed",
				zap.String("service", serviceName),
				zap.String("method", "SaveConfig"),
				zap.String("config_id", cfg.ID.String()),
				zap.String("user_id", cfg.UserID.String()),
				zap.String("rpc_provider", string(cfg.RPCProvider)),
				zap.Time("updated_at", cfg.UpdatedAt),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.SaveConfig(ctx, req)
}

// GetConfigByUser wraps the service method with logging
func (ls *logService) GetConfigByUser(ctx context.Context, userID string) (cfg *userconfig.Config, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("GetConfigByUser failed",
				zap.String("service", serviceName),
				zap.String("method", "GetConfigByUser"),
				zap.String("user_id", userID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Debug("GetConfigByUser completed",
			zap.String("service", serviceName),
			zap.String("method", "GetConfigByUser"),
			zap.String("user_id", userID),
			zap.Bool("found", cfg != nil),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.GetConfigByUser(ctx, userID)
}

// redactSecret keeps only the length and the last few characters of a credential
func redactSecret(s string) string {
	if s == "" {
		return "<empty>"
	}
	if len(s) <= 2*secretVisibleSuffix {
		return fmt.Sprintf("<%d chars>", len(s))
	}
	return fmt.Sprintf("****%s (%d chars)", s[len(s)-secretVisibleSuffix:], len(s))
}
