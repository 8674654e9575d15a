package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/deploy-admin/pkg/credential"
)

const serviceName = "CredentialService"

type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the credential check Service.
// API keys are never logged.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) CheckRPC(ctx context.Context, creds *credential.RPCCredentials) (res *credential.Result, err error) {
	start := time.Now()
	defer func() {
		ls.logResult("CheckRPC", start, res, err, zap.String("provider", providerOf(creds)))
	}()

	return ls.svc.CheckRPC(ctx, creds)
}

func (ls *logService) CheckRailway(ctx context.Context, creds *credential.RailwayCredentials) (res *credential.Result, err error) {
	start := time.Now()
	defer func() {
		var projectID string
		if creds != nil {
			projectID = creds.ProjectID
		}
		ls.logResult("CheckRailway", start, res, err, zap.String("project_id", projectID))
	}()

	return ls.svc.CheckRailway(ctx, creds)
}

func (ls *logService) logResult(method string, start time.Time, res *credential.Result, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	)

	switch {
	case err != nil:
		ls.logger.Warn(method+" rejected", append(fields, zap.Error(err))...)
	case res.Status != credential.StatusConnected:
		ls.logger.Info(method+" failed", append(fields, zap.String("reason", res.Error))...)
	default:
		ls.logger.Info(method+" completed", fields...)
	}
}

func providerOf(creds *credential.RPCCredentials) string {
	if creds == nil {
		return ""
	}
	return creds.Provider
}
