package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/chainsafe/deploy-admin/pkg/app/errors"
	"github.com/chainsafe/deploy-admin/pkg/credential"
)

// RPCChecker probes RPC provider credentials
//
//go:generate mockery --name RPCChecker --output mocks --outpkg mocks --filename mock_rpc_checker.go --with-expecter
type RPCChecker interface {
	Check(ctx context.Context, creds credential.RPCCredentials) error
}

// RailwayChecker probes Railway credentials
//
//go:generate mockery --name RailwayChecker --output mocks --outpkg mocks --filename mock_railway_checker.go --with-expecter
type RailwayChecker interface {
	Check(ctx context.Context, creds credential.RailwayCredentials) error
}

// Service runs credential checks on behalf of a client
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	CheckRPC(ctx context.Context, creds *credential.RPCCredentials) (*credential.Result, error)
	CheckRailway(ctx context.Context, creds *credential.RailwayCredentials) (*credential.Result, error)
}

type checkService struct {
	rpc      RPCChecker
	railway  RailwayChecker
	validate *validator.Validate
}

// NewService creates a new credential check service
func NewService(rpc RPCChecker, railway RailwayChecker) Service {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		return name
	})

	return &checkService{
		rpc:      rpc,
		railway:  railway,
		validate: v,
	}
}

// CheckRPC returns an error only for malformed input; a failed probe is a
// Result with credential.StatusError.
func (s *checkService) CheckRPC(ctx context.Context, creds *credential.RPCCredentials) (*credential.Result, error) {
	if creds == nil {
		return nil, apperrors.BadRequestError(nil, "provider is required")
	}
	if err := s.validate.Struct(creds); err != nil {
		return nil, validationError(err)
	}
	return credential.NewResult(s.rpc.Check(ctx, *creds)), nil
}

// CheckRailway returns an error only for malformed input
func (s *checkService) CheckRailway(ctx context.Context, creds *credential.RailwayCredentials) (*credential.Result, error) {
	if creds == nil {
		return nil, apperrors.BadRequestError(nil, "api_key is required")
	}
	if err := s.validate.Struct(creds); err != nil {
		return nil, validationError(err)
	}
	return credential.NewResult(s.railway.Check(ctx, *creds)), nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.BadRequestError(err, "invalid credentials")
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return apperrors.BadRequestError(err, fmt.Sprintf("%s is required", fe.Field()))
	case "oneof":
		return apperrors.BadRequestError(err, fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", ")))
	default:
		return apperrors.BadRequestError(err, fmt.Sprintf("%s is invalid", fe.Field()))
	}
}
