package credential

import (
	"context"

	"github.com/chainsafe/deploy-admin/pkg/config"
)

// Local runs both probes in-process
type Local struct {
	RPC     *RPCChecker
	Railway *RailwayChecker
}

// NewLocal creates both checkers from the credentials config
func NewLocal(cfg *config.CredentialsConfig) *Local {
	return &Local{
		RPC:     NewRPCChecker(cfg),
		Railway: NewRailwayChecker(cfg),
	}
}

// CheckRPC probes RPC credentials
func (l *Local) CheckRPC(ctx context.Context, creds RPCCredentials) error {
	return l.RPC.Check(ctx, creds)
}

// CheckRailway probes Railway credentials
func (l *Local) CheckRailway(ctx context.Context, creds RailwayCredentials) error {
	return l.Railway.Check(ctx, creds)
}
