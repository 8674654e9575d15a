package settings

import (
	"github.com/google/uuid"

	"github.com/chainsafe/deploy-admin/pkg/userconfig"
)

// Status is the connection state of one credential group
type Status string

const (
	StatusUnconfigured Status = "unconfigured"
	StatusTesting      Status = "testing"
	StatusConnected    Status = "connected"
	StatusError        Status = "error"
)

// DeployStatus is the state of the last save
type DeployStatus string

const (
	DeployIdle      DeployStatus = "idle"
	DeployDeploying DeployStatus = "deploying"
	DeploySuccess   DeployStatus = "success"
	DeployError     DeployStatus = "error"
)

// RPCGroup holds the RPC provider fields
type RPCGroup struct {
	Provider userconfig.Provider
	APIKey   string
	URL      string
	Status   Status
	Error    string

	generation uint64
}

// RailwayGroup holds the Railway fields
type RailwayGroup struct {
	APIKey    string
	ProjectID string
	Status    Status
	Error     string

	generation uint64
}

// State is a snapshot of the panel
type State struct {
	WalletAddress string
	UserID        uuid.UUID
	Loading       bool
	LoadError     string

	RPC     RPCGroup
	Railway RailwayGroup

	Deploy      DeployStatus
	DeployError string
}

// HasUser reports whether a wallet has been connected and resolved to a user
func (s State) HasUser() bool {
	return s.UserID != uuid.Nil
}

func initialState() State {
	return State{
		RPC: RPCGroup{
			Provider: userconfig.ProviderHelius,
			Status:   StatusUnconfigured,
		},
		Railway: RailwayGroup{
			Status: StatusUnconfigured,
		},
		Deploy: DeployIdle,
	}
}
