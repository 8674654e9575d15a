package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an account identified by the wallet it connected with.
// The wallet address never changes once the user exists.
type User struct {
	ID            uuid.UUID `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateRequest is the body of POST /user
type CreateRequest struct {
	WalletAddress string `json:"walletAddress"`
}
