package repository

import "context"

// Repository reads client flags from the store.
type Repository interface {
	// GetVIPFlag returns found=false for unknown clients.
	GetVIPFlag(ctx context.Context, clientID string) (vip bool, found bool, err error)
}
