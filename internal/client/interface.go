package client

import "context"

// Directory answers client importance questions for the priority engine.
type Directory interface {
	// IsVIPClient reports whether the client is flagged VIP. Unknown clients are not VIP.
	IsVIPClient(ctx context.Context, clientID string) (bool, error)
}
