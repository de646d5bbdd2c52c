package usecase

import (
	"context"
	"fmt"
)

// IsVIPClient answers from the cache, falling back to the store.
// Store errors are not cached.
func (uc *implUseCase) IsVIPClient(ctx context.Context, clientID string) (bool, error) {
	if clientID == "" {
		return false, nil
	}
	if vip, ok := uc.cache.Get(clientID); ok {
		return vip, nil
	}

	vip, found, err := uc.repo.GetVIPFlag(ctx, clientID)
	if err != nil {
		return false, fmt.Errorf("client.IsVIPClient: %w", err)
	}
	if !found {
		uc.l.Debugf(ctx, "client.IsVIPClient: unknown client %s", clientID)
	}

	uc.cache.Add(clientID, vip)
	return vip, nil
}
