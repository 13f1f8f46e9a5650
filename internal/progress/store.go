package progress

import "context"

// Store persists whole progress snapshots. Load returns (nil, nil) when no
// snapshot exists for the user. Subscribe registers a callback invoked when
// another writer updates a user's snapshot; implementations must round-trip
// the aggregate losslessly.
type Store interface {
	Load(ctx context.Context, userID string) (*Progress, error)
	Save(ctx context.Context, userID string, p *Progress) error
	Subscribe(fn func(userID string, p *Progress))
}
