package loyalty

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("loyalty: baseline not found")

// Store persists the per-user acknowledgment baseline: the completed-cut
// count at the moment the user last dismissed the reward prompt. It is the
// server-side analog of the app's local storage, and deliberately lives
// outside Postgres — the historical completed count is never mutated by
// redeeming, so losing this store re-arms the prompt.
type Store interface {
	GetBaseline(ctx context.Context, userID uuid.UUID) (int64, error)
	SetBaseline(ctx context.Context, userID uuid.UUID, value int64) error
}
