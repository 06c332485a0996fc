package loyalty

import (
	"context"

	"github.com/google/uuid"
)

// Threshold is the number of completed cuts that unlocks a free one.
const Threshold = 10

// CompletedCounter is satisfied by the appointment repository.
type CompletedCounter interface {
	CountCompleted(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

type Status struct {
	Cuts        int64 `json:"cuts"`
	Threshold   int   `json:"threshold"`
	RewardReady bool  `json:"reward_ready"`
}

type Service struct {
	counter CompletedCounter
	store   Store
}

func NewService(counter CompletedCounter, store Store) *Service {
	return &Service{counter: counter, store: store}
}

// Evaluate derives the visible counter: completed cuts since the last
// acknowledgment. A user who never redeemed has baseline zero, so the raw
// completed count shows through — including on a fresh store, where an old
// count of ten re-triggers the prompt.
func (s *Service) Evaluate(ctx context.Context, userID uuid.UUID) (Status, error) {
	completed, err := s.counter.CountCompleted(ctx, userID)
	if err != nil {
		return Status{}, err
	}

	base, err := s.store.GetBaseline(ctx, userID)
	if err != nil && err != ErrNotFound {
		return Status{}, err
	}

	cuts := completed - base
	if cuts < 0 {
		// Appointments removed after a redeem (service cascade delete) can
		// leave the baseline above the count.
		cuts = 0
	}

	return Status{
		Cuts:        cuts,
		Threshold:   Threshold,
		RewardReady: cuts >= Threshold,
	}, nil
}

// Redeem acknowledges the reward prompt: the counter reads zero afterward
// while the completed count in the database stays untouched.
func (s *Service) Redeem(ctx context.Context, userID uuid.UUID) (Status, error) {
	completed, err := s.counter.CountCompleted(ctx, userID)
	if err != nil {
		return Status{}, err
	}

	if err := s.store.SetBaseline(ctx, userID, completed); err != nil {
		return Status{}, err
	}

	return Status{Cuts: 0, Threshold: Threshold, RewardReady: false}, nil
}
