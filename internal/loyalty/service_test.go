package loyalty

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

type counterStub struct {
	completed map[uuid.UUID]int64
}

func (c *counterStub) CountCompleted(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	return c.completed[ownerID], nil
}

func TestEvaluateFreshUser(t *testing.T) {
	userID := uuid.New()
	svc := NewService(&counterStub{completed: map[uuid.UUID]int64{userID: 4}}, NewMemoryStore())

	status, err := svc.Evaluate(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if status.Cuts != 4 {
		t.Errorf("expected 4 cuts, got %d", status.Cuts)
	}
	if status.RewardReady {
		t.Error("reward should not be ready below the threshold")
	}
	if status.Threshold != Threshold {
		t.Errorf("expected threshold %d, got %d", Threshold, status.Threshold)
	}
}

func TestEvaluateAtThreshold(t *testing.T) {
	userID := uuid.New()
	svc := NewService(&counterStub{completed: map[uuid.UUID]int64{userID: 10}}, NewMemoryStore())

	status, err := svc.Evaluate(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !status.RewardReady {
		t.Error("reward should be ready at 10 completed cuts")
	}
}

func TestRedeemResetsVisibleCounter(t *testing.T) {
	userID := uuid.New()
	counter := &counterStub{completed: map[uuid.UUID]int64{userID: 12}}
	store := NewMemoryStore()
	svc := NewService(counter, store)

	status, err := svc.Redeem(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Cuts != 0 || status.RewardReady {
		t.Errorf("expected zeroed status after redeem, got %+v", status)
	}

	// Re-deriving at an unchanged count stays silent.
	status, err = svc.Evaluate(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Cuts != 0 || status.RewardReady {
		t.Errorf("expected silent counter after redeem, got %+v", status)
	}

	// The database count is untouched; the counter restarts from the
	// redeem point.
	counter.completed[userID] = 15

	status, err = svc.Evaluate(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Cuts != 3 {
		t.Errorf("expected 3 cuts since redeem, got %d", status.Cuts)
	}
}

func TestEvaluateRearmsOnFreshStore(t *testing.T) {
	userID := uuid.New()
	counter := &counterStub{completed: map[uuid.UUID]int64{userID: 11}}

	svc := NewService(counter, NewMemoryStore())
	if _, err := svc.Redeem(context.Background(), userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Losing the baseline store (the analog of reinstalling the app)
	// shows the full historical count again.
	svc = NewService(counter, NewMemoryStore())

	status, err := svc.Evaluate(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Cuts != 11 || !status.RewardReady {
		t.Errorf("expected re-armed prompt at 11 cuts, got %+v", status)
	}
}

func TestEvaluateClampsWhenCountDrops(t *testing.T) {
	userID := uuid.New()
	counter := &counterStub{completed: map[uuid.UUID]int64{userID: 10}}
	store := NewMemoryStore()
	svc := NewService(counter, store)

	if _, err := svc.Redeem(context.Background(), userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A service cascade delete can remove completed appointments and pull
	// the count below the baseline.
	counter.completed[userID] = 6

	status, err := svc.Evaluate(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Cuts != 0 {
		t.Errorf("expected clamped counter 0, got %d", status.Cuts)
	}
}
