package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	domain "github.com/thierrygoms/barberapp-server/internal/domain/appointment"
	"github.com/thierrygoms/barberapp-server/internal/httperr"
	"github.com/thierrygoms/barberapp-server/internal/models"
	"github.com/thierrygoms/barberapp-server/internal/notify"
)

type notifierStub struct {
	events []notify.Event
}

func (n *notifierStub) Dispatch(ev notify.Event) {
	n.events = append(n.events, ev)
}

func newSetStatusForTest(repo domain.Repository, notifier Notifier) *SetStatus {
	return &SetStatus{
		repo:     repo,
		notifier: notifier,
		now:      fixedClock(time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)),
	}
}

func stubWithAppointment(ap *models.Appointment) *repoStub {
	return &repoStub{
		getFn: func(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
			if id != ap.ID {
				return nil, errStubNotFound
			}
			return ap, nil
		},
	}
}

func TestSetStatusCancelTwice(t *testing.T) {
	ap := &models.Appointment{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Status:      string(domain.StatusScheduled),
		ScheduledAt: time.Date(2024, time.June, 20, 14, 0, 0, 0, time.UTC),
	}
	repo := stubWithAppointment(ap)

	uc := newSetStatusForTest(repo, nil)

	// Cancel as admin, then again. The second write must also succeed.
	for i := 0; i < 2; i++ {
		got, err := uc.Execute(context.Background(), ap.ID, domain.StatusCancelled, uuid.Nil)
		if err != nil {
			t.Fatalf("attempt %d: unexpected error: %v", i+1, err)
		}
		if got.Status != string(domain.StatusCancelled) {
			t.Fatalf("attempt %d: expected Cancelado, got %q", i+1, got.Status)
		}
	}
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	ap := &models.Appointment{ID: uuid.New(), UserID: uuid.New()}
	repo := stubWithAppointment(ap)

	updated := false
	repo.updateFn = func(ctx context.Context, ap *models.Appointment) error {
		updated = true
		return nil
	}

	uc := newSetStatusForTest(repo, nil)

	_, err := uc.Execute(context.Background(), ap.ID, "Finalizado", uuid.Nil)
	if !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}
	if updated {
		t.Error("repository should not be touched on invalid status")
	}
}

func TestSetStatusOwnership(t *testing.T) {
	owner := uuid.New()
	ap := &models.Appointment{ID: uuid.New(), UserID: owner}
	repo := stubWithAppointment(ap)

	uc := newSetStatusForTest(repo, nil)

	// A different client sees the record as missing.
	_, err := uc.Execute(context.Background(), ap.ID, domain.StatusCancelled, uuid.New())
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}

	// The owner may cancel.
	if _, err := uc.Execute(context.Background(), ap.ID, domain.StatusCancelled, owner); err != nil {
		t.Fatalf("owner cancel failed: %v", err)
	}
}

func TestSetStatusMissingAppointment(t *testing.T) {
	uc := newSetStatusForTest(&repoStub{}, nil)

	_, err := uc.Execute(context.Background(), uuid.New(), domain.StatusCancelled, uuid.Nil)
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestSetStatusNotifiesOnConfirmAndCancel(t *testing.T) {
	owner := uuid.New()
	ap := &models.Appointment{
		ID:          uuid.New(),
		UserID:      owner,
		Status:      string(domain.StatusPending),
		ScheduledAt: time.Date(2024, time.June, 20, 14, 0, 0, 0, time.UTC),
	}
	repo := stubWithAppointment(ap)

	notifier := &notifierStub{}
	uc := newSetStatusForTest(repo, notifier)

	if _, err := uc.Execute(context.Background(), ap.ID, domain.StatusScheduled, uuid.Nil); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if _, err := uc.Execute(context.Background(), ap.ID, domain.StatusCompleted, uuid.Nil); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if _, err := uc.Execute(context.Background(), ap.ID, domain.StatusCancelled, uuid.Nil); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	// Confirmation and cancellation push; completion is silent.
	if len(notifier.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(notifier.events))
	}
	if notifier.events[0].Title != "Agendamento confirmado" {
		t.Errorf("unexpected first event title %q", notifier.events[0].Title)
	}
	if notifier.events[1].Title != "Agendamento cancelado" {
		t.Errorf("unexpected second event title %q", notifier.events[1].Title)
	}
	for _, ev := range notifier.events {
		if ev.UserID != owner {
			t.Errorf("event addressed to %v, expected owner %v", ev.UserID, owner)
		}
	}
}
