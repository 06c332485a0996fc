package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/thierrygoms/barberapp-server/internal/domain/appointment"
	"github.com/thierrygoms/barberapp-server/internal/httperr"
	"github.com/thierrygoms/barberapp-server/internal/models"
	"github.com/thierrygoms/barberapp-server/internal/notify"
	"github.com/thierrygoms/barberapp-server/internal/timezone"
)

// Notifier is satisfied by notify.Dispatcher.
type Notifier interface {
	Dispatch(ev notify.Event)
}

type SetStatus struct {
	repo     domain.Repository
	notifier Notifier
	now      func() time.Time
}

func NewSetStatus(
	repo domain.Repository,
	notifier Notifier,
	tz string,
) *SetStatus {
	return &SetStatus{
		repo:     repo,
		notifier: notifier,
		now:      func() time.Time { return timezone.NowIn(tz) },
	}
}

// Execute writes the new status over whatever is there. No transition guard:
// the admin screen may flip records back and forth, and repeating a write
// (cancelling an already cancelled booking) succeeds. A non-nil ownerID
// restricts the write to that owner's records; admins pass uuid.Nil.
func (uc *SetStatus) Execute(
	ctx context.Context,
	id uuid.UUID,
	next domain.Status,
	ownerID uuid.UUID,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ownerID != uuid.Nil && ap.UserID != ownerID {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.ApplyStatus(ap, next, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifyOwner(ap, next)

	return ap, nil
}

func (uc *SetStatus) notifyOwner(ap *models.Appointment, next domain.Status) {
	if uc.notifier == nil {
		return
	}

	when := ap.ScheduledAt.Format("02/01 15:04")

	switch next {
	case domain.StatusScheduled:
		uc.notifier.Dispatch(notify.Event{
			UserID: ap.UserID,
			Title:  "Agendamento confirmado",
			Body:   "Seu horário de " + when + " foi confirmado!",
		})
	case domain.StatusCancelled:
		uc.notifier.Dispatch(notify.Event{
			UserID: ap.UserID,
			Title:  "Agendamento cancelado",
			Body:   "Seu horário de " + when + " foi cancelado.",
		})
	}
}
