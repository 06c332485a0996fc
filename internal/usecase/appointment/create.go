package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/thierrygoms/barberapp-server/internal/domain/appointment"
	"github.com/thierrygoms/barberapp-server/internal/httperr"
	"github.com/thierrygoms/barberapp-server/internal/models"
	"github.com/thierrygoms/barberapp-server/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// The booking screen holds barber and service display names, not ids; both
// are re-resolved by name at submission time. Renames or name collisions
// between selection and submission can misbook (kept as the app behaves).
type CreateAppointmentInput struct {
	UserID uuid.UUID

	BarberName  string
	ServiceName string

	Date string // 2006-01-02
	Time string // 15:04
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo domain.Repository
	loc  *time.Location
	now  func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	tz string,
) *CreateAppointment {
	loc := timezone.Location(tz)
	return &CreateAppointment{
		repo: repo,
		loc:  loc,
		now:  func() time.Time { return time.Now().In(loc) },
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if in.UserID == uuid.Nil {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		uc.loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if start.Before(uc.now()) {
		return nil, httperr.ErrBusiness("past_date")
	}

	barber, err := uc.repo.GetBarberByName(ctx, in.BarberName)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	service, err := uc.repo.GetServiceByName(ctx, in.ServiceName)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	ap := &models.Appointment{
		UserID:      in.UserID,
		BarberID:    barber.ID,
		ServiceID:   service.ID,
		ScheduledAt: start,
		Status:      string(domain.InitialStatus()),
		// Snapshot of the current price; later price edits do not touch it.
		Value: service.Price,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
