package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/thierrygoms/barberapp-server/internal/models"
)

type Repository interface {
	// -------- Catalog lookups (by display name, as the booking
	// screen holds names, not ids) --------
	GetBarberByName(
		ctx context.Context,
		name string,
	) (*models.Barber, error)

	GetServiceByName(
		ctx context.Context,
		name string,
	) (*models.Service, error)

	// -------- Appointment (create / read / update) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListForOwner(
		ctx context.Context,
		ownerID uuid.UUID,
		filter ListFilter,
	) ([]models.Appointment, error)

	ListAll(
		ctx context.Context,
	) ([]models.Appointment, error)

	// -------- Loyalty --------
	CountCompleted(
		ctx context.Context,
		ownerID uuid.UUID,
	) (int64, error)
}
