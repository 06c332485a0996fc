package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/thierrygoms/barberapp-server/internal/models"
)

type Repository interface {
	GetService(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Service, error)

	// DeleteAppointmentsByService removes every appointment referencing the
	// service. Issued as its own statement, before DeleteService, with no
	// shared transaction.
	DeleteAppointmentsByService(
		ctx context.Context,
		serviceID uuid.UUID,
	) (int64, error)

	DeleteService(
		ctx context.Context,
		serviceID uuid.UUID,
	) error
}
