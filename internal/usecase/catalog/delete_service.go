package catalog

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/thierrygoms/barberapp-server/internal/domain/catalog"
	"github.com/thierrygoms/barberapp-server/internal/httperr"
)

// DeleteService removes a service and every appointment referencing it, as
// two sequential statements with no shared transaction. If the appointments
// delete fails the service stays untouched; if the service delete fails the
// appointments are already gone and the service row dangles without
// reachable bookings.
type DeleteService struct {
	repo domain.Repository
}

func NewDeleteService(repo domain.Repository) *DeleteService {
	return &DeleteService{repo: repo}
}

func (uc *DeleteService) Execute(
	ctx context.Context,
	serviceID uuid.UUID,
) (int64, error) {

	if _, err := uc.repo.GetService(ctx, serviceID); err != nil {
		return 0, httperr.ErrBusiness("service_not_found")
	}

	removed, err := uc.repo.DeleteAppointmentsByService(ctx, serviceID)
	if err != nil {
		return 0, err
	}

	if err := uc.repo.DeleteService(ctx, serviceID); err != nil {
		return removed, err
	}

	return removed, nil
}
