package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/thierrygoms/barberapp-server/internal/domain/appointment"
	"github.com/thierrygoms/barberapp-server/internal/dto"
)

type ListForOwner struct {
	repo domain.Repository
}

func NewListForOwner(repo domain.Repository) *ListForOwner {
	return &ListForOwner{repo: repo}
}

func (uc *ListForOwner) Execute(
	ctx context.Context,
	ownerID uuid.UUID,
	filter domain.ListFilter,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListForOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			ScheduledAt: ap.ScheduledAt,
			Status:      ap.Status,
			Value:       ap.Value,
			BarberName:  ap.Barber.Name,
			ServiceName: ap.Service.Name,
		})
	}

	return out, nil
}
