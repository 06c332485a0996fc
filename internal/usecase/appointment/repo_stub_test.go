package appointment

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domain "github.com/thierrygoms/barberapp-server/internal/domain/appointment"
	"github.com/thierrygoms/barberapp-server/internal/models"
)

var errStubNotFound = errors.New("not found")

type repoStub struct {
	getBarberFn   func(ctx context.Context, name string) (*models.Barber, error)
	getServiceFn  func(ctx context.Context, name string) (*models.Service, error)
	createFn      func(ctx context.Context, ap *models.Appointment) error
	getFn         func(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	updateFn      func(ctx context.Context, ap *models.Appointment) error
	listOwnerFn  func(ctx context.Context, ownerID uuid.UUID, f domain.ListFilter) ([]models.Appointment, error)
	listAllFn    func(ctx context.Context) ([]models.Appointment, error)
	countDoneFn  func(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

func (r *repoStub) GetBarberByName(ctx context.Context, name string) (*models.Barber, error) {
	if r.getBarberFn != nil {
		return r.getBarberFn(ctx, name)
	}
	return nil, errStubNotFound
}

func (r *repoStub) GetServiceByName(ctx context.Context, name string) (*models.Service, error) {
	if r.getServiceFn != nil {
		return r.getServiceFn(ctx, name)
	}
	return nil, errStubNotFound
}

func (r *repoStub) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if r.createFn != nil {
		return r.createFn(ctx, ap)
	}
	return nil
}

func (r *repoStub) GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	if r.getFn != nil {
		return r.getFn(ctx, id)
	}
	return nil, errStubNotFound
}

func (r *repoStub) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if r.updateFn != nil {
		return r.updateFn(ctx, ap)
	}
	return nil
}

func (r *repoStub) ListForOwner(ctx context.Context, ownerID uuid.UUID, f domain.ListFilter) ([]models.Appointment, error) {
	if r.listOwnerFn != nil {
		return r.listOwnerFn(ctx, ownerID, f)
	}
	return nil, nil
}

func (r *repoStub) ListAll(ctx context.Context) ([]models.Appointment, error) {
	if r.listAllFn != nil {
		return r.listAllFn(ctx)
	}
	return nil, nil
}

func (r *repoStub) CountCompleted(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	if r.countDoneFn != nil {
		return r.countDoneFn(ctx, ownerID)
	}
	return 0, nil
}

var _ domain.Repository = (*repoStub)(nil)
