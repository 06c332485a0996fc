package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/thierrygoms/barberapp-server/internal/domain/catalog"
	"github.com/thierrygoms/barberapp-server/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) GetService(
	ctx context.Context,
	id uuid.UUID,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *CatalogGormRepository) DeleteAppointmentsByService(
	ctx context.Context,
	serviceID uuid.UUID,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Delete(&models.Appointment{})

	return res.RowsAffected, res.Error
}

func (r *CatalogGormRepository) DeleteService(
	ctx context.Context,
	serviceID uuid.UUID,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Service{}, "id = ?", serviceID).Error
}

// Compile-time check
var _ domain.Repository = (*CatalogGormRepository)(nil)
