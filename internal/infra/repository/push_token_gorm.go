package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/thierrygoms/barberapp-server/internal/models"
	"github.com/thierrygoms/barberapp-server/internal/notify"
)

type PushTokenGormRepository struct {
	db *gorm.DB
}

func NewPushTokenGormRepository(db *gorm.DB) *PushTokenGormRepository {
	return &PushTokenGormRepository{db: db}
}

// Upsert keeps one row per (user, token); re-registering a device only
// touches updated_at.
func (r *PushTokenGormRepository) Upsert(
	ctx context.Context,
	userID uuid.UUID,
	token string,
) error {

	pt := models.PushToken{
		UserID: userID,
		Token:  token,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
		}).
		Create(&pt).Error
}

func (r *PushTokenGormRepository) ListTokens(
	ctx context.Context,
	userID uuid.UUID,
) ([]string, error) {

	var tokens []string
	if err := r.db.WithContext(ctx).
		Model(&models.PushToken{}).
		Where("user_id = ?", userID).
		Pluck("token", &tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

// Compile-time check
var _ notify.TokenSource = (*PushTokenGormRepository)(nil)
