package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// One row per registered device. The same token may be re-registered; the
// handler upserts on (user_id, token).
type PushToken struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;index:idx_push_user_token,unique" json:"user_id"`
	Token  string    `gorm:"size:255;index:idx_push_user_token,unique" json:"token"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *PushToken) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
