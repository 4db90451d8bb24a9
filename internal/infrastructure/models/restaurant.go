package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Restaurant struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	CoverImg      string    `gorm:"type:varchar(255)"`
	Address       string    `gorm:"type:varchar(255);not null"`
	CategoryName  string    `gorm:"type:varchar(100);not null"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	IsPromoted    bool      `gorm:"not null;default:false"`
	PromotedUntil *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	Owner Account `gorm:"foreignKey:OwnerID"`
}

func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
