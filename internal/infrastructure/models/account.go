package models

import (
	"time"

	"feastly.backend/pkg/crypto"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Account struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string    `gorm:"type:varchar(255);not null"`
	Role      string    `gorm:"type:varchar(50);not null;default:'Client'"`
	Verified  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// BeforeSave hashes the password whenever a plaintext value is about to
// be persisted. Callers never hash; already-hashed values pass through
// untouched so saves that do not change the password stay stable.
func (a *Account) BeforeSave(tx *gorm.DB) error {
	if a.Password == "" || crypto.IsHashed(a.Password) {
		return nil
	}
	hash, err := crypto.HashPassword(a.Password)
	if err != nil {
		return err
	}
	a.Password = hash
	return nil
}
