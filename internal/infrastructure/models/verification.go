package models

import (
	"time"

	"feastly.backend/pkg/crypto"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Verification rows are consumed with hard deletes, so the model
// carries no DeletedAt. The unique account index enforces the
// one-record-per-account invariant at the store level.
type Verification struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CreatedAt time.Time

	Account Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns the identifier and a fresh opaque code. Code
// generation lives in the persistence layer, like password hashing.
func (v *Verification) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.Code == "" {
		code, err := crypto.GenerateVerificationCode()
		if err != nil {
			return err
		}
		v.Code = code
	}
	return nil
}
