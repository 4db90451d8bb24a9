package entities

import (
	"time"

	"github.com/google/uuid"
)

// Verification is a single-use proof of email ownership. At most one
// live record exists per account; redeeming the code flips the owning
// account to verified and deletes the record.
type Verification struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	AccountID uuid.UUID `json:"accountId"`
	CreatedAt time.Time `json:"createdAt"`

	// Account is the owning account, populated on code lookups.
	Account *Account `json:"-"`
}
