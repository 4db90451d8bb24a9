package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents account roles
type UserRole string

const (
	UserRoleClient   UserRole = "Client"
	UserRoleOwner    UserRole = "Owner"
	UserRoleDelivery UserRole = "Delivery"

	// UserRoleAny marks an operation policy that admits any
	// authenticated account regardless of role.
	UserRoleAny UserRole = "Any"
)

// Account represents a user account. Password holds the bcrypt hash on
// the read path; on writes it may briefly hold the plaintext, which the
// persistence layer hashes before storing.
type Account struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      UserRole  `json:"role"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateAccountInput represents input for account signup
type CreateAccountInput struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     UserRole `json:"role"`
}

// LoginInput represents input for login
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EditProfileInput represents input for profile edit. Nil fields are
// left untouched.
type EditProfileInput struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Every operation returns an outcome over the wire: an ok flag and, on
// failure, a human-readable reason. The outputs are flat structs so the
// GraphQL layer can resolve them field by field.

// Reason returns a pointer to the given reason string, for failed
// outcome construction.
func Reason(s string) *string {
	return &s
}

// CreateAccountOutput is the outcome of account creation
type CreateAccountOutput struct {
	Ok    bool    `json:"ok"`
	Error *string `json:"error"`
}

// LoginOutput is the outcome of login, carrying a signed token on success
type LoginOutput struct {
	Ok    bool    `json:"ok"`
	Error *string `json:"error"`
	Token *string `json:"token"`
}

// UserProfileOutput is the outcome of a profile lookup
type UserProfileOutput struct {
	Ok    bool     `json:"ok"`
	Error *string  `json:"error"`
	User  *Account `json:"user"`
}

// EditProfileOutput is the outcome of a profile edit
type EditProfileOutput struct {
	Ok    bool    `json:"ok"`
	Error *string `json:"error"`
}

// VerifyEmailOutput is the outcome of a verification code redemption
type VerifyEmailOutput struct {
	Ok    bool    `json:"ok"`
	Error *string `json:"error"`
}
