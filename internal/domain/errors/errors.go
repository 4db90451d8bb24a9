package errors

import "errors"

// Domain errors
var (
	ErrNotFound             = errors.New("resource not found")
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrUserNotFound         = errors.New("user not found")
	ErrWrongPassword        = errors.New("wrong password")
	ErrInvalidToken         = errors.New("invalid token")
	ErrVerificationNotFound = errors.New("verification not found")
	ErrForbidden            = errors.New("forbidden")
	ErrPersistence          = errors.New("persistence failure")
)

// Reason strings returned in operation outcomes. These are part of the
// wire contract and must stay stable.
const (
	ReasonDuplicateEmail       = "There is a user with that email already"
	ReasonCreateAccountFailed  = "Couldn't create account"
	ReasonUserNotFound         = "User not found!"
	ReasonWrongPassword        = "Wrong password!"
	ReasonLoginFailed          = "Can't log user in!"
	ReasonProfileNotFound      = "User Not Found"
	ReasonEditProfileFailed    = "Could not update profile."
	ReasonVerificationNotFound = "Verification not found"
	ReasonVerifyEmailFailed    = "Could not verify email"

	ReasonRestaurantNotFound     = "Restaurant not found"
	ReasonNotRestaurantOwner     = "You can't edit a restaurant that you don't own"
	ReasonCreateRestaurantFailed = "Could not create restaurant"
	ReasonEditRestaurantFailed   = "Could not edit restaurant"
	ReasonLoadRestaurantsFailed  = "Could not load restaurants"
)
