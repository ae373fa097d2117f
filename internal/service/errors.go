package service

import "errors"

var (
	// validation
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidPrice    = errors.New("price and ingredients cost must be numeric")
	ErrEmptyOrder      = errors.New("order must contain at least one choice")
	ErrInvalidQuantity = errors.New("choice quantity must be positive")

	// duplicates
	ErrUsernameTaken = errors.New("username already in use")
	ErrEmailTaken    = errors.New("email address already in use")

	// authentication
	ErrUnknownUser     = errors.New("username not found")
	ErrInvalidPassword = errors.New("invalid password")

	// authorization
	ErrNotAllowed = errors.New("insufficient role for this action")

	// lookups
	ErrOrderNotFound  = errors.New("order not found")
	ErrDishNotFound   = errors.New("dish not found")
	ErrRoleNotFound   = errors.New("role not found")
	ErrStatusNotFound = errors.New("status code not found")
	ErrUnknownStatus  = errors.New("unknown status code")
)
