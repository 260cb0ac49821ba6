package domain

import "errors"

var (
	// ErrMissingCredentials signals a login attempt without email or password.
	ErrMissingCredentials = errors.New("please enter email and password")
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases share one error so neither check leaks through the API.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNotAuthenticated   = errors.New("please login to access this resource")
	ErrForbidden          = errors.New("role is not allowed to access this resource")

	ErrInvalidRegistration = errors.New("name, email and password are required")
	ErrInvalidRole         = errors.New("invalid role")
	ErrUserExists          = errors.New("email already registered")
	ErrUserNotFound        = errors.New("user not found")

	ErrInvalidProduct  = errors.New("invalid product data")
	ErrProductNotFound = errors.New("product not found")
)
