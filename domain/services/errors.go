package services

import "errors"

var (
	// ErrValidation marks user-correctable input errors. Wrap it with
	// field detail: fmt.Errorf("%w: title is required", ErrValidation).
	ErrValidation = errors.New("validation failed")

	// ErrEmailTaken is returned when registering an email that exists.
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidCredentials is returned on login failure. The message is
	// deliberately the same for unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrDelivery is returned when the email transport fails.
	ErrDelivery = errors.New("email delivery failed")
)
