package services

import "errors"

// Sentinel errors returned by the service layer. Handlers match these
// with errors.Is and map them to HTTP statuses; anything else is a
// storage failure and surfaces as a 500 with no internal detail.
var (
	// ErrNotFound signals that the referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken signals a signup attempt with an already
	// registered email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two cases are deliberately indistinguishable so
	// callers cannot enumerate registered emails.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrPasswordTooLong signals a signup password over bcrypt's
	// 72-byte limit, a caller fault rather than a server one.
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)
