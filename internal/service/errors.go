package service

import "errors"

// Sentinel errors surfaced by the service layer. The HTTP layer maps them to
// status codes with [errors.Is]; none of them are retried internally.
var (
	// ErrInvalidDataProvided signals a missing or malformed required field.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both unknown identifier and wrong secret
	// so login failures are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid identifier or password")

	// ErrInvalidDate signals a date that does not parse as an ISO
	// "YYYY-MM-DD" calendar date.
	ErrInvalidDate = errors.New("date must be a calendar date in YYYY-MM-DD format")

	// ErrInvalidMonth signals a month outside the 1..12 range.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidYear signals a non-positive year.
	ErrInvalidYear = errors.New("year must be a positive number")

	// ErrTokenCreationFailed signals that signing a session token failed.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrVersionIsNotSpecified signals that the application was built
	// without a version string.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
