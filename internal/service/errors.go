package service

import "errors"

// Sentinel errors returned by the services. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrInvalidDataProvided is returned when an input fails the service
	// level validation (empty fields, out-of-range profile values,
	// unknown exercise, non-positive duration). The widget layer limits
	// inputs already, but the service is the security-relevant boundary
	// and re-validates everything.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrDuplicateUser is returned by Register when the username is
	// already taken. The original registration row is left unchanged.
	ErrDuplicateUser = errors.New("username already exists")

	// ErrInvalidCredentials is returned by Login for both an unknown
	// username and a wrong password, so callers cannot enumerate
	// registered usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
