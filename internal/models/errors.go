package models

import "github.com/pkg/errors"

var (
	// ErrFetchFailed is the generic user-facing error for any failure while
	// retrieving weather data. Callers see this message, never the cause.
	ErrFetchFailed = errors.New("failed to load weather data")

	// ErrInvalidCredentials is part of the auth error taxonomy. The mock auth
	// flow never actually raises it.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
