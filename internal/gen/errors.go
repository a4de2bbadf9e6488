package gen

import "errors"

var (
	// ErrMissingAPIKey indicates no access credential is configured for
	// the selected provider. This is checked at wiring time, before any
	// generation call is attempted.
	ErrMissingAPIKey = errors.New("generation api key not configured")

	// ErrUnavailable indicates the generation service could not be reached
	// or returned a non-success status.
	ErrUnavailable = errors.New("generation service unavailable")

	// ErrEmptyResponse indicates the service answered but produced no text.
	ErrEmptyResponse = errors.New("empty generation response")

	// ErrUnknownProvider indicates an unrecognized provider name in config.
	ErrUnknownProvider = errors.New("unknown generation provider")
)
