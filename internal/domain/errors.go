package domain

import "errors"

var (
	ErrPlayerNotFound         = errors.New("player not found")
	ErrTemporarilyUnavailable = errors.New("temporarily unavailable")

	// The request could not complete
	ErrNetworkFailure = errors.New("network failure")
	// The response body was not the expected JSON envelope
	ErrParseFailure = errors.New("parse failure")
	// A required field of a draft was empty
	ErrValidationFailure = errors.New("validation failure")
	// The API answered with a well formed error envelope
	ErrAPIRejected = errors.New("rejected by roster api")
)
