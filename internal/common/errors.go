// Package common contains shared constants and sentinel errors used across
// the expotacna client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// API-level errors mapped from response status codes.
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")

	// Session errors. A token that does not have the expected three-segment
	// structure, or whose payload does not carry a numeric subject, is
	// malformed; the session must be cleared in response.
	ErrMalformedToken = errors.New("malformed token")

	// ErrNoSession is returned when no access token is stored locally.
	ErrNoSession = errors.New("no active session")
)
