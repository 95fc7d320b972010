package entities

import "errors"

var (
	// ErrMissingToken is returned when no access token could be resolved.
	ErrMissingToken = errors.New("missing token: set GH_TOKEN (PAT) or GITHUB_TOKEN")

	// ErrInvalidRepository is returned for a malformed repository identifier.
	ErrInvalidRepository = errors.New("invalid repository identifier")

	// ErrUnauthorized means the remote rejected the token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden means the token lacks permission for the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrStaleRevision means a guarded update was rejected because the file
	// changed on the remote after it was read.
	ErrStaleRevision = errors.New("stale revision")

	// ErrRateLimited means the remote throttled the request.
	ErrRateLimited = errors.New("rate limited")
)
