package usecase

import "errors"

// Sentinel errors shared by every service in this package. The HTTP layer
// folds them onto response codes, so new failure modes should wrap one of
// these rather than introduce a sibling.
var (
	ErrInvalidInput          = errors.New("invalid request input")
	ErrNotFound              = errors.New("not found")
	ErrUnauthorized          = errors.New("member identity required")
	ErrDependencyUnavailable = errors.New("upstream dependency unavailable")
)
