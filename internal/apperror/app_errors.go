package apperror

import "errors"

var (
	ErrConfiguration       = errors.New("invalid configuration")
	ErrFrontendUnavailable = errors.New("frontend is not available in this build")
	ErrUnknownFrontend     = errors.New("unknown frontend")
)
