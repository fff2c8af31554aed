package profile

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrNotFound       = errors.New("not_found")
	ErrUsernameTaken  = errors.New("username_taken")
)
