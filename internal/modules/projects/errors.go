package projects

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrInvalidRating  = errors.New("rating_out_of_range")
	ErrNotFound       = errors.New("not_found")
	ErrForbidden      = errors.New("forbidden")
	ErrAlreadyApplied = errors.New("already_applied")
)
