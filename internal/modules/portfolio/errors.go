package portfolio

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid_request")
	ErrNotFound         = errors.New("not_found")
	ErrForbidden        = errors.New("forbidden")
	ErrAttachmentExists = errors.New("attachment_exists")
	ErrNoAttachment     = errors.New("no_attachment")
	ErrUnsupportedFile  = errors.New("unsupported_file_type")
	ErrEmptyFile        = errors.New("empty_file")
	ErrFileTooLarge     = errors.New("file_too_large")
)
