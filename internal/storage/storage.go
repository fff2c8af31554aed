package storage

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrUpload covers transport and quota failures while storing bytes.
	ErrUpload = errors.New("upload failed")
	// ErrConflict means the key already named a stored object. Keys carry a
	// millisecond timestamp, so this is unexpected; it is surfaced, not retried.
	ErrConflict = errors.New("storage key already exists")
)

// Store is the object-storage contract for portfolio attachments. Put never
// overwrites an existing key and returns the public URL of the stored object
// on success.
type Store interface {
	Put(ctx context.Context, key string, file io.Reader) (string, error)
	Remove(ctx context.Context, keys ...string) error
}
