package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore stores attachment bytes in a Cloudinary folder. Keys keep
// the `{userID}/{userID}-{millis}.{ext}` convention below the folder root.
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret, folder string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}

	return &CloudinaryStore{cld: cld, folder: strings.Trim(folder, "/")}, nil
}

func (s *CloudinaryStore) Put(ctx context.Context, key string, file io.Reader) (string, error) {
	uploadedAt := time.Now()
	res, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       s.publicID(key),
		ResourceType:   "auto",
		Overwrite:      api.Bool(false),
		UniqueFilename: api.Bool(false),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("%w: %s", ErrUpload, res.Error.Message)
	}
	if res.SecureURL == "" {
		return "", ErrUpload
	}
	if preexistingAsset(uploadedAt, res.CreatedAt) {
		return "", fmt.Errorf("%w: %s", ErrConflict, key)
	}
	return res.SecureURL, nil
}

// preexistingAsset reports whether an upload response describes an asset that
// was already stored under the key. With Overwrite disabled Cloudinary answers
// a public-ID collision by returning the stored asset instead of failing, and
// the only visible difference is its original created_at. The one-minute
// allowance absorbs clock skew between this host and Cloudinary.
func preexistingAsset(uploadedAt, createdAt time.Time) bool {
	return !createdAt.IsZero() && uploadedAt.Sub(createdAt) > time.Minute
}

func (s *CloudinaryStore) Remove(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
			PublicID:     s.publicID(key),
			ResourceType: "image",
		})
		if err != nil {
			return fmt.Errorf("failed to remove %s: %w", key, err)
		}
		// "not found" is fine: the object is already gone.
		if res.Result != "ok" && res.Result != "not found" {
			return fmt.Errorf("failed to remove %s: %s", key, res.Result)
		}
	}
	return nil
}

func (s *CloudinaryStore) publicID(key string) string {
	if s.folder == "" {
		return key
	}
	return s.folder + "/" + key
}
