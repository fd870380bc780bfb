package media

import "context"

// ImageStorage is the object store the upload endpoint writes to.
type ImageStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
