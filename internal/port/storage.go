package port

import (
	"context"
	"io"
)

// UploadInput describes one source file being written to object storage.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// UploadOutput reports where the stored object landed.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage stores the uploaded register and statement files. Documents
// keep only the bucket/key reference; the bytes live here.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Delete(ctx context.Context, bucket, key string) error
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
}
