package storage

import (
	"context"
	"log/slog"

	"geekstore/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"

	// URL openers for file://, mem://, s3:// and gs:// buckets
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// BlobStorage stores files in any bucket gocloud can open by URL
type BlobStorage struct {
	bucket        *blob.Bucket
	root          string
	publicBaseURL string
	logger        *slog.Logger
}

// NewBlobStorage opens bucketURL, e.g. file:///var/uploads?create_dir=true or gs://bucket
func NewBlobStorage(ctx context.Context, bucketURL, root, publicBaseURL string, logger *slog.Logger) (*BlobStorage, error) {
	if bucketURL == "" {
		return nil, errors.New("storage.bucketUrl is required for the blob provider")
	}
	if publicBaseURL == "" {
		return nil, errors.New("storage.publicBaseUrl is required for the blob provider")
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	logger.Info("Blob storage initialized", slog.String("bucket_url", bucketURL))

	return &BlobStorage{
		bucket:        bucket,
		root:          root,
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}, nil
}

var _ service.FileStorage = (*BlobStorage)(nil)

// Upload writes the file under <root>/<folder> and returns its public URL
func (s *BlobStorage) Upload(ctx context.Context, folder string, file *service.UploadFile) (string, error) {
	if file == nil || file.Content == nil {
		return "", errors.New("upload file is empty")
	}

	key := objectKey(s.root, folder, file.Filename)
	opts := &blob.WriterOptions{ContentType: file.ContentType}

	if err := s.bucket.Upload(ctx, key, file.Content, opts); err != nil {
		return "", errors.Wrapf(err, "upload %s", key)
	}

	s.logger.Info("File uploaded",
		slog.String("key", key),
		slog.Int64("size", file.Size),
	)

	return joinURL(s.publicBaseURL, key), nil
}

// Close releases the bucket
func (s *BlobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}
