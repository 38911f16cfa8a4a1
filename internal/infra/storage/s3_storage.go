package storage

import (
	"context"
	"fmt"
	"log/slog"

	"geekstore/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

// objectPutter is the part of *s3.Client the storage needs.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Options configures an S3 or S3 compatible bucket
type S3Options struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Endpoint  string
	CDNDomain string
	Root      string
}

type s3Storage struct {
	client objectPutter
	opts   S3Options
	logger *slog.Logger
}

// NewS3Storage creates an S3 backed FileStorage. Static keys are optional; the default chain is used otherwise.
func NewS3Storage(ctx context.Context, opts S3Options, logger *slog.Logger) (service.FileStorage, error) {
	if opts.Bucket == "" {
		return nil, errors.New("storage.s3.bucket is required for the s3 provider")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Info("S3 storage initialized",
		slog.String("bucket", opts.Bucket),
		slog.String("region", opts.Region),
	)

	return newS3Storage(client, opts, logger), nil
}

func newS3Storage(client objectPutter, opts S3Options, logger *slog.Logger) *s3Storage {
	return &s3Storage{
		client: client,
		opts:   opts,
		logger: logger,
	}
}

// Upload puts the object and returns its public URL
func (s *s3Storage) Upload(ctx context.Context, folder string, file *service.UploadFile) (string, error) {
	if file == nil || file.Content == nil {
		return "", errors.New("upload file is empty")
	}

	key := objectKey(s.opts.Root, folder, file.Filename)
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(key),
		Body:   file.Content,
	}
	if file.ContentType != "" {
		input.ContentType = aws.String(file.ContentType)
	}
	if file.Size > 0 {
		input.ContentLength = aws.Int64(file.Size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", errors.Wrapf(err, "put object %s", key)
	}

	s.logger.Info("File uploaded to S3",
		slog.String("bucket", s.opts.Bucket),
		slog.String("key", key),
	)

	return s.publicURL(key), nil
}

func (s *s3Storage) publicURL(key string) string {
	switch {
	case s.opts.CDNDomain != "":
		return joinURL("https://"+s.opts.CDNDomain, key)
	case s.opts.Endpoint != "":
		return joinURL(joinURL(s.opts.Endpoint, s.opts.Bucket), key)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.opts.Bucket, s.opts.Region, key)
	}
}
