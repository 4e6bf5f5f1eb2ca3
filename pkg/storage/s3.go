package storage

import (
	"bytes"
	"context"
	"fmt"

	"movie-catalog/pkg/utils"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// ACLUnsupportedError marks a put rejected specifically because the bucket
// refuses per-object ACLs (owner-enforced object ownership).
type ACLUnsupportedError struct {
	Err error
}

func (e *ACLUnsupportedError) Error() string {
	return fmt.Sprintf("bucket rejected object ACL: %v", e.Err)
}

func (e *ACLUnsupportedError) Unwrap() error {
	return e.Err
}

func (e *ACLUnsupportedError) ACLUnsupported() bool {
	return true
}

// S3Store talks to S3-compatible object storage.
type S3Store struct {
	client *minio.Client
	bucket string
	region string
	log    *zap.Logger
}

func NewS3Store(cfg utils.S3Config, log *zap.Logger) (*S3Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}

	return &S3Store{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
		log:    log.With(zap.String("component", "s3")),
	}, nil
}

// Put writes the object. With publicRead set it asks for a public-read
// canned ACL; a structured ACL rejection comes back as
// *ACLUnsupportedError so the caller can decide on a fallback.
func (s *S3Store) Put(ctx context.Context, key string, payload []byte, contentType string, publicRead bool) error {
	opts := minio.PutObjectOptions{ContentType: contentType}
	if publicRead {
		opts.UserMetadata = map[string]string{"x-amz-acl": "public-read"}
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(payload), int64(len(payload)), opts)
	if err == nil {
		return nil
	}

	resp := minio.ToErrorResponse(err)
	if resp.Code == "AccessControlListNotSupported" || resp.Code == "InvalidRequest" {
		return &ACLUnsupportedError{Err: err}
	}

	s.log.Error("Object put failed",
		zap.Error(err),
		zap.String("bucket", s.bucket),
		zap.String("key", key),
	)
	return fmt.Errorf("put object %s: %w", key, err)
}

// PublicURL builds the deterministic public URL for a key. It does not
// verify the object is actually reachable.
func (s *S3Store) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
