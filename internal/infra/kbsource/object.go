package kbsource

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yanqian/support-qa/internal/domain/faq"
)

// maxObjectBytes bounds the knowledge base document read from object storage.
const maxObjectBytes = 8 << 20

// ObjectSource reads qa-database.json from an S3-compatible bucket (S3, R2, MinIO).
type ObjectSource struct {
	client *minio.Client
	bucket string
	key    string
}

// NewObjectSource constructs the source.
func NewObjectSource(endpoint, accessKey, secretKey, bucket, region, key string) (*ObjectSource, error) {
	useSSL := !strings.HasPrefix(strings.ToLower(strings.TrimSpace(endpoint)), "http://")
	client, err := minio.New(sanitizeEndpoint(endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure:       useSSL,
		Region:       region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init object storage client: %w", err)
	}
	return &ObjectSource{client: client, bucket: bucket, key: key}, nil
}

// Name implements faq.Source.
func (s *ObjectSource) Name() string {
	return "object_storage"
}

// Load implements faq.Source.
func (s *ObjectSource) Load(ctx context.Context) ([]faq.Entry, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.wrap(err)
	}
	defer obj.Close()

	data, err := io.ReadAll(io.LimitReader(obj, maxObjectBytes+1))
	if err != nil {
		return nil, s.wrap(err)
	}
	if len(data) > maxObjectBytes {
		return nil, fmt.Errorf("object %s/%s exceeds %d bytes", s.bucket, s.key, maxObjectBytes)
	}
	return decodeEntries(data)
}

func (s *ObjectSource) wrap(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return fmt.Errorf("object %s/%s: %w", s.bucket, s.key, ErrNotFound)
	}
	return fmt.Errorf("get object %s/%s: %w", s.bucket, s.key, err)
}

// sanitizeEndpoint removes schemes and paths to satisfy minio.New expectations.
func sanitizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if i := strings.Index(raw, "/"); i >= 0 {
		raw = raw[:i]
	}
	return raw
}

var _ faq.Source = (*ObjectSource)(nil)
