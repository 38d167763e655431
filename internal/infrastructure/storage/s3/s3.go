// Package s3 implements the image storage collaborator: binaries go straight
// to an S3-compatible bucket via presigned PUT URLs, and the API only ever
// handles the resulting reference string.
package s3

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const presignExpiry = 15 * time.Minute

// Config captures the object-store settings. Endpoint is optional and allows
// pointing at MinIO or another S3-compatible service.
type Config struct {
	Region        string
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

// ImageStore hands out presigned upload URLs for blog images.
type ImageStore struct {
	cfg Config
}

func NewImageStore(cfg Config) *ImageStore {
	return &ImageStore{cfg: cfg}
}

func (s *ImageStore) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey, s.cfg.SecretKey, "",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.Endpoint)
		}
	})

	return s3.NewPresignClient(client), nil
}

// PresignUpload returns a fresh object key and a presigned PUT URL the client
// uploads the binary to. The URL expires after presignExpiry.
func (s *ImageStore) PresignUpload(ctx context.Context) (key, uploadURL string, err error) {
	presigner, err := s.presignClient(ctx)
	if err != nil {
		return "", "", err
	}

	key = storageKey()
	req, err := presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &s.cfg.Bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", "", fmt.Errorf("presign put: %w", err)
	}

	return key, req.URL, nil
}

// PublicURL converts an object key into the reference stored on a blog post.
func (s *ImageStore) PublicURL(key string) string {
	return strings.TrimRight(s.cfg.PublicBaseURL, "/") + "/" + key
}

func storageKey() string {
	d := time.Now().UTC()
	return fmt.Sprintf("blogs/%d/%02d/%02d/%s", d.Year(), d.Month(), d.Day(), uuid.NewString())
}
