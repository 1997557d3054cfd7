// Package s3 implements the media upload collaborator: it accepts an image
// stream plus a logical folder tag and returns a publicly resolvable URL.
// Works against AWS S3 or any S3-compatible endpoint (e.g. MinIO).
package s3

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type Config struct {
	Region    string
	Bucket    string
	Endpoint  string // optional custom endpoint
	PathStyle bool
	// PublicBaseURL overrides the bucket URL when assets are served
	// through a CDN or reverse proxy.
	PublicBaseURL string
}

type Uploader struct {
	client *s3.Client
	cfg    Config
}

func NewUploader(ctx context.Context, cfg Config) (*Uploader, error) {
	const op = "client.s3.NewUploader"

	if cfg.Bucket == "" {
		return nil, fmt.Errorf("%s: bucket is required", op)
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &Uploader{client: client, cfg: cfg}, nil
}

// Upload stores the image under <folder>/<random>-<name> and returns its
// public URL.
func (u *Uploader) Upload(ctx context.Context, r io.Reader, folder, name, contentType string) (string, error) {
	const op = "client.s3.Upload"

	key := path.Join(sanitize(folder), uuid.NewString()+"-"+sanitize(name))

	input := &s3.PutObjectInput{
		Bucket: aws.String(u.cfg.Bucket),
		Key:    aws.String(key),
		Body:   r,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := u.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return u.publicURL(key), nil
}

func (u *Uploader) publicURL(key string) string {
	if u.cfg.PublicBaseURL != "" {
		return strings.TrimSuffix(u.cfg.PublicBaseURL, "/") + "/" + key
	}
	if u.cfg.Endpoint != "" {
		return strings.TrimSuffix(u.cfg.Endpoint, "/") + "/" + u.cfg.Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.cfg.Bucket, u.cfg.Region, key)
}

func sanitize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "/")
	return url.PathEscape(s)
}
