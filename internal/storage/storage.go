// Package storage keeps uploaded media in an S3-compatible bucket.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sethvargo/go-retry"

	"github.com/daniilsolovey/newsroom/internal/metrics"
)

const (
	// MaxAttempts is how many times Put tries to store an object.
	MaxAttempts = 3

	defaultBackoff = 200 * time.Millisecond
)

var ErrBucketNotFound = errors.New("bucket does not exist")

type Config struct {
	Endpoint       string
	AccessKey      string
	SecretKey      string
	Bucket         string
	PublicBaseURL  string
	PlaceholderURL string
}

type objectAPI interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	PutObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, opts mclient.PutObjectOptions) (mclient.UploadInfo, error)
	RemoveObject(ctx context.Context, bucket, key string, opts mclient.RemoveObjectOptions) error
	ListObjects(ctx context.Context, bucket string, opts mclient.ListObjectsOptions) <-chan mclient.ObjectInfo
}

// Objects stores and lists media objects in one bucket.
type Objects struct {
	client objectAPI
	cfg    Config
	log    *slog.Logger

	backoff time.Duration
}

// New connects to the object store and fails fast if the bucket is missing.
func New(ctx context.Context, cfg Config, log *slog.Logger) (*Objects, error) {
	endpoint := cfg.Endpoint
	secure := strings.HasPrefix(endpoint, "https://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	return newObjects(ctx, client, cfg, log)
}

func newObjects(ctx context.Context, client objectAPI, cfg Config, log *slog.Logger) (*Objects, error) {
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.Bucket, err)
	} else if !exists {
		return nil, fmt.Errorf("%w: %q", ErrBucketNotFound, cfg.Bucket)
	}

	return &Objects{
		client:  client,
		cfg:     cfg,
		log:     log,
		backoff: defaultBackoff,
	}, nil
}

// URL returns the public URL of key.
func (o *Objects) URL(key string) string {
	return strings.TrimRight(o.cfg.PublicBaseURL, "/") + "/" + key
}

// Put stores data under key, retrying with exponential backoff. When every attempt fails
// it returns the placeholder URL and stored=false instead of an error.
// Only a cancelled ctx is reported as an error.
func (o *Objects) Put(ctx context.Context, key string, data []byte, contentType string) (u string, stored bool, err error) {
	b := retry.WithMaxRetries(MaxAttempts-1, retry.NewExponential(o.backoff))

	attempt := 0
	err = retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		_, err := o.client.PutObject(ctx, o.cfg.Bucket, key, bytes.NewReader(data), int64(len(data)),
			mclient.PutObjectOptions{ContentType: contentType})
		if err != nil {
			metrics.UploadAttempts.WithLabelValues("error").Inc()
			o.log.WarnContext(ctx, "upload attempt failed", "key", key, "attempt", attempt, "error", err)
			return retry.RetryableError(err)
		}

		metrics.UploadAttempts.WithLabelValues("ok").Inc()
		return nil
	})

	if err == nil {
		return o.URL(key), true, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", false, fmt.Errorf("upload %s: %w", key, ctxErr)
	}

	metrics.UploadFallbacks.Inc()
	o.log.ErrorContext(ctx, "upload failed, using placeholder", "key", key, "attempts", attempt, "error", err)

	return o.cfg.PlaceholderURL, false, nil
}

func (o *Objects) Remove(ctx context.Context, key string) error {
	if err := o.client.RemoveObject(ctx, o.cfg.Bucket, key, mclient.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %s: %w", key, err)
	}
	return nil
}

// Keys lists the keys under prefix of objects last modified before before.
func (o *Objects) Keys(ctx context.Context, prefix string, before time.Time) ([]string, error) {
	var keys []string
	for obj := range o.client.ListObjects(ctx, o.cfg.Bucket, mclient.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list objects: %w", obj.Err)
		}
		if obj.LastModified.Before(before) {
			keys = append(keys, obj.Key)
		}
	}
	return keys, nil
}
