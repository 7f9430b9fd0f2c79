// Package input resolves a sequence source (local path, "-" for stdin, or an
// s3:// object) into a loaded fasta.Sequence.
package input

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"seqsa-core/fasta"
)

var (
	// ErrUnsupportedSource is returned for a source URL seqsa cannot read.
	ErrUnsupportedSource = errors.New("unsupported source")
	// ErrNotFound is returned when a remote object does not exist.
	ErrNotFound = errors.New("source not found")
)

// Config carries object-store settings. Credentials come from the
// environment (AWS_* first, then MINIO_*).
type Config struct {
	S3Endpoint string
	S3Region   string
	S3Insecure bool
}

// DefaultS3Endpoint is used when Config.S3Endpoint is empty.
const DefaultS3Endpoint = "s3.amazonaws.com"

// Open loads src.
func Open(ctx context.Context, src string, cfg Config) (*fasta.Sequence, error) {
	switch {
	case src == "-":
		rc, err := fasta.NewReader(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		defer rc.Close()
		seq, err := fasta.Load(ctx, rc, 0)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return seq, nil
	case strings.HasPrefix(src, "s3://"):
		bucket, key, err := ParseS3(src)
		if err != nil {
			return nil, err
		}
		client, err := NewS3Client(cfg)
		if err != nil {
			return nil, err
		}
		seq, err := loadObject(ctx, client, bucket, key)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src, err)
		}
		return seq, nil
	case strings.Contains(src, "://"):
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSource, src)
	}
	return fasta.LoadFile(ctx, src)
}

// ParseS3 splits s3://bucket/key.
func ParseS3(src string) (bucket, key string, err error) {
	u, err := url.Parse(src)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrUnsupportedSource, err)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Scheme != "s3" || u.Host == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q (want s3://bucket/key)", ErrUnsupportedSource, src)
	}
	return u.Host, key, nil
}

// NewS3Client builds a client for cfg. No request is made.
func NewS3Client(cfg Config) (*minio.Client, error) {
	endpoint := cfg.S3Endpoint
	if endpoint == "" {
		endpoint = DefaultS3Endpoint
	}
	creds := credentials.NewChainCredentials([]credentials.Provider{
		&credentials.EnvAWS{},
		&credentials.EnvMinio{},
	})
	return minio.New(endpoint, &minio.Options{
		Creds:  creds,
		Secure: !cfg.S3Insecure,
		Region: cfg.S3Region,
	})
}

func loadObject(ctx context.Context, client *minio.Client, bucket, key string) (*fasta.Sequence, error) {
	info, err := client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" || errResp.Code == "NoSuchBucket" {
			return nil, ErrNotFound
		}
		return nil, err
	}
	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	rc, err := fasta.NewReader(obj)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return fasta.Load(ctx, rc, int(info.Size))
}
