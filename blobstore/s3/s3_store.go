package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/chirayuG-nvidia/cugraph/blobstore"
	"github.com/chirayuG-nvidia/cugraph/resource"
)

// Client is the subset of the S3 API the store uses. *s3.Client
// satisfies it; tests substitute fakes.
type Client interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	manager.UploadAPIClient
}

// UploadConfig configures the multipart uploader.
type UploadConfig struct {
	// PartSize is the minimum part size for multipart uploads.
	// Default: 8MB.
	PartSize int64

	// Concurrency is the number of concurrent part uploads.
	// Default: 5.
	Concurrency int

	// RateLimit throttles transfer bandwidth through the
	// controller's IO limit. Nil means unlimited.
	RateLimit *resource.Controller
}

// DefaultUploadConfig returns production defaults.
func DefaultUploadConfig() UploadConfig {
	return UploadConfig{
		PartSize:    8 * 1024 * 1024,
		Concurrency: 5,
	}
}

// Store implements blobstore.BlobStore for S3.
type Store struct {
	client   Client
	bucket   string
	prefix   string
	rc       *resource.Controller
	uploader *manager.Uploader
}

// NewStore creates a new S3 blob store. rootPrefix is prepended to
// all keys (e.g. "graphs/").
func NewStore(client Client, bucket, rootPrefix string, optFns ...func(*UploadConfig)) *Store {
	cfg := DefaultUploadConfig()
	for _, fn := range optFns {
		fn(&cfg)
	}
	return &Store{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
		rc:     cfg.RateLimit,
		uploader: manager.NewUploader(client, func(u *manager.Uploader) {
			u.PartSize = cfg.PartSize
			u.Concurrency = cfg.Concurrency
		}),
	}
}

// NewDefault creates a store with a client built from the ambient AWS
// configuration (environment, shared config files, instance role).
func NewDefault(ctx context.Context, bucket, rootPrefix string, optFns ...func(*UploadConfig)) (*Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return NewStore(s3.NewFromConfig(cfg), bucket, rootPrefix, optFns...), nil
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open opens a blob for reading.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key := s.key(name)

	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, blobstore.ErrNotFound
		}
		return nil, err
	}

	return &s3Blob{
		client: s.client,
		bucket: s.bucket,
		key:    key,
		rc:     s.rc,
		size:   aws.ToInt64(head.ContentLength),
	}, nil
}

// Put uploads a blob through the multipart manager.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	var body io.Reader = bytes.NewReader(data)
	if s.rc != nil {
		body = resource.NewRateLimitedReader(ctx, body, s.rc)
	}
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
		Body:   body,
	})
	return err
}

// Delete removes a blob.
func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	return err
}

// List returns blob names under the prefix, sorted.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	full := s.key(prefix)
	var names []string

	var token *string
	for {
		out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(s.bucket),
			Prefix:            aws.String(full),
			ContinuationToken: token,
		})
		if err != nil {
			return nil, err
		}
		for _, obj := range out.Contents {
			key := aws.ToString(obj.Key)
			rel := key
			if s.prefix != "" {
				rel = key[len(s.prefix):]
				for len(rel) > 0 && rel[0] == '/' {
					rel = rel[1:]
				}
			}
			names = append(names, rel)
		}
		if !aws.ToBool(out.IsTruncated) {
			break
		}
		token = out.NextContinuationToken
	}

	sort.Strings(names)
	return names, nil
}

func isNotFound(err error) bool {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var nsk *types.NoSuchKey
	return errors.As(err, &nsk)
}

type s3Blob struct {
	client Client
	bucket string
	key    string
	rc     *resource.Controller
	size   int64
}

// ReadAt issues a ranged GET for the requested window.
func (b *s3Blob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if off >= b.size {
		return 0, io.EOF
	}
	end := off + int64(len(p)) - 1
	if end >= b.size {
		end = b.size - 1
	}

	out, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.key),
		Range:  aws.String(rangeHeader(off, end)),
	})
	if err != nil {
		return 0, err
	}
	defer out.Body.Close()

	var body io.Reader = out.Body
	if b.rc != nil {
		body = resource.NewRateLimitedReader(ctx, body, b.rc)
	}
	n, err := io.ReadFull(body, p[:end-off+1])
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}
	if err == nil && int64(n) < int64(len(p)) {
		err = io.EOF
	}
	return n, err
}

func (b *s3Blob) Size() int64 {
	return b.size
}

func (b *s3Blob) Close() error {
	return nil
}
