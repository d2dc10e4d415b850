package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chirayuG-nvidia/cugraph/internal/mmap"
	"github.com/chirayuG-nvidia/cugraph/resource"
)

// LocalStore implements BlobStore using the local file system.
// Reads are memory-mapped; writes go through a temp file and rename
// so a crash never leaves a partial blob under the final name.
type LocalStore struct {
	root string
	rc   *resource.Controller
}

// LocalOption configures a LocalStore.
type LocalOption func(*LocalStore)

// WithRateLimit throttles blob writes through the controller's IO
// limit.
func WithRateLimit(rc *resource.Controller) LocalOption {
	return func(s *LocalStore) {
		s.rc = rc
	}
}

// NewLocalStore creates a new LocalStore rooted at the given
// directory, creating it if needed.
func NewLocalStore(root string, optFns ...LocalOption) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	s := &LocalStore{root: root}
	for _, fn := range optFns {
		fn(s)
	}
	return s, nil
}

func (s *LocalStore) path(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}

// Open opens a blob for reading via mmap.
func (s *LocalStore) Open(_ context.Context, name string) (Blob, error) {
	m, err := mmap.Open(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &localBlob{m: m}, nil
}

// Put writes a blob atomically.
func (s *LocalStore) Put(ctx context.Context, name string, data []byte) error {
	path := s.path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".blob-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	var w io.Writer = tmp
	if s.rc != nil {
		w = resource.NewRateLimitedWriter(ctx, tmp, s.rc)
	}
	if _, err := w.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

// Delete removes a blob.
func (s *LocalStore) Delete(_ context.Context, name string) error {
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// List returns blob names under the root matching the prefix.
func (s *LocalStore) List(_ context.Context, prefix string) ([]string, error) {
	var names []string
	err := filepath.WalkDir(s.root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if strings.HasPrefix(name, prefix) && !strings.HasPrefix(filepath.Base(name), ".blob-") {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

type localBlob struct {
	m *mmap.File
}

func (b *localBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	return b.m.ReadAt(p, off)
}

func (b *localBlob) Size() int64 {
	return int64(len(b.m.Data))
}

func (b *localBlob) Close() error {
	return b.m.Close()
}

// Bytes implements Mappable; the slice is valid until Close.
func (b *localBlob) Bytes() ([]byte, error) {
	return b.m.Data, nil
}

var _ io.Closer = (*localBlob)(nil)
var _ Mappable = (*localBlob)(nil)
