package blobstore

import (
	"context"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for accessing immutable snapshot blobs.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)

	// Put writes a blob atomically under the given name.
	Put(ctx context.Context, name string, data []byte) error

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of blobs with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a stored blob.
type Blob interface {
	// ReadAt reads len(p) bytes starting at offset off.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)

	// Size returns the size of the blob in bytes.
	Size() int64

	// Close releases the handle.
	Close() error
}

// Mappable is an optional interface for Blobs that support memory
// mapping.
type Mappable interface {
	// Bytes returns the underlying byte slice, valid until the Blob
	// is closed. This is a zero-copy operation if supported.
	Bytes() ([]byte, error)
}

// ReadAll reads an entire blob, using the zero-copy path when the
// blob is Mappable.
func ReadAll(ctx context.Context, b Blob) ([]byte, error) {
	if m, ok := b.(Mappable); ok {
		data, err := m.Bytes()
		if err == nil {
			out := make([]byte, len(data))
			copy(out, data)
			return out, nil
		}
	}
	out := make([]byte, b.Size())
	if len(out) == 0 {
		return out, nil
	}
	if _, err := b.ReadAt(ctx, out, 0); err != nil {
		return nil, err
	}
	return out, nil
}
