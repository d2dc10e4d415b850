// Package blobstore abstracts the storage backends that hold graph
// snapshots.
//
// A BlobStore is a flat namespace of immutable named blobs. Snapshots
// are written once with Put and read back with Open; versioning and
// atomic pointer updates are layered on top by backends that support
// them (see blobstore/s3's DynamoDB commit store).
//
// Backends:
//
//   - LocalStore: a directory on the local file system; reads are
//     memory-mapped for zero-copy section access.
//   - MemoryStore: in-memory, for tests.
//   - s3.Store: Amazon S3 (or S3 Express), multipart uploads for
//     large snapshots.
//   - minio.Store: MinIO and other S3-compatible object stores.
package blobstore
