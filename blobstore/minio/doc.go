// Package minio implements blobstore.BlobStore for MinIO and other
// S3-compatible object stores, for deployments that keep graph
// snapshots on self-hosted storage.
package minio
