// Package s3 implements blobstore.BlobStore on Amazon S3.
//
// Snapshot blobs upload through the SDK's multipart manager, so
// multi-gigabyte graph snapshots stream without buffering entirely in
// memory. The optional DDBCommitStore pairs S3 with DynamoDB
// conditional writes to give versioned snapshots an atomic CURRENT
// pointer, which plain S3 cannot provide.
package s3
