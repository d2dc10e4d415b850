package s3

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/chirayuG-nvidia/cugraph/blobstore"
)

// CurrentName is the virtual blob naming the latest committed
// snapshot. Reading it returns the snapshot blob name; writing it
// commits a new version.
const CurrentName = "CURRENT"

// ErrConcurrentCommit is returned when another writer committed a
// snapshot version concurrently.
var ErrConcurrentCommit = errors.New("s3: concurrent snapshot commit detected")

// DDBClient is the interface for DynamoDB operations.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// DDBCommitStore implements blobstore.BlobStore backed by S3 with
// DynamoDB for atomic snapshot commits, enabling safe concurrent
// writers.
//
// S3 holds the snapshot blobs; DynamoDB holds a monotonically
// versioned commit log whose conditional writes supply the
// compare-and-swap semantics S3 lacks. The CURRENT pointer is a
// virtual blob resolved through the commit log, never materialized in
// S3.
//
// Table schema:
//   - Partition key: base_uri (string) - the S3 bucket/prefix
//   - Sort key: version (number) - monotonically increasing
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name cugraph-commits \
//	  --attribute-definitions AttributeName=base_uri,AttributeType=S AttributeName=version,AttributeType=N \
//	  --key-schema AttributeName=base_uri,KeyType=HASH AttributeName=version,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
type DDBCommitStore struct {
	s3Store   *Store
	ddbClient DDBClient
	tableName string
	baseURI   string // S3 bucket/prefix used as partition key
}

// NewDDBCommitStore creates a new S3+DynamoDB commit store. The
// baseURI should be "s3://bucket/prefix" format used as the partition
// key.
func NewDDBCommitStore(s3Store *Store, ddbClient DDBClient, tableName, baseURI string) *DDBCommitStore {
	return &DDBCommitStore{
		s3Store:   s3Store,
		ddbClient: ddbClient,
		tableName: tableName,
		baseURI:   baseURI,
	}
}

// Open opens a blob for reading. Opening CURRENT resolves the latest
// committed snapshot name through DynamoDB.
func (s *DDBCommitStore) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	if name == CurrentName {
		version, snapshotName, err := s.latestVersion(ctx)
		if err != nil {
			return nil, err
		}
		if version == 0 {
			return nil, blobstore.ErrNotFound
		}
		return &virtualCurrentBlob{content: []byte(snapshotName)}, nil
	}
	return s.s3Store.Open(ctx, name)
}

// Put writes a blob. Writing CURRENT commits the named snapshot as a
// new version through a DynamoDB conditional write.
func (s *DDBCommitStore) Put(ctx context.Context, name string, data []byte) error {
	if name == CurrentName {
		return s.commitVersion(ctx, string(data))
	}
	return s.s3Store.Put(ctx, name, data)
}

// Delete removes a blob from S3. The commit log is append-only.
func (s *DDBCommitStore) Delete(ctx context.Context, name string) error {
	return s.s3Store.Delete(ctx, name)
}

// List lists S3 blobs with the prefix.
func (s *DDBCommitStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.s3Store.List(ctx, prefix)
}

// latestVersion queries DynamoDB for the newest committed version.
func (s *DDBCommitStore) latestVersion(ctx context.Context) (uint64, string, error) {
	resp, err := s.ddbClient.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("base_uri = :uri"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uri": &types.AttributeValueMemberS{Value: s.baseURI},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return 0, "", fmt.Errorf("failed to query DynamoDB: %w", err)
	}

	if len(resp.Items) == 0 {
		return 0, "", nil
	}

	item := resp.Items[0]
	versionAttr, ok := item["version"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, "", errors.New("invalid version attribute in DynamoDB")
	}
	nameAttr, ok := item["snapshot_name"].(*types.AttributeValueMemberS)
	if !ok {
		return 0, "", errors.New("invalid snapshot_name attribute in DynamoDB")
	}

	var version uint64
	if _, err := fmt.Sscanf(versionAttr.Value, "%d", &version); err != nil {
		return 0, "", fmt.Errorf("failed to parse version: %w", err)
	}

	return version, nameAttr.Value, nil
}

// commitVersion atomically appends a new snapshot version.
func (s *DDBCommitStore) commitVersion(ctx context.Context, snapshotName string) error {
	currentVersion, _, err := s.latestVersion(ctx)
	if err != nil {
		return err
	}

	newVersion := currentVersion + 1

	// Conditional put: only succeed if this version doesn't exist yet.
	_, err = s.ddbClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item: map[string]types.AttributeValue{
			"base_uri":      &types.AttributeValueMemberS{Value: s.baseURI},
			"version":       &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", newVersion)},
			"snapshot_name": &types.AttributeValueMemberS{Value: snapshotName},
		},
		ConditionExpression: aws.String("attribute_not_exists(version)"),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return ErrConcurrentCommit
		}
		return fmt.Errorf("failed to commit version to DynamoDB: %w", err)
	}

	return nil
}

// virtualCurrentBlob serves the resolved CURRENT content from memory.
type virtualCurrentBlob struct {
	content []byte
}

func (b *virtualCurrentBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(b.content)) {
		return 0, io.EOF
	}
	n := copy(p, b.content[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (b *virtualCurrentBlob) Size() int64 {
	return int64(len(b.content))
}

func (b *virtualCurrentBlob) Close() error {
	return nil
}

// Bytes implements blobstore.Mappable.
func (b *virtualCurrentBlob) Bytes() ([]byte, error) {
	return b.content, nil
}
