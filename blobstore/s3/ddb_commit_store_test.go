package s3

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chirayuG-nvidia/cugraph/blobstore"
)

// fakeDDB emulates the commit table: a per-URI version map with
// conditional-write semantics.
type fakeDDB struct {
	mu    sync.Mutex
	items map[string]map[string]string // baseURI -> version -> snapshot name
}

func newFakeDDB() *fakeDDB {
	return &fakeDDB{items: make(map[string]map[string]string)}
}

func (f *fakeDDB) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	uri := in.Item["base_uri"].(*ddbtypes.AttributeValueMemberS).Value
	version := in.Item["version"].(*ddbtypes.AttributeValueMemberN).Value
	name := in.Item["snapshot_name"].(*ddbtypes.AttributeValueMemberS).Value

	if f.items[uri] == nil {
		f.items[uri] = make(map[string]string)
	}
	if _, exists := f.items[uri][version]; exists {
		return nil, &ddbtypes.ConditionalCheckFailedException{}
	}
	f.items[uri][version] = name
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDDB) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	uri := in.ExpressionAttributeValues[":uri"].(*ddbtypes.AttributeValueMemberS).Value
	versions := f.items[uri]

	var latest uint64
	var name string
	for v, n := range versions {
		var parsed uint64
		fmt.Sscanf(v, "%d", &parsed)
		if parsed > latest {
			latest = parsed
			name = n
		}
	}
	if latest == 0 {
		return &dynamodb.QueryOutput{}, nil
	}
	return &dynamodb.QueryOutput{Items: []map[string]ddbtypes.AttributeValue{{
		"version":       &ddbtypes.AttributeValueMemberN{Value: fmt.Sprintf("%d", latest)},
		"snapshot_name": &ddbtypes.AttributeValueMemberS{Value: name},
	}}}, nil
}

// racingDDB claims the next version right after every query,
// simulating a writer that commits between another writer's read and
// its conditional put.
type racingDDB struct {
	*fakeDDB
	uri string
}

func (r *racingDDB) Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	out, err := r.fakeDDB.Query(ctx, in, optFns...)
	if err != nil {
		return nil, err
	}

	var latest uint64
	if len(out.Items) > 0 {
		fmt.Sscanf(out.Items[0]["version"].(*ddbtypes.AttributeValueMemberN).Value, "%d", &latest)
	}

	r.mu.Lock()
	if r.items[r.uri] == nil {
		r.items[r.uri] = make(map[string]string)
	}
	r.items[r.uri][fmt.Sprintf("%d", latest+1)] = "racer"
	r.mu.Unlock()
	return out, nil
}

func newCommitStore(ddb DDBClient) *DDBCommitStore {
	s3Store := NewStore(newFakeS3(), "bucket", "graphs")
	return NewDDBCommitStore(s3Store, ddb, "cugraph-commits", "s3://bucket/graphs")
}

func TestCommitStoreCurrentPointer(t *testing.T) {
	ctx := context.Background()
	store := newCommitStore(newFakeDDB())

	// No commits yet.
	_, err := store.Open(ctx, CurrentName)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	require.NoError(t, store.Put(ctx, "snap-001", []byte("first snapshot")))
	require.NoError(t, store.Put(ctx, CurrentName, []byte("snap-001")))

	blob, err := store.Open(ctx, CurrentName)
	require.NoError(t, err)
	name, err := blobstore.ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, "snap-001", string(name))

	// A second commit supersedes the first.
	require.NoError(t, store.Put(ctx, "snap-002", []byte("second snapshot")))
	require.NoError(t, store.Put(ctx, CurrentName, []byte("snap-002")))

	blob, err = store.Open(ctx, CurrentName)
	require.NoError(t, err)
	name, err = blobstore.ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, "snap-002", string(name))

	// The resolved blob is the real S3 object.
	data, err := store.Open(ctx, string(name))
	require.NoError(t, err)
	got, err := blobstore.ReadAll(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, "second snapshot", string(got))
}

func TestCommitStoreConcurrentCommit(t *testing.T) {
	ctx := context.Background()
	ddb := &racingDDB{fakeDDB: newFakeDDB(), uri: "s3://bucket/graphs"}
	store := newCommitStore(ddb)

	err := store.Put(ctx, CurrentName, []byte("mine"))
	assert.ErrorIs(t, err, ErrConcurrentCommit)
}

func TestCommitStorePassThrough(t *testing.T) {
	ctx := context.Background()
	store := newCommitStore(newFakeDDB())

	require.NoError(t, store.Put(ctx, "blob", []byte("x")))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"blob"}, names)

	require.NoError(t, store.Delete(ctx, "blob"))
	_, err = store.Open(ctx, "blob")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
