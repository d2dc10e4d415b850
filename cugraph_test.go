package cugraph_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chirayuG-nvidia/cugraph"
	"github.com/chirayuG-nvidia/cugraph/core"
	"github.com/chirayuG-nvidia/cugraph/graph"
)

// chainGraph builds 10 -> 20 -> 30 -> 40 with int32 IDs.
func chainGraph(t *testing.T, optFns ...cugraph.Option) *cugraph.Graph {
	t.Helper()
	g, err := cugraph.FromEdges[int32, int32, float32](context.Background(),
		[]int32{10, 20, 30},
		[]int32{20, 30, 40},
		nil, optFns...)
	require.NoError(t, err)
	return g
}

func TestFromEdges(t *testing.T) {
	g := chainGraph(t)

	assert.Equal(t, core.KindInt32, g.VertexKind())
	assert.Equal(t, core.KindInt32, g.EdgeKind())
	assert.Equal(t, core.KindFloat32, g.WeightKind())
	assert.Equal(t, int64(4), g.NumVertices())
	assert.Equal(t, int64(3), g.NumEdges())
	assert.False(t, g.Partitioned())
	assert.False(t, g.StoreTransposed())
}

func TestFromEdgesValidation(t *testing.T) {
	ctx := context.Background()

	_, err := cugraph.FromEdges[int32, int32, float32](ctx, []int32{1}, []int32{2, 3}, nil)
	assert.ErrorIs(t, err, graph.ErrMismatchedLengths)

	_, err = cugraph.FromEdges[int32, int32, float32](ctx, nil, nil, nil)
	assert.ErrorIs(t, err, graph.ErrEmptyEdgeList)

	_, err = cugraph.FromEdges[int32, int32, float32](ctx, []int32{-3}, []int32{1}, nil)
	assert.ErrorIs(t, err, graph.ErrNegativeVertexID)
}

func TestFromEdgesUnsupportedKinds(t *testing.T) {
	// Edge type narrower than the vertex type has no instantiation.
	_, err := cugraph.FromEdges[int64, int32, float32](context.Background(), []int64{1}, []int64{2}, nil)
	assert.ErrorIs(t, err, cugraph.ErrUnsupportedTypes)

	var uk *cugraph.ErrUnsupportedKinds
	require.ErrorAs(t, err, &uk)
	assert.Equal(t, core.KindInt64, uk.Vertex)
	assert.Equal(t, core.KindInt32, uk.Edge)
}

func TestBFSExternalPredecessors(t *testing.T) {
	g := chainGraph(t)

	r, err := cugraph.BFS(context.Background(), g, core.NewInt32Buffer([]int32{10}))
	require.NoError(t, err)

	// Distances are hop counts indexed by internal ID; internal order
	// follows ascending external IDs.
	assert.Equal(t, core.KindInt32, r.Distances().Kind())
	assert.Equal(t, []int32{0, 1, 2, 3}, r.Distances().AsInt32())

	// Predecessor values are external IDs.
	assert.Equal(t, []int32{-1, 10, 20, 30}, r.Predecessors().AsInt32())
}

func TestBFSUnknownSource(t *testing.T) {
	g := chainGraph(t)

	_, err := cugraph.BFS(context.Background(), g, core.NewInt32Buffer([]int32{99}))
	assert.ErrorIs(t, err, cugraph.ErrLookupFailed)

	var vnf *graph.ErrVertexNotFound
	require.ErrorAs(t, err, &vnf)
	assert.Equal(t, int64(99), vnf.ID)
}

func TestBFSKindMismatch(t *testing.T) {
	g := chainGraph(t)

	_, err := cugraph.BFS(context.Background(), g, core.NewInt64Buffer([]int64{10}))
	assert.ErrorIs(t, err, cugraph.ErrKindMismatch)
}

func TestBFSTransposedStorage(t *testing.T) {
	// Stored transposed, re-oriented on first traversal.
	g := chainGraph(t, cugraph.WithStoreTransposed(true))
	require.True(t, g.StoreTransposed())

	r, err := cugraph.BFS(context.Background(), g, core.NewInt32Buffer([]int32{10}))
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 2, 3}, r.Distances().AsInt32())
	assert.False(t, g.StoreTransposed())
}

func TestSSSPWeighted(t *testing.T) {
	// 1 -> 2 (1.0), 2 -> 3 (1.0), 1 -> 3 (5.0).
	g, err := cugraph.FromEdges[int32, int32, float64](context.Background(),
		[]int32{1, 2, 1},
		[]int32{2, 3, 3},
		[]float64{1, 1, 5})
	require.NoError(t, err)

	r, err := cugraph.SSSP(context.Background(), g, core.NewInt32Buffer([]int32{1}))
	require.NoError(t, err)

	assert.Equal(t, core.KindFloat64, r.Distances().Kind())
	assert.Equal(t, []float64{0, 1, 2}, r.Distances().AsFloat64())
	assert.Equal(t, []int32{-1, 1, 2}, r.Predecessors().AsInt32())
}

func TestInt64Graph(t *testing.T) {
	g, err := cugraph.FromEdges[int64, int64, float32](context.Background(),
		[]int64{100, 200},
		[]int64{200, 300},
		nil)
	require.NoError(t, err)

	r, err := cugraph.BFS(context.Background(), g, core.NewInt64Buffer([]int64{100}))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2}, r.Distances().AsInt64())
	assert.Equal(t, []int64{-1, 100, 200}, r.Predecessors().AsInt64())
}

func TestMetricsCollection(t *testing.T) {
	metrics := &cugraph.BasicMetricsCollector{}
	g := chainGraph(t, cugraph.WithMetricsCollector(metrics))
	ctx := context.Background()

	src := core.NewInt32Buffer([]int32{10})
	r, err := cugraph.BFS(ctx, g, src)
	require.NoError(t, err)

	res, err := cugraph.ExtractPaths(ctx, g, src, r, core.NewInt32Buffer([]int32{40, 20}))
	require.NoError(t, err)
	defer res.Close()

	_, err = cugraph.BFS(ctx, g, core.NewInt32Buffer([]int32{99}))
	require.Error(t, err)

	assert.Equal(t, int64(2), metrics.TraversalCount.Load())
	assert.Equal(t, int64(1), metrics.TraversalErrors.Load())
	assert.Equal(t, int64(1), metrics.ExtractCount.Load())
	assert.Equal(t, int64(2), metrics.ExtractDestinations.Load())
}
