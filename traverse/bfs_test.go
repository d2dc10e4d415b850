package traverse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chirayuG-nvidia/cugraph/core"
	"github.com/chirayuG-nvidia/cugraph/graph"
)

func chainCSR(t *testing.T) *graph.CSR[int32, int32, float32] {
	t.Helper()
	// 0 -> 1 -> 2 -> 3
	csr, err := graph.NewCSR[int32, int32, float32](4, []int32{0, 1, 2}, []int32{1, 2, 3}, nil, false)
	require.NoError(t, err)
	return csr
}

func TestBFSChain(t *testing.T) {
	r, err := BFS(context.Background(), chainCSR(t), []int32{0})
	require.NoError(t, err)

	assert.Equal(t, []int32{0, 1, 2, 3}, r.Distances)
	assert.Equal(t, []int32{-1, 0, 1, 2}, r.Predecessors)
}

func TestBFSUnreachable(t *testing.T) {
	// 0 -> 1, 2 isolated.
	csr, err := graph.NewCSR[int32, int32, float32](3, []int32{0}, []int32{1}, nil, false)
	require.NoError(t, err)

	r, err := BFS(context.Background(), csr, []int32{0})
	require.NoError(t, err)

	invD := core.InvalidDistance[int32]()
	assert.Equal(t, []int32{0, 1, invD}, r.Distances)
	assert.Equal(t, []int32{-1, 0, -1}, r.Predecessors)
}

func TestBFSMultiSource(t *testing.T) {
	r, err := BFS(context.Background(), chainCSR(t), []int32{0, 2})
	require.NoError(t, err)

	// 2 is a depth-0 source, so 3 is one hop away.
	assert.Equal(t, []int32{0, 1, 0, 1}, r.Distances)
	assert.Equal(t, []int32{-1, 0, -1, 2}, r.Predecessors)
}

func TestBFSShortestHops(t *testing.T) {
	// Diamond with a long detour: 0 -> 1 -> 3, 0 -> 2 -> 3, 0 -> 3.
	csr, err := graph.NewCSR[int32, int32, float32](4,
		[]int32{0, 1, 0, 2, 0},
		[]int32{1, 3, 2, 3, 3},
		nil, false)
	require.NoError(t, err)

	r, err := BFS(context.Background(), csr, []int32{0})
	require.NoError(t, err)

	assert.Equal(t, int32(1), r.Distances[3])
	assert.Equal(t, int32(0), r.Predecessors[3])
}

func TestBFSErrors(t *testing.T) {
	csr := chainCSR(t)

	_, err := BFS(context.Background(), csr, nil)
	assert.ErrorIs(t, err, ErrNoSources)

	_, err = BFS(context.Background(), csr, []int32{9})
	assert.ErrorIs(t, err, ErrSourceOutOfRange)

	flipped, err := csr.Transpose()
	require.NoError(t, err)
	_, err = BFS(context.Background(), flipped, []int32{0})
	assert.ErrorIs(t, err, ErrTransposedStorage)
}

func TestBFSCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BFS(ctx, chainCSR(t), []int32{0})
	assert.ErrorIs(t, err, context.Canceled)
}
