package traverse

import (
	"context"

	"github.com/chirayuG-nvidia/cugraph/core"
	"github.com/chirayuG-nvidia/cugraph/graph"
)

// BFS runs breadth-first search from the given internal-space sources
// over the CSR. Distances are hop counts in the vertex type, matching
// the convention that unweighted traversal distances share the vertex
// width.
//
// Multiple sources form a single frontier at depth 0, so each vertex
// gets the hop count to its nearest source.
func BFS[V core.VertexID, E core.EdgeID, W core.Weight](ctx context.Context, csr *graph.CSR[V, E, W], sources []V) (*Result[V, V], error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	if csr.Transposed() {
		return nil, ErrTransposedStorage
	}

	n := int64(csr.NumVertices())
	invalidV := core.InvalidVertex[V]()
	invalidD := core.InvalidDistance[V]()

	dist := make([]V, n)
	pred := make([]V, n)
	for i := range dist {
		dist[i] = invalidD
		pred[i] = invalidV
	}

	frontier := make([]V, 0, len(sources))
	for _, s := range sources {
		if int64(s) < 0 || int64(s) >= n {
			return nil, ErrSourceOutOfRange
		}
		if dist[int64(s)] == invalidD {
			dist[int64(s)] = 0
			frontier = append(frontier, s)
		}
	}

	var depth V
	next := make([]V, 0)
	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		depth++
		next = next[:0]
		for _, u := range frontier {
			row, _ := csr.Neighbors(u)
			for _, v := range row {
				if dist[int64(v)] == invalidD {
					dist[int64(v)] = depth
					pred[int64(v)] = u
					next = append(next, v)
				}
			}
		}
		frontier, next = next, frontier
	}

	return &Result[V, V]{Distances: dist, Predecessors: pred}, nil
}
