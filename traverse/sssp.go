package traverse

import (
	"container/heap"
	"context"

	"github.com/chirayuG-nvidia/cugraph/core"
	"github.com/chirayuG-nvidia/cugraph/graph"
)

// SSSP runs Dijkstra from the given internal-space sources over a
// weighted CSR. Edge weights must be non-negative. An unweighted CSR
// is traversed with unit edge weights.
func SSSP[V core.VertexID, E core.EdgeID, W core.Weight](ctx context.Context, csr *graph.CSR[V, E, W], sources []V) (*Result[V, W], error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	if csr.Transposed() {
		return nil, ErrTransposedStorage
	}

	n := int64(csr.NumVertices())
	invalidV := core.InvalidVertex[V]()
	invalidD := core.InvalidDistance[W]()

	dist := make([]W, n)
	pred := make([]V, n)
	for i := range dist {
		dist[i] = invalidD
		pred[i] = invalidV
	}

	pq := &distPQ[V, W]{}
	heap.Init(pq)
	for _, s := range sources {
		if int64(s) < 0 || int64(s) >= n {
			return nil, ErrSourceOutOfRange
		}
		if dist[int64(s)] != 0 {
			dist[int64(s)] = 0
			heap.Push(pq, distItem[V, W]{v: s, d: 0})
		}
	}

	settled := make([]bool, n)

	for pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		it := heap.Pop(pq).(distItem[V, W])
		u := it.v
		if settled[int64(u)] {
			continue
		}
		settled[int64(u)] = true

		row, ws := csr.Neighbors(u)
		for i, v := range row {
			if settled[int64(v)] {
				continue
			}
			var w W = 1
			if ws != nil {
				w = ws[i]
			}
			if w < 0 {
				return nil, ErrNegativeWeight
			}
			nd := dist[int64(u)] + w
			if nd < dist[int64(v)] {
				dist[int64(v)] = nd
				pred[int64(v)] = u
				heap.Push(pq, distItem[V, W]{v: v, d: nd})
			}
		}
	}

	return &Result[V, W]{Distances: dist, Predecessors: pred}, nil
}

type distItem[V core.VertexID, W core.Weight] struct {
	v V
	d W
}

type distPQ[V core.VertexID, W core.Weight] []distItem[V, W]

func (pq distPQ[V, W]) Len() int           { return len(pq) }
func (pq distPQ[V, W]) Less(i, j int) bool { return pq[i].d < pq[j].d }
func (pq distPQ[V, W]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *distPQ[V, W]) Push(x any) {
	*pq = append(*pq, x.(distItem[V, W]))
}

func (pq *distPQ[V, W]) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
