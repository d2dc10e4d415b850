package graph

import (
	"sort"

	"github.com/chirayuG-nvidia/cugraph/core"
)

// CSR is compressed sparse row adjacency over internal vertex IDs.
//
// offsets has numVertices+1 entries; the out-neighbors of vertex v are
// indices[offsets[v]:offsets[v+1]], with parallel weights when the
// graph is weighted. Neighbor lists are sorted by destination for
// deterministic traversal order.
type CSR[V core.VertexID, E core.EdgeID, W core.Weight] struct {
	offsets    []E
	indices    []V
	weights    []W // nil for unweighted graphs
	transposed bool
}

// NewCSR builds adjacency from an internal-space edge list. weights
// may be nil. transposed records the storage orientation: false means
// edge (src, dst) is stored on src's row.
func NewCSR[V core.VertexID, E core.EdgeID, W core.Weight](numVertices V, srcs, dsts []V, weights []W, transposed bool) (*CSR[V, E, W], error) {
	if len(srcs) != len(dsts) {
		return nil, ErrMismatchedLengths
	}
	if weights != nil && len(weights) != len(srcs) {
		return nil, ErrMismatchedLengths
	}

	rows, cols := srcs, dsts
	if transposed {
		rows, cols = dsts, srcs
	}

	offsets := make([]E, int64(numVertices)+1)
	for _, v := range rows {
		offsets[int64(v)+1]++
	}
	for i := 1; i < len(offsets); i++ {
		offsets[i] += offsets[i-1]
	}

	indices := make([]V, len(cols))
	var ws []W
	if weights != nil {
		ws = make([]W, len(weights))
	}
	cursor := make([]E, int64(numVertices))
	copy(cursor, offsets[:int64(numVertices)])
	for i, r := range rows {
		pos := cursor[int64(r)]
		indices[pos] = cols[i]
		if ws != nil {
			ws[pos] = weights[i]
		}
		cursor[int64(r)]++
	}

	c := &CSR[V, E, W]{offsets: offsets, indices: indices, weights: ws, transposed: transposed}
	c.sortRows()
	return c, nil
}

// CSRFromRaw rebuilds adjacency from persisted arrays. The slices are
// aliased, not copied, and must satisfy the CSR invariants (offsets
// monotone, rows sorted) as written by a snapshot.
func CSRFromRaw[V core.VertexID, E core.EdgeID, W core.Weight](offsets []E, indices []V, weights []W, transposed bool) (*CSR[V, E, W], error) {
	if len(offsets) == 0 {
		return nil, ErrEmptyEdgeList
	}
	if int64(offsets[len(offsets)-1]) != int64(len(indices)) {
		return nil, ErrMismatchedLengths
	}
	if weights != nil && len(weights) != len(indices) {
		return nil, ErrMismatchedLengths
	}
	return &CSR[V, E, W]{offsets: offsets, indices: indices, weights: weights, transposed: transposed}, nil
}

// sortRows orders each neighbor list by destination ID, carrying
// weights along.
func (c *CSR[V, E, W]) sortRows() {
	n := c.NumVertices()
	for v := int64(0); v < int64(n); v++ {
		lo, hi := int(c.offsets[v]), int(c.offsets[v+1])
		if hi-lo < 2 {
			continue
		}
		row := c.indices[lo:hi]
		if c.weights == nil {
			sort.Slice(row, func(i, j int) bool { return row[i] < row[j] })
			continue
		}
		wrow := c.weights[lo:hi]
		sort.Sort(&rowSorter[V, W]{ids: row, ws: wrow})
	}
}

type rowSorter[V core.VertexID, W core.Weight] struct {
	ids []V
	ws  []W
}

func (s *rowSorter[V, W]) Len() int           { return len(s.ids) }
func (s *rowSorter[V, W]) Less(i, j int) bool { return s.ids[i] < s.ids[j] }
func (s *rowSorter[V, W]) Swap(i, j int) {
	s.ids[i], s.ids[j] = s.ids[j], s.ids[i]
	s.ws[i], s.ws[j] = s.ws[j], s.ws[i]
}

// NumVertices returns the internal vertex count.
func (c *CSR[V, E, W]) NumVertices() V {
	return V(len(c.offsets) - 1)
}

// NumEdges returns the stored edge count.
func (c *CSR[V, E, W]) NumEdges() E {
	return E(len(c.indices))
}

// Weighted reports whether edge weights are present.
func (c *CSR[V, E, W]) Weighted() bool {
	return c.weights != nil
}

// Transposed reports the storage orientation.
func (c *CSR[V, E, W]) Transposed() bool {
	return c.transposed
}

// Neighbors returns the stored-orientation adjacency row of v. The
// returned slices alias the CSR and must not be mutated.
func (c *CSR[V, E, W]) Neighbors(v V) ([]V, []W) {
	lo, hi := c.offsets[int64(v)], c.offsets[int64(v)+1]
	if c.weights == nil {
		return c.indices[lo:hi], nil
	}
	return c.indices[lo:hi], c.weights[lo:hi]
}

// HasEdge reports whether the stored orientation contains (src, dst).
func (c *CSR[V, E, W]) HasEdge(src, dst V) bool {
	row, _ := c.Neighbors(src)
	i := sort.Search(len(row), func(i int) bool { return row[i] >= dst })
	return i < len(row) && row[i] == dst
}

// Transpose returns a new CSR with the opposite storage orientation.
// Edge semantics are unchanged; only the row layout flips.
func (c *CSR[V, E, W]) Transpose() (*CSR[V, E, W], error) {
	n := c.NumVertices()
	srcs := make([]V, 0, len(c.indices))
	dsts := make([]V, 0, len(c.indices))
	var ws []W
	if c.weights != nil {
		ws = make([]W, 0, len(c.weights))
	}
	for v := int64(0); v < int64(n); v++ {
		row, wrow := c.Neighbors(V(v))
		for i, u := range row {
			row2src, row2dst := V(v), u
			if c.transposed {
				row2src, row2dst = u, V(v)
			}
			srcs = append(srcs, row2src)
			dsts = append(dsts, row2dst)
			if ws != nil {
				ws = append(ws, wrow[i])
			}
		}
	}
	return NewCSR[V, E, W](n, srcs, dsts, ws, !c.transposed)
}

// Offsets exposes the raw offset array for serialization.
func (c *CSR[V, E, W]) Offsets() []E { return c.offsets }

// Indices exposes the raw index array for serialization.
func (c *CSR[V, E, W]) Indices() []V { return c.indices }

// Weights exposes the raw weight array for serialization; nil when
// unweighted.
func (c *CSR[V, E, W]) Weights() []W { return c.weights }
