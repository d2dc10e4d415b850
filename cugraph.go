package cugraph

import (
	"context"
	"sync"

	"github.com/chirayuG-nvidia/cugraph/core"
	"github.com/chirayuG-nvidia/cugraph/graph"
)

// typedGraph bundles the statically-typed storage behind a Graph
// handle: CSR adjacency, the renumbering map, and the partition
// descriptor, all over the same vertex type.
type typedGraph[V core.VertexID, E core.EdgeID, W core.Weight] struct {
	csr   *graph.CSR[V, E, W]
	nmap  *graph.NumberMap[V]
	parts *graph.Partitions[V]
}

// Graph is a type-erased handle to a renumbered, optionally
// partitioned graph. The concrete vertex/edge/weight types are
// carried as runtime kind tags; API entry points resolve them once
// and dispatch to a statically-typed instantiation.
//
// A Graph is safe for concurrent use.
type Graph struct {
	vertexKind core.Kind
	edgeKind   core.Kind
	weightKind core.Kind

	mu          sync.Mutex // guards store swap on re-transpose
	store       any        // *typedGraph[V, E, W]
	transposed  bool
	partitioned bool

	numVertices int64
	numEdges    int64

	opts options
}

// VertexKind returns the runtime vertex ID type tag.
func (g *Graph) VertexKind() core.Kind { return g.vertexKind }

// EdgeKind returns the runtime edge ID type tag.
func (g *Graph) EdgeKind() core.Kind { return g.edgeKind }

// WeightKind returns the runtime weight type tag.
func (g *Graph) WeightKind() core.Kind { return g.weightKind }

// StoreTransposed reports the current storage orientation.
func (g *Graph) StoreTransposed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.transposed
}

// Partitioned reports whether the graph is split across multiple
// domains.
func (g *Graph) Partitioned() bool { return g.partitioned }

// supportedKinds reports whether a vertex/edge/weight tag combination
// has an instantiation: integer vertex and edge with the edge at
// least as wide, floating-point weight.
func supportedKinds(v, e, w core.Kind) bool {
	return v.IsVertexKind() && e.IsVertexKind() && w.IsWeightKind() && e.Size() >= v.Size()
}

// FromEdges builds a graph from an external-space edge list.
//
// src and dst must have equal length; weights may be nil for an
// unweighted graph. External IDs are arbitrary non-negative values;
// the distinct endpoint set is renumbered to dense internal IDs.
func FromEdges[V core.VertexID, E core.EdgeID, W core.Weight](ctx context.Context, src, dst []V, weights []W, optFns ...Option) (*Graph, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	vk, ek, wk := core.KindOf[V](), core.KindOf[E](), core.KindOf[W]()
	if !supportedKinds(vk, ek, wk) {
		return nil, translateError(&ErrUnsupportedKinds{Vertex: vk, Edge: ek, Weight: wk})
	}
	if len(src) != len(dst) {
		return nil, translateError(graph.ErrMismatchedLengths)
	}
	if len(src) == 0 {
		return nil, translateError(graph.ErrEmptyEdgeList)
	}

	nmap, err := graph.BuildNumberMap(src, dst)
	if err != nil {
		return nil, translateError(err)
	}

	// Renumber working copies; the caller's slices stay external.
	isrc := make([]V, len(src))
	idst := make([]V, len(dst))
	copy(isrc, src)
	copy(idst, dst)
	if err := nmap.ToInternal(isrc, nil); err != nil {
		return nil, translateError(err)
	}
	if err := nmap.ToInternal(idst, nil); err != nil {
		return nil, translateError(err)
	}

	csr, err := graph.NewCSR[V, E, W](nmap.NumVertices(), isrc, idst, weights, opts.storeTransposed)
	if err != nil {
		return nil, translateError(err)
	}

	parts := graph.SplitPartitions(nmap.NumVertices(), opts.partitions, nmap)

	g := &Graph{
		vertexKind:  vk,
		edgeKind:    ek,
		weightKind:  wk,
		store:       &typedGraph[V, E, W]{csr: csr, nmap: nmap, parts: parts},
		transposed:  opts.storeTransposed,
		partitioned: parts.Count() > 1,
		numVertices: int64(nmap.NumVertices()),
		numEdges:    int64(len(src)),
		opts:        opts,
	}

	opts.logger.DebugContext(ctx, "graph built",
		"vertices", int64(nmap.NumVertices()),
		"edges", len(src),
		"vertex_kind", vk.String(),
		"edge_kind", ek.String(),
		"weight_kind", wk.String(),
		"partitions", parts.Count(),
		"transposed", opts.storeTransposed,
	)

	return g, nil
}

// NumVertices returns the vertex count.
func (g *Graph) NumVertices() int64 { return g.numVertices }

// NumEdges returns the edge count.
func (g *Graph) NumEdges() int64 { return g.numEdges }

// ensureNaturalOrientation re-transposes storage if the graph is held
// transposed; traversals and path extraction require edges on the
// source's row. The swap happens at most once per handle.
func ensureNaturalOrientation[V core.VertexID, E core.EdgeID, W core.Weight](g *Graph) (*typedGraph[V, E, W], error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.transposed {
		return g.store.(*typedGraph[V, E, W]), nil
	}

	cur := g.store.(*typedGraph[V, E, W])
	flipped, err := cur.csr.Transpose()
	if err != nil {
		return nil, err
	}
	next := &typedGraph[V, E, W]{csr: flipped, nmap: cur.nmap, parts: cur.parts}
	g.store = next
	g.transposed = false
	return next, nil
}
