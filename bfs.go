package cugraph

import (
	"context"
	"time"

	"github.com/chirayuG-nvidia/cugraph/core"
	"github.com/chirayuG-nvidia/cugraph/traverse"
)

// PathsResult is the compact output of a traversal: distances and
// predecessors as parallel dense arrays indexed by internal vertex
// ID. Predecessor values are external IDs (sentinel for sources and
// unreachable vertices); distance values are vertex-typed hop counts
// for BFS and weight-typed totals for SSSP.
//
// The arrays are owned by the result and read-only borrowed by
// ExtractPaths.
type PathsResult struct {
	distances    *core.Buffer
	predecessors *core.Buffer
}

// Distances returns the per-vertex distance array.
func (r *PathsResult) Distances() *core.Buffer { return r.distances }

// Predecessors returns the per-vertex predecessor array.
func (r *PathsResult) Predecessors() *core.Buffer { return r.predecessors }

// BFS runs breadth-first search over the graph from the given
// external-space sources and returns hop-count distances plus
// predecessors. sources must carry the graph's vertex kind.
func BFS(ctx context.Context, g *Graph, sources *core.Buffer) (res *PathsResult, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, recovered(r)
		}
		g.opts.metrics.RecordTraversal("bfs", time.Since(start), err)
	}()

	if err = g.opts.rc.AcquireOp(ctx); err != nil {
		return nil, translateError(err)
	}
	defer g.opts.rc.ReleaseOp()

	switch g.store.(type) {
	case *typedGraph[int32, int32, float32]:
		res, err = bfsTyped[int32, int32, float32](ctx, g, sources)
	case *typedGraph[int32, int32, float64]:
		res, err = bfsTyped[int32, int32, float64](ctx, g, sources)
	case *typedGraph[int32, int64, float32]:
		res, err = bfsTyped[int32, int64, float32](ctx, g, sources)
	case *typedGraph[int32, int64, float64]:
		res, err = bfsTyped[int32, int64, float64](ctx, g, sources)
	case *typedGraph[int64, int64, float32]:
		res, err = bfsTyped[int64, int64, float32](ctx, g, sources)
	case *typedGraph[int64, int64, float64]:
		res, err = bfsTyped[int64, int64, float64](ctx, g, sources)
	default:
		err = &ErrUnsupportedKinds{Vertex: g.vertexKind, Edge: g.edgeKind, Weight: g.weightKind}
	}
	if err != nil {
		return nil, translateError(err)
	}
	return res, nil
}

// SSSP runs single-source shortest paths (Dijkstra) over the graph
// from the given external-space sources and returns weight-typed
// distances plus predecessors. Edge weights must be non-negative.
func SSSP(ctx context.Context, g *Graph, sources *core.Buffer) (res *PathsResult, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, recovered(r)
		}
		g.opts.metrics.RecordTraversal("sssp", time.Since(start), err)
	}()

	if err = g.opts.rc.AcquireOp(ctx); err != nil {
		return nil, translateError(err)
	}
	defer g.opts.rc.ReleaseOp()

	switch g.store.(type) {
	case *typedGraph[int32, int32, float32]:
		res, err = ssspTyped[int32, int32, float32](ctx, g, sources)
	case *typedGraph[int32, int32, float64]:
		res, err = ssspTyped[int32, int32, float64](ctx, g, sources)
	case *typedGraph[int32, int64, float32]:
		res, err = ssspTyped[int32, int64, float32](ctx, g, sources)
	case *typedGraph[int32, int64, float64]:
		res, err = ssspTyped[int32, int64, float64](ctx, g, sources)
	case *typedGraph[int64, int64, float32]:
		res, err = ssspTyped[int64, int64, float32](ctx, g, sources)
	case *typedGraph[int64, int64, float64]:
		res, err = ssspTyped[int64, int64, float64](ctx, g, sources)
	default:
		err = &ErrUnsupportedKinds{Vertex: g.vertexKind, Edge: g.edgeKind, Weight: g.weightKind}
	}
	if err != nil {
		return nil, translateError(err)
	}
	return res, nil
}

func bfsTyped[V core.VertexID, E core.EdgeID, W core.Weight](ctx context.Context, g *Graph, sources *core.Buffer) (*PathsResult, error) {
	tg, err := ensureNaturalOrientation[V, E, W](g)
	if err != nil {
		return nil, err
	}

	srcs, err := internalSources[V](tg, sources)
	if err != nil {
		return nil, err
	}

	r, err := traverse.BFS(ctx, tg.csr, srcs)
	if err != nil {
		return nil, err
	}

	// Predecessor values leave the API in external space.
	if err := tg.nmap.ToExternal(r.Predecessors, tg.parts.Lasts()); err != nil {
		return nil, err
	}

	return &PathsResult{
		distances:    core.NewBuffer(r.Distances),
		predecessors: core.NewBuffer(r.Predecessors),
	}, nil
}

func ssspTyped[V core.VertexID, E core.EdgeID, W core.Weight](ctx context.Context, g *Graph, sources *core.Buffer) (*PathsResult, error) {
	tg, err := ensureNaturalOrientation[V, E, W](g)
	if err != nil {
		return nil, err
	}

	srcs, err := internalSources[V](tg, sources)
	if err != nil {
		return nil, err
	}

	r, err := traverse.SSSP(ctx, tg.csr, srcs)
	if err != nil {
		return nil, err
	}

	if err := tg.nmap.ToExternal(r.Predecessors, tg.parts.Lasts()); err != nil {
		return nil, err
	}

	return &PathsResult{
		distances:    core.NewBuffer(r.Distances),
		predecessors: core.NewBuffer(r.Predecessors),
	}, nil
}

// internalSources copies a caller source buffer and renumbers it to
// internal space.
func internalSources[V core.VertexID, E core.EdgeID, W core.Weight](tg *typedGraph[V, E, W], sources *core.Buffer) ([]V, error) {
	ext := core.BufferAs[V](sources)
	if ext == nil {
		return nil, ErrKindMismatch
	}
	srcs := make([]V, len(ext))
	copy(srcs, ext)
	if err := tg.nmap.ToInternal(srcs, tg.parts); err != nil {
		return nil, err
	}
	return srcs, nil
}
