package cugraph

import (
	"context"
	"time"

	"github.com/chirayuG-nvidia/cugraph/core"
	"github.com/chirayuG-nvidia/cugraph/paths"
	"github.com/chirayuG-nvidia/cugraph/resource"
)

// ExtractPathsResult owns the reconstructed paths: a row-major buffer
// of external vertex IDs, one row per requested destination, each row
// MaxPathLength cells wide. Rows shorter than the maximum are
// left-padded with core.InvalidVertex; unreachable destinations yield
// all-pad rows.
//
// Close releases the buffer (and any memory reservation made against
// a resource controller). Accessors after Close observe an empty
// result.
type ExtractPathsResult struct {
	maxPathLength int
	pathsBuf      *core.Buffer

	rc       *resource.Controller
	reserved int64
	closed   bool
}

// MaxPathLength returns the vertex count of the longest reconstructed
// path, the row stride of the paths buffer.
func (r *ExtractPathsResult) MaxPathLength() int {
	if r.closed {
		return 0
	}
	return r.maxPathLength
}

// Paths returns a borrowed handle to the path buffer. The buffer is
// owned by the result; it becomes empty once the result is closed.
func (r *ExtractPathsResult) Paths() *core.Buffer {
	return r.pathsBuf
}

// Close releases the path buffer. Closing twice returns ErrClosed.
func (r *ExtractPathsResult) Close() error {
	if r.closed {
		return ErrClosed
	}
	r.closed = true
	r.pathsBuf.Release()
	r.rc.ReleaseMemory(r.reserved)
	r.reserved = 0
	return nil
}

// ExtractPaths reconstructs the concrete source-to-destination path
// for every requested destination from a traversal result.
//
// sources must be the source set the traversal ran with (consistency
// is assumed, not re-validated). destinations is a non-empty ordered
// buffer of external vertex IDs carrying the graph's vertex kind; row
// i of the output corresponds to destinations[i], duplicates computed
// independently. pathsResult is read-only borrowed.
func ExtractPaths(ctx context.Context, g *Graph, sources *core.Buffer, pathsResult *PathsResult, destinations *core.Buffer) (res *ExtractPathsResult, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, recovered(r)
		}
		maxLen := 0
		if res != nil {
			maxLen = res.maxPathLength
		}
		g.opts.metrics.RecordExtractPaths(destinations.Len(), maxLen, time.Since(start), err)
	}()

	if destinations.Len() == 0 {
		return nil, ErrEmptyDestinations
	}

	if err = g.opts.rc.AcquireOp(ctx); err != nil {
		return nil, translateError(err)
	}
	defer g.opts.rc.ReleaseOp()

	switch g.store.(type) {
	case *typedGraph[int32, int32, float32]:
		res, err = extractPathsTyped[int32, int32, float32](ctx, g, pathsResult, destinations)
	case *typedGraph[int32, int32, float64]:
		res, err = extractPathsTyped[int32, int32, float64](ctx, g, pathsResult, destinations)
	case *typedGraph[int32, int64, float32]:
		res, err = extractPathsTyped[int32, int64, float32](ctx, g, pathsResult, destinations)
	case *typedGraph[int32, int64, float64]:
		res, err = extractPathsTyped[int32, int64, float64](ctx, g, pathsResult, destinations)
	case *typedGraph[int64, int64, float32]:
		res, err = extractPathsTyped[int64, int64, float32](ctx, g, pathsResult, destinations)
	case *typedGraph[int64, int64, float64]:
		res, err = extractPathsTyped[int64, int64, float64](ctx, g, pathsResult, destinations)
	default:
		err = &ErrUnsupportedKinds{Vertex: g.vertexKind, Edge: g.edgeKind, Weight: g.weightKind}
	}
	if err != nil {
		return nil, translateError(err)
	}

	g.opts.logger.DebugContext(ctx, "paths extracted",
		"destinations", destinations.Len(),
		"max_path_length", res.maxPathLength,
	)
	return res, nil
}

// extractPathsTyped is the statically-typed instantiation behind
// ExtractPaths: destination preparation, the two-pass reconstruction
// engine, then unrenumbering and packaging.
func extractPathsTyped[V core.VertexID, E core.EdgeID, W core.Weight](ctx context.Context, g *Graph, pathsResult *PathsResult, destinations *core.Buffer) (*ExtractPathsResult, error) {
	tg, err := ensureNaturalOrientation[V, E, W](g)
	if err != nil {
		return nil, err
	}

	destExt := core.BufferAs[V](destinations)
	predExt := core.BufferAs[V](pathsResult.Predecessors())
	if destExt == nil || predExt == nil {
		return nil, ErrKindMismatch
	}

	// Destination preparation: working copies of the destination list
	// and the predecessor array, both renumbered to internal space.
	dests := make([]V, len(destExt))
	copy(dests, destExt)
	if err := tg.nmap.ToInternal(dests, tg.parts); err != nil {
		return nil, err
	}

	preds := make([]V, len(predExt))
	copy(preds, predExt)
	if err := tg.nmap.ToInternal(preds, tg.parts); err != nil {
		return nil, err
	}

	// Reconstruction engine, dispatched on the distance element type
	// (vertex-typed for BFS results, weight-typed for SSSP results).
	var buf []V
	var maxLen int
	opts := paths.Options{Workers: g.opts.workers}
	switch pathsResult.Distances().Kind() {
	case g.vertexKind:
		dist := core.BufferAs[V](pathsResult.Distances())
		buf, maxLen, err = paths.Extract(ctx, dist, preds, dests, opts)
	case g.weightKind:
		dist := core.BufferAs[W](pathsResult.Distances())
		buf, maxLen, err = paths.Extract(ctx, dist, preds, dests, opts)
	default:
		err = ErrKindMismatch
	}
	if err != nil {
		return nil, err
	}

	// Unrenumbering: translate materialized vertices back to external
	// space in place; pad sentinels pass through verbatim.
	if err := tg.nmap.ToExternal(buf, tg.parts.Lasts()); err != nil {
		return nil, err
	}

	reserved := int64(len(buf)) * int64(g.vertexKind.Size())
	if err := g.opts.rc.AcquireMemory(ctx, reserved); err != nil {
		return nil, err
	}

	return &ExtractPathsResult{
		maxPathLength: maxLen,
		pathsBuf:      core.NewBuffer(buf),
		rc:            g.opts.rc,
		reserved:      reserved,
	}, nil
}
