package paths

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/chirayuG-nvidia/cugraph/core"
)

// ErrInvalidTraversal indicates a predecessor walk exceeded the graph
// vertex count, which only happens when the traversal result contains
// a cycle. The bound is defensive; a correct traversal never trips it.
var ErrInvalidTraversal = errors.New("paths: predecessor chain exceeds vertex count (cycle in traversal result)")

// ErrNoDestinations is returned for an empty destination set.
var ErrNoDestinations = errors.New("paths: destination set is empty")

// ErrDestinationOutOfRange is returned when a destination internal ID
// falls outside [0, numVertices).
var ErrDestinationOutOfRange = errors.New("paths: destination vertex out of range")

// Options tunes the extraction passes.
type Options struct {
	// Workers is the number of concurrent chunk processors per pass.
	// Defaults to GOMAXPROCS.
	Workers int
}

// Extract reconstructs the path to every destination from the
// internal-space traversal arrays.
//
// distances and predecessors are indexed by internal vertex ID over
// the full graph range; destinations are internal IDs. The returned
// buffer has len(destinations) rows of maxLen cells each, row i
// corresponding to destinations[i]. Unreachable destinations produce
// all-pad rows and do not contribute to maxLen.
//
// The input arrays are never mutated and may be read concurrently by
// other callers.
func Extract[V core.VertexID, D core.Distance](ctx context.Context, distances []D, predecessors []V, destinations []V, opts Options) ([]V, int, error) {
	if len(destinations) == 0 {
		return nil, 0, ErrNoDestinations
	}

	numVertices := int64(len(predecessors))
	invalidV := core.InvalidVertex[V]()
	invalidD := core.InvalidDistance[D]()

	for _, d := range destinations {
		if int64(d) < 0 || int64(d) >= numVertices {
			return nil, 0, fmt.Errorf("%w: %d", ErrDestinationOutOfRange, int64(d))
		}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(destinations) {
		workers = len(destinations)
	}

	// Pass 1: per-destination path length, max reduced per chunk.
	lengths := make([]int64, len(destinations))
	chunkMax := make([]int64, workers)

	g, gctx := errgroup.WithContext(ctx)
	forEachChunk(gctx, g, len(destinations), workers, func(worker, lo, hi int) error {
		var localMax int64
		for i := lo; i < hi; i++ {
			n, err := walkLength(distances, predecessors, destinations[i], numVertices, invalidV, invalidD)
			if err != nil {
				return err
			}
			lengths[i] = n
			if n > localMax {
				localMax = n
			}
		}
		chunkMax[worker] = localMax
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	var maxLen int64
	for _, m := range chunkMax {
		if m > maxLen {
			maxLen = m
		}
	}
	if maxLen == 0 {
		// Every destination unreachable: D rows of zero cells.
		return []V{}, 0, nil
	}

	// Pass 2: materialize rows back to front.
	buf := make([]V, int64(len(destinations))*maxLen)
	for i := range buf {
		buf[i] = invalidV
	}

	g, gctx = errgroup.WithContext(ctx)
	forEachChunk(gctx, g, len(destinations), workers, func(_, lo, hi int) error {
		for i := lo; i < hi; i++ {
			if lengths[i] == 0 {
				continue
			}
			row := buf[int64(i)*maxLen : int64(i+1)*maxLen]
			col := maxLen - 1
			v := destinations[i]
			row[col] = v
			for p := predecessors[int64(v)]; p != invalidV; p = predecessors[int64(p)] {
				col--
				row[col] = p
				v = p
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return buf, int(maxLen), nil
}

// walkLength counts the vertices on the path ending at dst, or 0 when
// dst is unreachable. The walk is capped at the vertex count so a
// corrupted predecessor array with a cycle fails instead of spinning.
func walkLength[V core.VertexID, D core.Distance](distances []D, predecessors []V, dst V, numVertices int64, invalidV V, invalidD D) (int64, error) {
	if distances[int64(dst)] == invalidD {
		return 0, nil
	}
	var n int64 = 1
	for v := predecessors[int64(dst)]; v != invalidV; v = predecessors[int64(v)] {
		n++
		if n > numVertices {
			return 0, ErrInvalidTraversal
		}
	}
	return n, nil
}

// forEachChunk splits [0, n) into near-equal chunks and runs fn per
// chunk on the errgroup, checking ctx before each chunk starts.
func forEachChunk(ctx context.Context, g *errgroup.Group, n, workers int, fn func(worker, lo, hi int) error) {
	chunk := n / workers
	rem := n % workers
	lo := 0
	for w := 0; w < workers; w++ {
		size := chunk
		if w < rem {
			size++
		}
		worker, start, end := w, lo, lo+size
		lo += size
		if start == end {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(worker, start, end)
		})
	}
}
