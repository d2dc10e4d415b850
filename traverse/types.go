package traverse

import (
	"errors"

	"github.com/chirayuG-nvidia/cugraph/core"
)

// ErrNoSources is returned when a traversal is started with an empty
// source set.
var ErrNoSources = errors.New("traverse: source set is empty")

// ErrTransposedStorage is returned when a traversal is handed a CSR
// in transposed orientation; callers must transpose first.
var ErrTransposedStorage = errors.New("traverse: traversal requires non-transposed storage")

// ErrSourceOutOfRange is returned when a source internal ID is outside
// the graph's vertex range.
var ErrSourceOutOfRange = errors.New("traverse: source vertex out of range")

// ErrNegativeWeight is returned by SSSP when a negative edge weight is
// encountered; Dijkstra's invariants do not hold for negative weights.
var ErrNegativeWeight = errors.New("traverse: negative edge weight")

// Result holds the compact output of a traversal in internal ID
// space: distances and predecessors, both indexed by internal vertex
// ID. D is the distance element type (vertex-typed hops for BFS,
// weight-typed for SSSP).
type Result[V core.VertexID, D core.Distance] struct {
	Distances    []D
	Predecessors []V
}
