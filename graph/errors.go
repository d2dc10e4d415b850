package graph

import (
	"errors"
	"fmt"
)

// ErrMismatchedLengths is returned when parallel edge-list slices
// disagree in length.
var ErrMismatchedLengths = errors.New("graph: source, destination and weight slices must have equal length")

// ErrEmptyEdgeList is returned when a graph is built from no edges.
var ErrEmptyEdgeList = errors.New("graph: edge list is empty")

// ErrNegativeVertexID is returned when an edge list contains a
// negative external ID; negative values are reserved for sentinels.
var ErrNegativeVertexID = errors.New("graph: external vertex IDs must be non-negative")

// ErrUnsortedNumberMap is returned when a persisted renumbering map
// is not strictly ascending.
var ErrUnsortedNumberMap = errors.New("graph: renumbering map is not strictly ascending")

// ErrVertexNotFound indicates an external ID with no entry in the
// renumbering map.
//
// Partition is the owning partition if the ID is known to some other
// domain, or -1 if the ID is unknown to the whole graph.
type ErrVertexNotFound struct {
	ID        int64
	Partition int
}

func (e *ErrVertexNotFound) Error() string {
	if e.Partition >= 0 {
		return fmt.Sprintf("graph: vertex %d not in local renumbering map (owned by partition %d)", e.ID, e.Partition)
	}
	return fmt.Sprintf("graph: vertex %d not found in renumbering map", e.ID)
}

// ErrInternalOutOfRange indicates an internal ID outside the graph's
// vertex range during unrenumbering.
type ErrInternalOutOfRange struct {
	ID    int64
	Count int64
}

func (e *ErrInternalOutOfRange) Error() string {
	return fmt.Sprintf("graph: internal vertex %d out of range [0, %d)", e.ID, e.Count)
}
