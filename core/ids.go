package core

// VertexID is the constraint for vertex identifier types.
// Valid vertex IDs are non-negative; negative values are reserved
// for sentinels. The set is exact so vertex slices can round-trip
// through runtime-tagged buffers.
type VertexID interface {
	int32 | int64
}

// EdgeID is the constraint for edge identifier/offset types.
// An edge type must be at least as wide as the vertex type it is
// paired with (checked by the dispatch layer, not the compiler).
type EdgeID interface {
	int32 | int64
}

// Weight is the constraint for edge weight types.
type Weight interface {
	float32 | float64
}

// InvalidVertex is the reserved sentinel for "no vertex": it marks
// unreachable predecessors, traversal sources, and padding in
// fixed-stride path buffers. It is out of range for both ID spaces,
// so it survives renumbering untouched.
func InvalidVertex[V VertexID]() V {
	return V(-1)
}

// IsValidVertex reports whether v is a real vertex ID rather than
// the sentinel.
func IsValidVertex[V VertexID](v V) bool {
	return v >= 0
}
