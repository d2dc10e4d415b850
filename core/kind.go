package core

import (
	"fmt"
	"math"
)

// Kind is a runtime tag for the numeric element type of a Buffer.
// The closed set of kinds mirrors the type combinations the dispatch
// layer can instantiate.
type Kind uint8

const (
	// KindInvalid is the zero value; no buffer carries it.
	KindInvalid Kind = iota
	// KindInt32 tags []int32 payloads.
	KindInt32
	// KindInt64 tags []int64 payloads.
	KindInt64
	// KindFloat32 tags []float32 payloads.
	KindFloat32
	// KindFloat64 tags []float64 payloads.
	KindFloat64
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	default:
		return fmt.Sprintf("invalid(%d)", uint8(k))
	}
}

// Size returns the element width in bytes, or 0 for KindInvalid.
func (k Kind) Size() int {
	switch k {
	case KindInt32, KindFloat32:
		return 4
	case KindInt64, KindFloat64:
		return 8
	default:
		return 0
	}
}

// IsVertexKind reports whether k is usable as a vertex or edge ID type.
func (k Kind) IsVertexKind() bool {
	return k == KindInt32 || k == KindInt64
}

// IsWeightKind reports whether k is usable as an edge weight type.
func (k Kind) IsWeightKind() bool {
	return k == KindFloat32 || k == KindFloat64
}

// Distance is the constraint for traversal distance elements:
// hop counts for BFS, accumulated weights for SSSP. The set is exact
// (no ~) so sentinel selection can type-switch on the element.
type Distance interface {
	int32 | int64 | float32 | float64
}

// KindOf resolves the runtime tag of a numeric type parameter.
func KindOf[T Distance]() Kind {
	var t T
	switch any(t).(type) {
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case float32:
		return KindFloat32
	default:
		return KindFloat64
	}
}

// InvalidDistance is the reserved "unreachable" sentinel for a
// distance type: the maximum representable value, matching what the
// traversals write for vertices they never relax.
func InvalidDistance[D Distance]() D {
	var d D
	switch p := any(&d).(type) {
	case *int32:
		*p = math.MaxInt32
	case *int64:
		*p = math.MaxInt64
	case *float32:
		*p = math.MaxFloat32
	case *float64:
		*p = math.MaxFloat64
	}
	return d
}
