package graph

import (
	"sort"

	"github.com/chirayuG-nvidia/cugraph/core"
)

// NumberMap translates vertex IDs between external (caller) space and
// internal (dense) space, in bulk, in both directions.
//
// Internal IDs are assigned by sorting the distinct external IDs
// ascending, so construction is deterministic for a given vertex set.
// The sentinel core.InvalidVertex passes through both directions
// verbatim; it is a member of neither space.
type NumberMap[V core.VertexID] struct {
	toExternal []V     // indexed by internal ID
	toInternal map[V]V // external -> internal
}

// BuildNumberMap assigns dense internal IDs to the distinct external
// IDs appearing in the given slices.
func BuildNumberMap[V core.VertexID](externals ...[]V) (*NumberMap[V], error) {
	seen := make(map[V]struct{})
	for _, ids := range externals {
		for _, id := range ids {
			if id < 0 {
				return nil, ErrNegativeVertexID
			}
			seen[id] = struct{}{}
		}
	}

	toExt := make([]V, 0, len(seen))
	for id := range seen {
		toExt = append(toExt, id)
	}
	sort.Slice(toExt, func(i, j int) bool { return toExt[i] < toExt[j] })

	toInt := make(map[V]V, len(toExt))
	for i, ext := range toExt {
		toInt[ext] = V(i)
	}

	return &NumberMap[V]{toExternal: toExt, toInternal: toInt}, nil
}

// NumberMapFromExternals rebuilds a map from its internal-to-external
// array, as persisted in snapshots. The slice must be strictly
// ascending (the construction order invariant); it is aliased, not
// copied.
func NumberMapFromExternals[V core.VertexID](toExternal []V) (*NumberMap[V], error) {
	toInt := make(map[V]V, len(toExternal))
	for i, ext := range toExternal {
		if ext < 0 {
			return nil, ErrNegativeVertexID
		}
		if i > 0 && toExternal[i-1] >= ext {
			return nil, ErrUnsortedNumberMap
		}
		toInt[ext] = V(i)
	}
	return &NumberMap[V]{toExternal: toExternal, toInternal: toInt}, nil
}

// NumVertices returns the number of mapped vertices.
func (m *NumberMap[V]) NumVertices() V {
	return V(len(m.toExternal))
}

// Externals exposes the internal-to-external array for
// serialization. The slice is aliased; callers must not mutate it.
func (m *NumberMap[V]) Externals() []V {
	return m.toExternal
}

// External returns the external ID of internal vertex v.
func (m *NumberMap[V]) External(v V) V {
	return m.toExternal[int64(v)]
}

// Lookup returns the internal ID of an external ID.
func (m *NumberMap[V]) Lookup(ext V) (V, bool) {
	v, ok := m.toInternal[ext]
	return v, ok
}

// ToInternal bulk-translates ids from external to internal space in
// place. Sentinels are preserved. A missing ID yields
// *ErrVertexNotFound; when parts is non-nil the error names the
// partition that owns the ID, if any.
func (m *NumberMap[V]) ToInternal(ids []V, parts *Partitions[V]) error {
	invalid := core.InvalidVertex[V]()
	for i, ext := range ids {
		if ext == invalid {
			continue
		}
		v, ok := m.toInternal[ext]
		if !ok {
			owner := -1
			if parts != nil {
				if p, ok := parts.OwnerOfExternal(ext); ok {
					owner = p
				}
			}
			return &ErrVertexNotFound{ID: int64(ext), Partition: owner}
		}
		ids[i] = v
	}
	return nil
}

// ToExternal bulk-translates ids from internal to external space in
// place. Sentinels are preserved, never remapped. partitionLasts, when
// non-nil, bounds the valid internal range (the last entry is the
// global vertex count); IDs past it yield *ErrInternalOutOfRange.
func (m *NumberMap[V]) ToExternal(ids []V, partitionLasts []V) error {
	invalid := core.InvalidVertex[V]()
	count := int64(len(m.toExternal))
	if len(partitionLasts) > 0 {
		count = int64(partitionLasts[len(partitionLasts)-1])
	}
	for i, v := range ids {
		if v == invalid {
			continue
		}
		if int64(v) >= count || v < 0 {
			return &ErrInternalOutOfRange{ID: int64(v), Count: count}
		}
		ids[i] = m.toExternal[int64(v)]
	}
	return nil
}
