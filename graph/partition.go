package graph

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/chirayuG-nvidia/cugraph/core"
)

// Partitions describes how a graph's internal vertex range is divided
// across compute domains. Partition p owns the contiguous internal
// range [First(p), Last(p)). Alongside the range bounds, each
// partition carries a Roaring bitmap of the external IDs it owns, so
// failed renumbering lookups can be routed to the responsible domain.
//
// A single-domain graph is the degenerate case with one partition
// spanning [0, NumVertices).
type Partitions[V core.VertexID] struct {
	lasts []V // one-past-end internal ID per partition, ascending
	owned []*roaring64.Bitmap
}

// SinglePartition builds the one-domain descriptor.
func SinglePartition[V core.VertexID](numVertices V, m *NumberMap[V]) *Partitions[V] {
	return SplitPartitions(numVertices, 1, m)
}

// SplitPartitions divides [0, numVertices) into count near-equal
// contiguous ranges and records external-ID ownership per range.
func SplitPartitions[V core.VertexID](numVertices V, count int, m *NumberMap[V]) *Partitions[V] {
	if count < 1 {
		count = 1
	}
	if int64(count) > int64(numVertices) && numVertices > 0 {
		count = int(numVertices)
	}

	n := int64(numVertices)
	lasts := make([]V, count)
	owned := make([]*roaring64.Bitmap, count)

	chunk := n / int64(count)
	rem := n % int64(count)
	var first int64
	for p := 0; p < count; p++ {
		size := chunk
		if int64(p) < rem {
			size++
		}
		last := first + size
		lasts[p] = V(last)

		bm := roaring64.New()
		for v := first; v < last; v++ {
			bm.Add(uint64(m.External(V(v))))
		}
		owned[p] = bm
		first = last
	}

	return &Partitions[V]{lasts: lasts, owned: owned}
}

// PartitionsFromLasts rebuilds a descriptor from persisted range
// bounds, recomputing external-ID ownership from the renumbering map.
func PartitionsFromLasts[V core.VertexID](lasts []V, m *NumberMap[V]) *Partitions[V] {
	owned := make([]*roaring64.Bitmap, len(lasts))
	var first int64
	for p, last := range lasts {
		bm := roaring64.New()
		for v := first; v < int64(last); v++ {
			bm.Add(uint64(m.External(V(v))))
		}
		owned[p] = bm
		first = int64(last)
	}
	return &Partitions[V]{lasts: lasts, owned: owned}
}

// Count returns the number of partitions.
func (p *Partitions[V]) Count() int {
	return len(p.lasts)
}

// Lasts returns the one-past-end internal ID of every partition. The
// final entry equals the global vertex count.
func (p *Partitions[V]) Lasts() []V {
	return p.lasts
}

// First returns the first internal ID owned by partition i.
func (p *Partitions[V]) First(i int) V {
	if i == 0 {
		return 0
	}
	return p.lasts[i-1]
}

// Last returns the one-past-end internal ID of partition i.
func (p *Partitions[V]) Last(i int) V {
	return p.lasts[i]
}

// OwnerOfInternal returns the partition owning internal ID v.
func (p *Partitions[V]) OwnerOfInternal(v V) int {
	for i, last := range p.lasts {
		if v < last {
			return i
		}
	}
	return len(p.lasts) - 1
}

// OwnerOfExternal returns the partition whose ownership bitmap
// contains the external ID, if any.
func (p *Partitions[V]) OwnerOfExternal(ext V) (int, bool) {
	if ext < 0 {
		return 0, false
	}
	for i, bm := range p.owned {
		if bm.Contains(uint64(ext)) {
			return i, true
		}
	}
	return 0, false
}

// OwnedExternals returns the ownership bitmap of partition i. The
// bitmap is shared, not copied; callers must treat it as read-only.
func (p *Partitions[V]) OwnedExternals(i int) *roaring64.Bitmap {
	return p.owned[i]
}
