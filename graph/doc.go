// Package graph provides the storage layer for cugraph: compressed
// sparse row (CSR) adjacency generic over vertex, edge and weight
// types, the renumbering map that translates between caller-visible
// external vertex IDs and dense internal IDs, and the partition
// descriptor used when a graph is split across multiple compute
// domains.
//
// # ID Spaces
//
// Every slice of vertex IDs lives in exactly one of two spaces:
//
//   - External: the caller's original numbering. Arbitrary
//     non-negative values, possibly sparse.
//   - Internal: dense [0, N) numbering assigned at construction.
//     All hot-path structures (CSR offsets, traversal frontiers,
//     distance and predecessor arrays) are indexed by internal IDs.
//
// NumberMap performs bulk translation in both directions. The
// sentinel core.InvalidVertex is a member of neither space and passes
// through translation verbatim.
//
// # Partitioning
//
// A partitioned graph assigns each partition a contiguous range of
// internal IDs. Partitions tracks the range bounds plus a Roaring
// bitmap of the external IDs each partition owns, so lookups that
// miss can be attributed to the owning domain.
package graph
