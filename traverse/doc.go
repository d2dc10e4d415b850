// Package traverse implements the single-source traversals that feed
// path extraction: breadth-first search (unit hop distances) and
// Dijkstra SSSP (non-negative weighted distances).
//
// Traversals run entirely in internal ID space over a CSR stored in
// natural (non-transposed) orientation. Each produces two dense
// arrays indexed by internal vertex ID:
//
//   - Distances: hop count (BFS, vertex-typed) or accumulated weight
//     (SSSP, weight-typed); core.InvalidDistance marks unreachable.
//   - Predecessors: the vertex preceding v on its shortest path, or
//     core.InvalidVertex for sources and unreachable vertices.
//
// The arrays are exactly the compact representation the paths package
// expands into explicit vertex sequences.
package traverse
