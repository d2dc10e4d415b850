// Package cugraph provides graph traversal and path extraction for Go.
//
// The library builds renumbered, optionally partitioned CSR graphs
// from edge lists, runs single-source traversals (BFS, SSSP) over
// them, and reconstructs explicit vertex-to-vertex paths from the
// compact distance/predecessor traversal output.
//
// # Quick Start
//
//	ctx := context.Background()
//
//	// Edge list in caller ("external") vertex IDs.
//	src := []int32{10, 20, 30}
//	dst := []int32{20, 30, 40}
//
//	g, err := cugraph.FromEdges[int32, int32, float32](ctx, src, dst, nil)
//	if err != nil { ... }
//
//	sources := core.NewInt32Buffer([]int32{10})
//	res, err := cugraph.BFS(ctx, g, sources)
//	if err != nil { ... }
//
//	dests := core.NewInt32Buffer([]int32{40, 20})
//	pr, err := cugraph.ExtractPaths(ctx, g, sources, res, dests)
//	if err != nil { ... }
//	defer pr.Close()
//
//	// pr.Paths() is a row-major buffer with one row per destination,
//	// each row pr.MaxPathLength() cells wide, left-padded with the
//	// invalid-vertex sentinel for paths shorter than the longest.
//
// # ID Spaces
//
// Callers always see external vertex IDs. Internally every graph is
// renumbered to dense IDs; traversal and extraction results are
// translated back before they are returned. See package graph.
//
// # Type Dispatch
//
// Graph handles are type-erased: the concrete vertex/edge/weight
// types are runtime tags resolved once per call at the API boundary,
// which selects one of a closed set of generic instantiations. Inside
// the hot loops everything is statically typed. Valid combinations
// pair int32/int64 vertices with an edge type at least as wide and
// float32/float64 weights.
//
// # Partitioned Graphs
//
// WithPartitions(n) splits the internal vertex range into n
// contiguous domains with per-domain ownership bitmaps, mirroring a
// multi-node deployment in process. Traversal and extraction results
// are identical to the single-domain case.
//
// # Persistence
//
// Graphs can be saved to and loaded from a blobstore (local
// directory, in-memory, S3, MinIO) as sectioned, block-compressed
// snapshots. See packages snapshot and blobstore.
package cugraph
