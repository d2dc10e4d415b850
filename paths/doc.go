// Package paths reconstructs explicit vertex sequences from the
// compact distance/predecessor output of a traversal.
//
// Reconstruction is two independent data-parallel passes over the
// destination dimension:
//
//  1. Length pass: each destination walks its predecessor chain to a
//     sentinel, counting vertices; the global maximum path length is
//     a reduction over the per-destination counts.
//  2. Materialization pass: each destination re-walks the same chain,
//     writing its row of the shared fixed-stride buffer back to
//     front, so the last len(d) cells hold the path in
//     source-to-destination order and the leading cells keep the pad
//     sentinel.
//
// Walking twice instead of buffering per-destination results keeps
// both passes free of dynamic allocation and of cross-destination
// dependencies: every walk reads shared immutable arrays and writes
// only its own row. Passes are chunked across workers with errgroup.
//
// The fixed-stride layout (destinations × max length, row-major)
// trades memory for O(1) row addressing; rows shorter than the
// maximum are left-padded with core.InvalidVertex.
package paths
