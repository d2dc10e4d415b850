// Package snapshot persists graphs as sectioned, block-compressed
// blobs.
//
// A snapshot is a fixed header followed by framed sections in order:
// CSR offsets, CSR indices, edge weights (weighted graphs only), the
// renumbering map, and the partition range bounds. Each section is an
// independently compressed block (LZ4 by default, ZSTD for better
// ratio), so a reader decodes sequentially without an offset table.
//
// The header records the vertex/edge/weight kinds, so a snapshot can
// be loaded without knowing the graph's types up front; the root
// package dispatches on the header to a typed reader.
package snapshot
