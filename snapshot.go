package cugraph

import (
	"context"
	"time"

	"github.com/chirayuG-nvidia/cugraph/blobstore"
	"github.com/chirayuG-nvidia/cugraph/core"
	"github.com/chirayuG-nvidia/cugraph/snapshot"
)

// Save serializes the graph into the blob store under name. The
// snapshot records the runtime type tags, storage orientation, and
// partition layout, so Load restores an equivalent handle.
func (g *Graph) Save(ctx context.Context, store blobstore.BlobStore, name string, compression snapshot.CompressionType) (err error) {
	start := time.Now()
	var written int64
	defer func() {
		if r := recover(); r != nil {
			err = recovered(r)
		}
		g.opts.metrics.RecordSnapshot("save", written, time.Since(start), err)
	}()

	var data []byte
	g.mu.Lock()
	switch tg := g.store.(type) {
	case *typedGraph[int32, int32, float32]:
		data, err = snapshot.Encode(tg.csr, tg.nmap, tg.parts, compression)
	case *typedGraph[int32, int32, float64]:
		data, err = snapshot.Encode(tg.csr, tg.nmap, tg.parts, compression)
	case *typedGraph[int32, int64, float32]:
		data, err = snapshot.Encode(tg.csr, tg.nmap, tg.parts, compression)
	case *typedGraph[int32, int64, float64]:
		data, err = snapshot.Encode(tg.csr, tg.nmap, tg.parts, compression)
	case *typedGraph[int64, int64, float32]:
		data, err = snapshot.Encode(tg.csr, tg.nmap, tg.parts, compression)
	case *typedGraph[int64, int64, float64]:
		data, err = snapshot.Encode(tg.csr, tg.nmap, tg.parts, compression)
	default:
		err = &ErrUnsupportedKinds{Vertex: g.vertexKind, Edge: g.edgeKind, Weight: g.weightKind}
	}
	g.mu.Unlock()
	if err != nil {
		return translateError(err)
	}

	if err = g.opts.rc.AcquireIO(ctx, len(data)); err != nil {
		return translateError(err)
	}
	if err = store.Put(ctx, name, data); err != nil {
		return translateError(err)
	}
	written = int64(len(data))

	g.opts.logger.DebugContext(ctx, "snapshot saved",
		"name", name,
		"bytes", written,
		"compression", int(compression),
	)
	return nil
}

// Load restores a graph previously written by Save. Options configure
// the restored handle the same way FromEdges options do; partition
// layout and storage orientation come from the snapshot itself.
func Load(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (g *Graph, err error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	start := time.Now()
	var read int64
	defer func() {
		if r := recover(); r != nil {
			g, err = nil, recovered(r)
		}
		opts.metrics.RecordSnapshot("load", read, time.Since(start), err)
	}()

	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, translateError(err)
	}
	defer blob.Close()

	if err = opts.rc.AcquireIO(ctx, int(blob.Size())); err != nil {
		return nil, translateError(err)
	}
	data, err := blobstore.ReadAll(ctx, blob)
	if err != nil {
		return nil, translateError(err)
	}
	read = int64(len(data))

	h, err := snapshot.ReadHeader(data)
	if err != nil {
		return nil, translateError(err)
	}
	if !supportedKinds(h.VertexKind, h.EdgeKind, h.WeightKind) {
		return nil, translateError(&ErrUnsupportedKinds{Vertex: h.VertexKind, Edge: h.EdgeKind, Weight: h.WeightKind})
	}

	switch {
	case h.VertexKind == core.KindInt32 && h.EdgeKind == core.KindInt32 && h.WeightKind == core.KindFloat32:
		g, err = loadTyped[int32, int32, float32](data, h, opts)
	case h.VertexKind == core.KindInt32 && h.EdgeKind == core.KindInt32 && h.WeightKind == core.KindFloat64:
		g, err = loadTyped[int32, int32, float64](data, h, opts)
	case h.VertexKind == core.KindInt32 && h.EdgeKind == core.KindInt64 && h.WeightKind == core.KindFloat32:
		g, err = loadTyped[int32, int64, float32](data, h, opts)
	case h.VertexKind == core.KindInt32 && h.EdgeKind == core.KindInt64 && h.WeightKind == core.KindFloat64:
		g, err = loadTyped[int32, int64, float64](data, h, opts)
	case h.VertexKind == core.KindInt64 && h.EdgeKind == core.KindInt64 && h.WeightKind == core.KindFloat32:
		g, err = loadTyped[int64, int64, float32](data, h, opts)
	case h.VertexKind == core.KindInt64 && h.EdgeKind == core.KindInt64 && h.WeightKind == core.KindFloat64:
		g, err = loadTyped[int64, int64, float64](data, h, opts)
	default:
		err = &ErrUnsupportedKinds{Vertex: h.VertexKind, Edge: h.EdgeKind, Weight: h.WeightKind}
	}
	if err != nil {
		return nil, translateError(err)
	}

	opts.logger.DebugContext(ctx, "snapshot loaded",
		"name", name,
		"bytes", read,
		"vertices", g.numVertices,
		"edges", g.numEdges,
		"partitions", h.Partitions,
	)
	return g, nil
}

func loadTyped[V core.VertexID, E core.EdgeID, W core.Weight](data []byte, h snapshot.Header, opts options) (*Graph, error) {
	csr, nmap, parts, err := snapshot.Decode[V, E, W](data)
	if err != nil {
		return nil, err
	}
	return &Graph{
		vertexKind:  h.VertexKind,
		edgeKind:    h.EdgeKind,
		weightKind:  h.WeightKind,
		store:       &typedGraph[V, E, W]{csr: csr, nmap: nmap, parts: parts},
		transposed:  h.Transposed,
		partitioned: parts.Count() > 1,
		numVertices: h.NumVertices,
		numEdges:    h.NumEdges,
		opts:        opts,
	}, nil
}
