package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/chirayuG-nvidia/cugraph/core"
	"github.com/chirayuG-nvidia/cugraph/graph"
)

// Format: magic, version, then the Header fields, then one framed
// block per section in fixed order (offsets, indices, weights if
// weighted, renumbering map, partition lasts).
var magic = [8]byte{'C', 'G', 'R', 'S', 'N', 'A', 'P', '1'}

const (
	formatVersion = 1
	headerSize    = 8 + 1 + 4 + 1 + 1 + 4 + 8 + 8 // magic, version, kinds+flags, compression, pad, partitions, vertices, edges
)

const (
	flagWeighted   = 1 << 0
	flagTransposed = 1 << 1
)

var (
	// ErrBadMagic is returned when a blob is not a graph snapshot.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrBadVersion is returned for an unknown format version.
	ErrBadVersion = errors.New("snapshot: unsupported format version")
	// ErrTruncated is returned when a blob is shorter than its
	// header claims.
	ErrTruncated = errors.New("snapshot: truncated")
	// ErrKindMismatch is returned when a typed reader is instantiated
	// with types other than the header's kinds.
	ErrKindMismatch = errors.New("snapshot: header kinds do not match requested types")
)

// Header describes a snapshot without decoding its sections.
type Header struct {
	VertexKind  core.Kind
	EdgeKind    core.Kind
	WeightKind  core.Kind
	Compression CompressionType
	Weighted    bool
	Transposed  bool
	Partitions  int
	NumVertices int64
	NumEdges    int64
}

// ReadHeader decodes the fixed header at the front of a snapshot
// blob.
func ReadHeader(data []byte) (Header, error) {
	var h Header
	if len(data) < headerSize {
		return h, ErrTruncated
	}
	if [8]byte(data[:8]) != magic {
		return h, ErrBadMagic
	}
	if data[8] != formatVersion {
		return h, ErrBadVersion
	}

	h.VertexKind = core.Kind(data[9])
	h.EdgeKind = core.Kind(data[10])
	h.WeightKind = core.Kind(data[11])
	flags := data[12]
	h.Weighted = flags&flagWeighted != 0
	h.Transposed = flags&flagTransposed != 0
	h.Compression = CompressionType(data[13])
	// data[14] is padding.
	h.Partitions = int(binary.LittleEndian.Uint32(data[15:]))
	h.NumVertices = int64(binary.LittleEndian.Uint64(data[19:]))
	h.NumEdges = int64(binary.LittleEndian.Uint64(data[27:]))
	return h, nil
}

func (h Header) append(dst []byte) []byte {
	dst = append(dst, magic[:]...)
	dst = append(dst, formatVersion)
	dst = append(dst, byte(h.VertexKind), byte(h.EdgeKind), byte(h.WeightKind))
	var flags byte
	if h.Weighted {
		flags |= flagWeighted
	}
	if h.Transposed {
		flags |= flagTransposed
	}
	dst = append(dst, flags, byte(h.Compression), 0)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(h.Partitions))
	dst = binary.LittleEndian.AppendUint64(dst, uint64(h.NumVertices))
	dst = binary.LittleEndian.AppendUint64(dst, uint64(h.NumEdges))
	return dst
}

// Encode serializes a typed graph into a snapshot blob.
func Encode[V core.VertexID, E core.EdgeID, W core.Weight](csr *graph.CSR[V, E, W], nmap *graph.NumberMap[V], parts *graph.Partitions[V], ct CompressionType) ([]byte, error) {
	h := Header{
		VertexKind:  core.KindOf[V](),
		EdgeKind:    core.KindOf[E](),
		WeightKind:  core.KindOf[W](),
		Compression: ct,
		Weighted:    csr.Weighted(),
		Transposed:  csr.Transposed(),
		Partitions:  parts.Count(),
		NumVertices: int64(csr.NumVertices()),
		NumEdges:    int64(csr.NumEdges()),
	}

	out := h.append(make([]byte, 0, headerSize))

	var err error
	if out, err = appendBlock(out, elemsToBytes(csr.Offsets()), ct); err != nil {
		return nil, err
	}
	if out, err = appendBlock(out, elemsToBytes(csr.Indices()), ct); err != nil {
		return nil, err
	}
	if csr.Weighted() {
		if out, err = appendBlock(out, elemsToBytes(csr.Weights()), ct); err != nil {
			return nil, err
		}
	}
	if out, err = appendBlock(out, elemsToBytes(nmap.Externals()), ct); err != nil {
		return nil, err
	}
	if out, err = appendBlock(out, elemsToBytes(parts.Lasts()), ct); err != nil {
		return nil, err
	}
	return out, nil
}

// Decode rebuilds a typed graph from a snapshot blob. The type
// parameters must match the header's kinds.
func Decode[V core.VertexID, E core.EdgeID, W core.Weight](data []byte) (*graph.CSR[V, E, W], *graph.NumberMap[V], *graph.Partitions[V], error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, nil, nil, err
	}
	if h.VertexKind != core.KindOf[V]() || h.EdgeKind != core.KindOf[E]() || h.WeightKind != core.KindOf[W]() {
		return nil, nil, nil, ErrKindMismatch
	}

	rest := data[headerSize:]

	var payload []byte
	if payload, rest, err = readBlock(rest, h.Compression); err != nil {
		return nil, nil, nil, err
	}
	offsets, err := bytesToElems[E](payload, h.NumVertices+1)
	if err != nil {
		return nil, nil, nil, err
	}

	if payload, rest, err = readBlock(rest, h.Compression); err != nil {
		return nil, nil, nil, err
	}
	indices, err := bytesToElems[V](payload, h.NumEdges)
	if err != nil {
		return nil, nil, nil, err
	}

	var weights []W
	if h.Weighted {
		if payload, rest, err = readBlock(rest, h.Compression); err != nil {
			return nil, nil, nil, err
		}
		if weights, err = bytesToElems[W](payload, h.NumEdges); err != nil {
			return nil, nil, nil, err
		}
	}

	if payload, rest, err = readBlock(rest, h.Compression); err != nil {
		return nil, nil, nil, err
	}
	externals, err := bytesToElems[V](payload, h.NumVertices)
	if err != nil {
		return nil, nil, nil, err
	}

	if payload, _, err = readBlock(rest, h.Compression); err != nil {
		return nil, nil, nil, err
	}
	lasts, err := bytesToElems[V](payload, int64(h.Partitions))
	if err != nil {
		return nil, nil, nil, err
	}

	csr, err := graph.CSRFromRaw(offsets, indices, weights, h.Transposed)
	if err != nil {
		return nil, nil, nil, err
	}
	nmap, err := graph.NumberMapFromExternals(externals)
	if err != nil {
		return nil, nil, nil, err
	}
	parts := graph.PartitionsFromLasts(lasts, nmap)

	return csr, nmap, parts, nil
}

// elemsToBytes encodes a numeric slice little-endian.
func elemsToBytes[T core.Distance](src []T) []byte {
	out := make([]byte, 0, len(src)*8)
	switch s := any(src).(type) {
	case []int32:
		for _, v := range s {
			out = binary.LittleEndian.AppendUint32(out, uint32(v))
		}
	case []int64:
		for _, v := range s {
			out = binary.LittleEndian.AppendUint64(out, uint64(v))
		}
	case []float32:
		for _, v := range s {
			out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v))
		}
	case []float64:
		for _, v := range s {
			out = binary.LittleEndian.AppendUint64(out, math.Float64bits(v))
		}
	}
	return out
}

// bytesToElems decodes a little-endian numeric slice of known length.
func bytesToElems[T core.Distance](payload []byte, count int64) ([]T, error) {
	out := make([]T, count)
	switch s := any(out).(type) {
	case []int32:
		if int64(len(payload)) != count*4 {
			return nil, sectionSizeError(len(payload), count*4)
		}
		for i := range s {
			s[i] = int32(binary.LittleEndian.Uint32(payload[i*4:]))
		}
	case []int64:
		if int64(len(payload)) != count*8 {
			return nil, sectionSizeError(len(payload), count*8)
		}
		for i := range s {
			s[i] = int64(binary.LittleEndian.Uint64(payload[i*8:]))
		}
	case []float32:
		if int64(len(payload)) != count*4 {
			return nil, sectionSizeError(len(payload), count*4)
		}
		for i := range s {
			s[i] = math.Float32frombits(binary.LittleEndian.Uint32(payload[i*4:]))
		}
	case []float64:
		if int64(len(payload)) != count*8 {
			return nil, sectionSizeError(len(payload), count*8)
		}
		for i := range s {
			s[i] = math.Float64frombits(binary.LittleEndian.Uint64(payload[i*8:]))
		}
	}
	return out, nil
}

func sectionSizeError(got int, want int64) error {
	return fmt.Errorf("%w: section is %d bytes, want %d", ErrTruncated, got, want)
}
