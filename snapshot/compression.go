package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType defines the compression algorithm used for section
// blocks.
type CompressionType uint8

const (
	// CompressionNone indicates no compression.
	CompressionNone CompressionType = 0
	// CompressionLZ4 indicates LZ4 block compression (fast; default).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD indicates ZSTD block compression (better ratio
	// for cold archival snapshots).
	CompressionZSTD CompressionType = 2
)

// String returns the algorithm name.
func (ct CompressionType) String() string {
	switch ct {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(ct))
	}
}

// ErrBlockCorrupt is returned when a section block fails to decode.
var ErrBlockCorrupt = errors.New("snapshot: corrupt section block")

// ZSTD encoder/decoder pools for efficiency.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Block framing: [UncompressedSize uint32][CompressedSize uint32][Data].
// CompressedSize == 0 means the payload is stored uncompressed, used
// when compression does not shrink the block.
const blockHeaderSize = 8

// appendBlock frames and appends one section payload to dst.
func appendBlock(dst, data []byte, ct CompressionType) ([]byte, error) {
	var compressed []byte
	var err error

	switch ct {
	case CompressionNone:
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		var n int
		n, err = lz4.CompressBlock(data, buf, nil)
		if err == nil && n > 0 && n < len(data) {
			compressed = buf[:n]
		}
	case CompressionZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(data, nil)
		putZstdEncoder(enc)
		if len(compressed) >= len(data) {
			compressed = nil
		}
	default:
		return nil, fmt.Errorf("snapshot: unknown compression type %d", ct)
	}
	if err != nil {
		return nil, err
	}

	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(data)))
	if compressed == nil {
		dst = binary.LittleEndian.AppendUint32(dst, 0)
		return append(dst, data...), nil
	}
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(compressed)))
	return append(dst, compressed...), nil
}

// readBlock decodes the block at the front of src and returns the
// payload plus the remainder of src.
func readBlock(src []byte, ct CompressionType) ([]byte, []byte, error) {
	if len(src) < blockHeaderSize {
		return nil, nil, ErrBlockCorrupt
	}
	rawLen := binary.LittleEndian.Uint32(src)
	compLen := binary.LittleEndian.Uint32(src[4:])
	src = src[blockHeaderSize:]

	if compLen == 0 {
		if uint32(len(src)) < rawLen {
			return nil, nil, ErrBlockCorrupt
		}
		return src[:rawLen], src[rawLen:], nil
	}
	if uint32(len(src)) < compLen {
		return nil, nil, ErrBlockCorrupt
	}

	payload := src[:compLen]
	rest := src[compLen:]
	out := make([]byte, rawLen)

	switch ct {
	case CompressionLZ4:
		n, err := lz4.UncompressBlock(payload, out)
		if err != nil || uint32(n) != rawLen {
			return nil, nil, ErrBlockCorrupt
		}
	case CompressionZSTD:
		dec := getZstdDecoder()
		decoded, err := dec.DecodeAll(payload, out[:0])
		putZstdDecoder(dec)
		if err != nil || uint32(len(decoded)) != rawLen {
			return nil, nil, ErrBlockCorrupt
		}
		out = decoded
	default:
		return nil, nil, ErrBlockCorrupt
	}

	return out, rest, nil
}
