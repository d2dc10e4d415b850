package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chirayuG-nvidia/cugraph/core"
	"github.com/chirayuG-nvidia/cugraph/graph"
)

func buildFixture(t *testing.T, weights []float32) (*graph.CSR[int32, int32, float32], *graph.NumberMap[int32], *graph.Partitions[int32]) {
	t.Helper()
	nmap, err := graph.BuildNumberMap([]int32{10, 20, 30, 40})
	require.NoError(t, err)
	csr, err := graph.NewCSR[int32, int32, float32](4, []int32{0, 1, 2}, []int32{1, 2, 3}, weights, false)
	require.NoError(t, err)
	parts := graph.SplitPartitions(nmap.NumVertices(), 2, nmap)
	return csr, nmap, parts
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, ct := range []CompressionType{CompressionNone, CompressionLZ4, CompressionZSTD} {
		t.Run(ct.String(), func(t *testing.T) {
			csr, nmap, parts := buildFixture(t, []float32{1.5, 2.5, 3.5})

			blob, err := Encode(csr, nmap, parts, ct)
			require.NoError(t, err)

			h, err := ReadHeader(blob)
			require.NoError(t, err)
			assert.Equal(t, core.KindInt32, h.VertexKind)
			assert.Equal(t, core.KindFloat32, h.WeightKind)
			assert.Equal(t, ct, h.Compression)
			assert.True(t, h.Weighted)
			assert.False(t, h.Transposed)
			assert.Equal(t, 2, h.Partitions)
			assert.Equal(t, int64(4), h.NumVertices)
			assert.Equal(t, int64(3), h.NumEdges)

			gotCSR, gotMap, gotParts, err := Decode[int32, int32, float32](blob)
			require.NoError(t, err)

			assert.Equal(t, csr.Offsets(), gotCSR.Offsets())
			assert.Equal(t, csr.Indices(), gotCSR.Indices())
			assert.Equal(t, csr.Weights(), gotCSR.Weights())
			assert.Equal(t, nmap.Externals(), gotMap.Externals())
			assert.Equal(t, parts.Lasts(), gotParts.Lasts())
		})
	}
}

func TestEncodeDecodeUnweighted(t *testing.T) {
	csr, nmap, parts := buildFixture(t, nil)

	blob, err := Encode(csr, nmap, parts, CompressionLZ4)
	require.NoError(t, err)

	h, err := ReadHeader(blob)
	require.NoError(t, err)
	assert.False(t, h.Weighted)

	gotCSR, _, _, err := Decode[int32, int32, float32](blob)
	require.NoError(t, err)
	assert.False(t, gotCSR.Weighted())
	assert.Equal(t, csr.Indices(), gotCSR.Indices())
}

func TestDecodeKindMismatch(t *testing.T) {
	csr, nmap, parts := buildFixture(t, nil)

	blob, err := Encode(csr, nmap, parts, CompressionNone)
	require.NoError(t, err)

	_, _, _, err = Decode[int64, int64, float32](blob)
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestReadHeaderValidation(t *testing.T) {
	csr, nmap, parts := buildFixture(t, nil)
	blob, err := Encode(csr, nmap, parts, CompressionNone)
	require.NoError(t, err)

	_, err = ReadHeader(blob[:10])
	assert.ErrorIs(t, err, ErrTruncated)

	bad := append([]byte(nil), blob...)
	bad[0] = 'X'
	_, err = ReadHeader(bad)
	assert.ErrorIs(t, err, ErrBadMagic)

	bad = append([]byte(nil), blob...)
	bad[8] = 99
	_, err = ReadHeader(bad)
	assert.ErrorIs(t, err, ErrBadVersion)
}

func TestDecodeTruncatedSections(t *testing.T) {
	csr, nmap, parts := buildFixture(t, nil)
	blob, err := Encode(csr, nmap, parts, CompressionNone)
	require.NoError(t, err)

	_, _, _, err = Decode[int32, int32, float32](blob[:headerSize+4])
	assert.ErrorIs(t, err, ErrBlockCorrupt)
}
