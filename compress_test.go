package tekton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressedLevelHeader(t *testing.T) {
	m := &CompressionMapper{WidthScreens: 1, HeightScreens: 1}
	assert.Equal(t, []byte{0x01, 0x00, 0x02}, m.CompressedLevelHeader())
}

func TestCompressBlankOneByOneRoom(t *testing.T) {
	grid := NewTileGrid(16, 16)
	grid.Fill(nil)

	uncompressed, err := grid.UncompressedData()
	require.NoError(t, err)
	require.Len(t, uncompressed, 768)

	mapper := &CompressionMapper{WidthScreens: 1, HeightScreens: 1}
	compressed, err := mapper.Compress(uncompressed, 155)
	require.NoError(t, err)

	assert.Len(t, compressed, 155)
	assert.Equal(t, []byte{0x01, 0x00, 0x02}, compressed[0:3])

	// The whole 768-byte uncompressed stream is uniform 0x00 (layer-1
	// words and BTS bytes alike), so the byte-fill pass claims it as a
	// single long-form ByteFill field (§4.F's byte-oriented-only decision
	// collapses the tile-oriented L1Repeater/BTSRepeater pair from §8's
	// scenario into one ByteFill run spanning both streams).
	cmd, numBytes, consumed, err := decodeEnvelope(compressed[3:])
	require.NoError(t, err)
	assert.Equal(t, CmdByteFill, cmd)
	assert.Equal(t, 768, numBytes)

	fieldEnd := 3 + consumed + 1
	for i := fieldEnd; i < len(compressed); i++ {
		assert.Equal(t, byte(0xff), compressed[i])
	}
}

func TestCompressTooLarge(t *testing.T) {
	grid := NewTileGrid(16, 16)
	grid.Fill(nil)
	uncompressed, err := grid.UncompressedData()
	require.NoError(t, err)

	mapper := &CompressionMapper{WidthScreens: 1, HeightScreens: 1}
	_, err = mapper.Compress(uncompressed, 2)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestCompressRejectsTooManyScreens(t *testing.T) {
	mapper := &CompressionMapper{WidthScreens: 10, HeightScreens: 10}
	_, err := mapper.Compress([]byte{0x00}, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestCompressionUpperBound(t *testing.T) {
	data := make([]byte, 300)
	for i := range data {
		data[i] = byte(i % 251) // no runs, forces DirectCopy-heavy output
	}

	mapper := &CompressionMapper{WidthScreens: 2, HeightScreens: 1}
	compressed, err := mapper.Compress(data, 0)
	require.NoError(t, err)

	maxLen := len(data) + 3 + ((len(data)+1023)/1024)*2
	assert.LessOrEqual(t, len(compressed), maxLen)
}

func TestMapWordFillsRequiresMoreThanTwoBytes(t *testing.T) {
	data := []byte{0x01, 0x02}
	assignment := make([]Field, len(data))
	mapWordFills(data, assignment)

	for _, f := range assignment {
		assert.Nil(t, f, "a 2-byte alternating run should not map to WordFill (threshold is >2 bytes)")
	}
}

func TestMapWordFillsAcceptsFourBytes(t *testing.T) {
	data := []byte{0x01, 0x02, 0x01, 0x02}
	assignment := make([]Field, len(data))
	mapWordFills(data, assignment)

	wf, ok := assignment[0].(*WordFillField)
	require.True(t, ok)
	assert.Equal(t, 4, wf.Count)
}

func TestMapByteFillsRequiresMoreThanTwoBytes(t *testing.T) {
	data := []byte{0x05, 0x05}
	assignment := make([]Field, len(data))
	mapByteFills(data, assignment)

	for _, f := range assignment {
		assert.Nil(t, f)
	}
}

func TestMapDirectCopiesSplitsAtMaxFieldBytes(t *testing.T) {
	data := make([]byte, maxFieldBytes+1)
	for i := range data {
		data[i] = byte(i)
	}
	assignment := make([]Field, len(data))
	mapDirectCopies(data, assignment)

	fields := coalesceAssignment(assignment)
	require.Len(t, fields, 2)
	assert.Equal(t, maxFieldBytes, fields[0].NumBytes())
	assert.Equal(t, 1, fields[1].NumBytes())
}
