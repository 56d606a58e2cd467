package tekton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileGridUncompressedLength(t *testing.T) {
	grid := NewTileGrid(16, 16)
	grid.Fill(nil)

	data, err := grid.UncompressedData()
	require.NoError(t, err)
	assert.Len(t, data, 3*16*16)
}

func TestTileGridUncompressedDataFailsOnEmptyCell(t *testing.T) {
	grid := NewTileGrid(2, 2)
	grid.Set(0, 0, NewTile())

	_, err := grid.UncompressedData()
	assert.ErrorIs(t, err, ErrEmptyCell)
}

func TestTileGridBlankRoomIsAllZero(t *testing.T) {
	grid := NewTileGrid(16, 16)
	grid.Fill(nil)

	data, err := grid.UncompressedData()
	require.NoError(t, err)

	for _, b := range data {
		assert.Equal(t, byte(0), b)
	}
}

func TestTileGridOverlayClips(t *testing.T) {
	dst := NewTileGrid(4, 4)
	dst.Fill(nil)

	src := NewTileGrid(2, 2)
	tile := NewTile()
	require.NoError(t, tile.SetTileNo(1))
	src.Fill(&tile)

	dst.Overlay(src, 3, 3)

	assert.Equal(t, uint16(1), dst.At(3, 3).TileNo())
}

func TestTileGridLoadUncompressedDataRoundTrip(t *testing.T) {
	grid := NewTileGrid(16, 16)
	tile := NewTile()
	require.NoError(t, tile.SetTileNo(42))
	tile.BtsNum = 7
	grid.Fill(&tile)

	data, err := grid.UncompressedData()
	require.NoError(t, err)

	loaded := NewTileGrid(16, 16)
	require.NoError(t, loaded.LoadUncompressedData(data))

	assert.True(t, tile.Equal(*loaded.At(0, 0)))
	assert.True(t, tile.Equal(*loaded.At(15, 15)))
}

func TestTileGridLoadUncompressedDataRejectsWrongLength(t *testing.T) {
	grid := NewTileGrid(16, 16)
	err := grid.LoadUncompressedData(make([]byte, 10))
	assert.Error(t, err)
}
