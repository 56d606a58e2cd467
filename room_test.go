package tekton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomHeaderLayoutOffsets(t *testing.T) {
	r := NewRoom(3, 4)
	r.Header = 0x1000

	r.ExtraStates = []RoomStatePointer{
		&EventStatePointer{EventValue: 1, RoomState: &RoomState{Tiles: r.StandardState.Tiles}},
	}
	for i := 0; i < 5; i++ {
		r.Doors = append(r.Doors, &SimpleDoor{DataAddr: uint32(0x2000 + i*12)})
	}

	assert.Equal(t, r.Header+70, r.doorPointerListAddress())
	assert.Equal(t, r.Header+44, r.roomStateAddress(0))
}

func TestRoomHeaderDataRejectsTooManyScreens(t *testing.T) {
	r := NewRoom(10, 10)
	_, err := r.HeaderData()
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestRoomCompressedLevelDataEnforcesLevelDataLength(t *testing.T) {
	r := NewRoom(1, 1)
	r.LevelDataLength = 2

	_, err := r.CompressedLevelData()
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestImportRoomSharesGridByLevelDataAddress(t *testing.T) {
	rom := make([]byte, 0x1000)

	headerAddr := uint32(0x100)
	rom[headerAddr] = 0x01   // room_index
	rom[headerAddr+1] = 0x00 // map_area
	rom[headerAddr+2] = 0x00
	rom[headerAddr+3] = 0x00
	rom[headerAddr+4] = 0x01 // width_screens
	rom[headerAddr+5] = 0x01 // height_screens
	rom[headerAddr+6] = 0x00
	rom[headerAddr+7] = 0x00
	rom[headerAddr+8] = 0x00

	doorListOffset := uint16(0x0000)
	rom[headerAddr+9] = byte(doorListOffset)
	rom[headerAddr+10] = byte(doorListOffset >> 8)

	standardStateAddr := headerAddr + 11 + 2
	rom[headerAddr+11] = standardStateSentinel[0]
	rom[headerAddr+12] = standardStateSentinel[1]

	levelDataLoROM, err := PCToLoROM(0x30000, LittleEndian)
	require.NoError(t, err)
	copy(rom[standardStateAddr:], levelDataLoROM)

	grids := make(map[uint32]*TileGrid)
	room, err := ImportRoom(rom, headerAddr, grids)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x30000), room.StandardState.LevelDataAddress)
	assert.NotNil(t, room.StandardState.Tiles)

	again, err := ImportRoom(rom, headerAddr, grids)
	require.NoError(t, err)
	assert.Same(t, room.StandardState.Tiles, again.StandardState.Tiles)
}
