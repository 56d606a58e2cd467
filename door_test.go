package tekton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleDoorEncodeBytes(t *testing.T) {
	door := &SimpleDoor{
		TargetRoomID:     0x91f8,
		BitFlag:          DoorSameArea,
		EjectDirection:   EjectLeft,
		TargetDoorCapCol: 0x8e,
		TargetDoorCapRow: 0x46,
		TargetScreenH:    0x08,
		TargetScreenV:    0x04,
		DistanceToSpawn:  0x8000,
		ASMPointer:       0x0000,
	}

	want := []byte{0xf8, 0x91, 0x00, 0x05, 0x8e, 0x46, 0x08, 0x04, 0x00, 0x80, 0x00, 0x00}
	assert.Equal(t, want, door.EncodeBytes())
}

func TestDecodeDoorSimple(t *testing.T) {
	rom := make([]byte, 32)
	copy(rom[4:], []byte{0xf8, 0x91, 0x00, 0x05, 0x8e, 0x46, 0x08, 0x04, 0x00, 0x80, 0x00, 0x00})

	door, err := DecodeDoor(rom, 4)
	require.NoError(t, err)

	simple, ok := door.(*SimpleDoor)
	require.True(t, ok)
	assert.Equal(t, uint16(0x91f8), simple.TargetRoomID)
	assert.Equal(t, DoorSameArea, simple.BitFlag)
	assert.Equal(t, EjectLeft, simple.EjectDirection)
	assert.Equal(t, uint16(0x8000), simple.DistanceToSpawn)
}

func TestDecodeDoorElevatorLaunchpad(t *testing.T) {
	raw := []byte{0x00, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a}
	rom := make([]byte, 16)
	copy(rom, raw)

	door, err := DecodeDoor(rom, 0)
	require.NoError(t, err)

	launchpad, ok := door.(*ElevatorLaunchpad)
	require.True(t, ok)
	assert.Equal(t, raw, launchpad.EncodeBytes())
}

func TestDoorBitFlagAcceptsUnexplainedValues(t *testing.T) {
	for _, v := range []byte{0xd0, 0xe0, 0xf0} {
		f, err := NewDoorBitFlag(v)
		require.NoError(t, err)
		assert.Equal(t, DoorBitFlag(v), f)
	}
}

func TestDoorBitFlagRejectsUnknownValue(t *testing.T) {
	_, err := NewDoorBitFlag(0x01)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestDoorEjectDirectionRejectsOutOfRange(t *testing.T) {
	_, err := NewDoorEjectDirection(0x08)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSimpleDoorTargetRoomHeader(t *testing.T) {
	door := &SimpleDoor{TargetRoomID: 0x91f8}
	pc, err := door.TargetRoomHeader()
	require.NoError(t, err)

	want, err := LoROMToPC([]byte{0xf8, 0x91, 0x8f}, LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, want, pc)
}
