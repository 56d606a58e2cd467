package tekton

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectSaveAppliesDoorAndLevelDataPatches(t *testing.T) {
	dir := t.TempDir()
	romPath := filepath.Join(dir, "source.sfc")
	outPath := filepath.Join(dir, "modified.sfc")

	rom := make([]byte, 0x200)
	require.NoError(t, os.WriteFile(romPath, rom, 0o644))

	project := NewProject(romPath)

	room := NewRoom(1, 1)
	room.Header = 0x10
	room.StandardState.LevelDataAddress = 0x100
	room.WriteLevelData = true
	room.Doors = append(room.Doors, &SimpleDoor{DataAddr: 0x50, TargetRoomID: 0x1234})
	require.NoError(t, project.Rooms.Add(room))

	require.NoError(t, project.Save(outPath))

	modified, err := os.ReadFile(outPath)
	require.NoError(t, err)

	compressed, err := room.CompressedLevelData()
	require.NoError(t, err)
	assert.Equal(t, compressed, modified[0x100:0x100+len(compressed)])

	doorBytes := room.Doors[0].EncodeBytes()
	assert.Equal(t, doorBytes, modified[0x50:0x50+12])
}

func TestProjectSaveSkipsLevelDataWhenDisabled(t *testing.T) {
	dir := t.TempDir()
	romPath := filepath.Join(dir, "source.sfc")
	outPath := filepath.Join(dir, "modified.sfc")

	rom := make([]byte, 0x200)
	for i := range rom {
		rom[i] = 0xaa
	}
	require.NoError(t, os.WriteFile(romPath, rom, 0o644))

	project := NewProject(romPath)
	room := NewRoom(1, 1)
	room.Header = 0x10
	room.StandardState.LevelDataAddress = 0x100
	room.WriteLevelData = false
	require.NoError(t, project.Rooms.Add(room))

	require.NoError(t, project.Save(outPath))

	modified, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, byte(0xaa), modified[0x100])
}
