package tekton

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Project is the top-level façade: a source image and the rooms imported
// from it, with a Save operation that applies every room's edits back onto
// the source bytes (§4.H).
type Project struct {
	SourceROMPath string
	Rooms         *RoomDict
}

// NewProject returns an empty project rooted at sourceROMPath.
func NewProject(sourceROMPath string) *Project {
	return &Project{SourceROMPath: sourceROMPath, Rooms: NewRoomDict()}
}

// SourceContents reads the full byte contents of the source ROM image
// (§5: "blocking file I/O at two well-defined points").
func (p *Project) SourceContents() ([]byte, error) {
	return os.ReadFile(p.SourceROMPath)
}

// ImportRooms reads the room header list at headerListPath and imports
// every listed room from the source image into p.Rooms (§4.H, §6). If
// headerListPath is empty, ImportRooms imports nothing — unlike the
// source's fallback to a bundled default list, callers of this library
// always supply their own room header list (§9 Open Question decision).
func (p *Project) ImportRooms(headerListPath string) error {
	if headerListPath == "" {
		return nil
	}

	entries, err := LoadRoomHeaderList(headerListPath)
	if err != nil {
		return err
	}

	rom, err := p.SourceContents()
	if err != nil {
		return err
	}

	levelDataGrids := make(map[uint32]*TileGrid)

	for _, entry := range entries {
		room, err := ImportRoom(rom, entry.Header, levelDataGrids)
		if err != nil {
			log.WithFields(log.Fields{"header": entry.Header, "name": entry.Name}).WithError(err).Warn("tekton: failed to import room")
			continue
		}
		room.Name = entry.Name
		if err := p.Rooms.Add(room); err != nil {
			return err
		}
		log.WithFields(log.Fields{"header": entry.Header, "name": entry.Name}).Debug("tekton: imported room")
	}

	return nil
}

// ModifiedContents returns the source image with every room's edits
// applied: compressed level data at each standard state's level-data
// address (only when write_level_data is set), and each door's 12 bytes at
// its data address (§4.H, §6 on-disk layout). No other bytes are altered.
func (p *Project) ModifiedContents() ([]byte, error) {
	out, err := p.SourceContents()
	if err != nil {
		return nil, err
	}

	for _, room := range p.Rooms.Rooms() {
		if room.WriteLevelData {
			compressed, err := room.CompressedLevelData()
			if err != nil {
				return nil, err
			}
			out = Overwrite(out, compressed, int(room.StandardState.LevelDataAddress))
		}

		for _, door := range room.Doors {
			out = Overwrite(out, door.EncodeBytes(), int(door.DataAddress()))
		}
	}

	return out, nil
}

// Save writes ModifiedContents to destPath (§5).
func (p *Project) Save(destPath string) error {
	contents, err := p.ModifiedContents()
	if err != nil {
		return err
	}
	return os.WriteFile(destPath, contents, 0o644)
}
