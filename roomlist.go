package tekton

import (
	"os"

	"gopkg.in/yaml.v3"
)

// RoomHeaderEntry is one entry of the room header list: a PC address and
// an optional display name, decoded from YAML (§6).
type RoomHeaderEntry struct {
	Header uint32 `yaml:"header"`
	Name   string `yaml:"name"`
}

// LoadRoomHeaderList reads and decodes a room header list YAML document
// from path (§6).
func LoadRoomHeaderList(path string) ([]RoomHeaderEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRoomHeaderList(data)
}

// ParseRoomHeaderList decodes a room header list YAML document already
// read into memory (§6: "a top-level sequence; each entry is a mapping
// with header ... and optional name").
func ParseRoomHeaderList(data []byte) ([]RoomHeaderEntry, error) {
	var entries []RoomHeaderEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
