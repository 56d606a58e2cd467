package tekton

import "sort"

// RoomDict stores a project's rooms keyed by header address, and rejects
// duplicate header addresses (§4.H, §7 DuplicateRoom, §9).
type RoomDict struct {
	rooms map[uint32]*Room
}

// NewRoomDict returns an empty RoomDict.
func NewRoomDict() *RoomDict {
	return &RoomDict{rooms: make(map[uint32]*Room)}
}

// Get returns the room with the given header address, or nil if none
// exists.
func (d *RoomDict) Get(header uint32) *Room {
	return d.rooms[header]
}

// Add inserts newRoom, failing with DuplicateRoom if a room with the same
// header address is already present.
func (d *RoomDict) Add(newRoom *Room) error {
	if _, exists := d.rooms[newRoom.Header]; exists {
		return &RoomDictError{Header: newRoom.Header}
	}
	d.rooms[newRoom.Header] = newRoom
	return nil
}

// Keys returns every header address in the dict, sorted ascending (§9
// supplemented feature, grounded on TektonRoomDict.keys).
func (d *RoomDict) Keys() []uint32 {
	keys := make([]uint32, 0, len(d.rooms))
	for k := range d.rooms {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Rooms returns every room in the dict, sorted by header address.
func (d *RoomDict) Rooms() []*Room {
	keys := d.Keys()
	out := make([]*Room, 0, len(keys))
	for _, k := range keys {
		out = append(out, d.rooms[k])
	}
	return out
}

// Len returns the number of rooms in the dict.
func (d *RoomDict) Len() int { return len(d.rooms) }
