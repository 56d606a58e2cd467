package tekton

import "encoding/binary"

// MapArea tags which region of the planet a room belongs to (§6).
type MapArea byte

const (
	MapAreaCrateria    MapArea = 0x00
	MapAreaBrinstar    MapArea = 0x01
	MapAreaNorfair     MapArea = 0x02
	MapAreaWreckedShip MapArea = 0x03
	MapAreaMaridia     MapArea = 0x04
	MapAreaTourian     MapArea = 0x05
	MapAreaCeres       MapArea = 0x06
	MapAreaDebug       MapArea = 0x07
)

// Room is a single Super Metroid room: its fixed header fields, its
// standard and extra room states, and its doors (§3).
type Room struct {
	Header uint32

	RoomIndex            byte
	MapArea              MapArea
	MinimapXCoord         byte
	MinimapYCoord         byte
	WidthScreens          int
	HeightScreens         int
	UpScroller            byte
	DownScroller          byte
	SpecialGraphicsBitflag byte

	StandardState *RoomState
	ExtraStates   []RoomStatePointer
	Doors         []Door

	// LevelDataLength is the maximum number of bytes reserved in the ROM
	// for this room's compressed standard-state level data. Zero means no
	// cap (§9 supplemented feature).
	LevelDataLength int

	// WriteLevelData gates whether Project.Save patches this room's
	// compressed level data back into the image (§4.H).
	WriteLevelData bool

	// Name is a non-persisted display label, populated from the room
	// header list (§6).
	Name string
}

// NewRoom returns an empty width x height (in screens) room: a default
// standard state with a filled TileGrid of default tiles, no extra states,
// and no doors (§3 "created empty").
func NewRoom(widthScreens, heightScreens int) *Room {
	grid := NewTileGrid(widthScreens*16, heightScreens*16)
	grid.Fill(nil)

	return &Room{
		WidthScreens:   widthScreens,
		HeightScreens:  heightScreens,
		StandardState:  &RoomState{Tiles: grid},
		WriteLevelData: true,
	}
}

// roomStatePointersLength returns the byte length of every extra
// RoomStatePointer's encoded form (§4.G).
func (r *Room) roomStatePointersLength() int {
	n := 0
	for _, p := range r.ExtraStates {
		n += p.ByteLength()
	}
	return n
}

// roomStateAddress returns the PC address of the RoomState pointed to by
// the i-th extra state pointer: the fixed header, the full pointer list,
// the standard-state sentinel and body, then 26 bytes per preceding extra
// state (§4.G).
func (r *Room) roomStateAddress(i int) uint32 {
	return r.Header + 11 + uint32(r.roomStatePointersLength()) + 28 + uint32(i*26)
}

// doorPointerListAddress returns the PC address of the room's door pointer
// list: the fixed header, the pointer list, the sentinel, the standard
// state, and every extra state (§4.G step 6, §8 header-layout example).
func (r *Room) doorPointerListAddress() uint32 {
	return r.Header + 11 + uint32(r.roomStatePointersLength()) + 28 + uint32(len(r.ExtraStates)*26)
}

// HeaderData builds the contiguous header block for r, starting at
// r.Header: fixed header, extra-state pointers, standard-state sentinel
// and body, extra-state bodies, then the door pointer list (§4.G).
func (r *Room) HeaderData() ([]byte, error) {
	if r.WidthScreens < 1 || r.HeightScreens < 1 {
		return nil, &RangeError{Field: "width_screens/height_screens", Value: 0, Min: 1, Max: maxScreens}
	}
	if r.WidthScreens*r.HeightScreens > maxScreens {
		return nil, &RangeError{Field: "width_screens * height_screens", Value: r.WidthScreens * r.HeightScreens, Min: 1, Max: maxScreens}
	}

	out := make([]byte, 0, 128)
	out = append(out, r.RoomIndex, byte(r.MapArea), r.MinimapXCoord, r.MinimapYCoord)
	out = append(out, byte(r.WidthScreens), byte(r.HeightScreens), r.UpScroller, r.DownScroller, r.SpecialGraphicsBitflag)
	out = appendUint16(out, uint16(r.doorPointerListAddress()%0x10000))

	for i, p := range r.ExtraStates {
		tag := p.TagBytes()
		out = append(out, tag[0], tag[1])
		stateAddr := uint16(r.roomStateAddress(i) % 0x10000)
		out = append(out, p.EncodeTail(stateAddr)...)
	}

	out = append(out, standardStateSentinel[0], standardStateSentinel[1])

	stdBytes, err := r.StandardState.EncodeBytes()
	if err != nil {
		return nil, err
	}
	out = append(out, stdBytes...)

	for _, p := range r.ExtraStates {
		stateBytes, err := p.State().EncodeBytes()
		if err != nil {
			return nil, err
		}
		out = append(out, stateBytes...)
	}

	for _, d := range r.Doors {
		out = appendUint16(out, uint16(d.DataAddress()%0x10000))
	}

	return out, nil
}

// CompressedLevelData compresses the standard state's tile grid with a
// CompressionMapper sized to r, enforcing r.LevelDataLength when it is
// nonzero (§4.F, §9).
func (r *Room) CompressedLevelData() ([]byte, error) {
	uncompressed, err := r.StandardState.Tiles.UncompressedData()
	if err != nil {
		return nil, err
	}

	mapper := &CompressionMapper{WidthScreens: r.WidthScreens, HeightScreens: r.HeightScreens}
	return mapper.Compress(uncompressed, r.LevelDataLength)
}

var allowedStatePointerTags = [][2]byte{{0x12, 0xe6}, {0x69, 0xe6}, {0x29, 0xe6}}

// ImportRoom reads a room's full header block, its room states, and its
// doors out of rom starting at headerAddr, the symmetric inverse of
// HeaderData (§4.H). levelDataGrids caches TileGrid instances by
// level-data address so that states sharing a level_data_address share the
// same grid by identity, not merely by equal content (§3, §9).
func ImportRoom(rom []byte, headerAddr uint32, levelDataGrids map[uint32]*TileGrid) (*Room, error) {
	if int(headerAddr)+11 > len(rom) {
		return nil, &AddressError{Value: headerAddr, Msg: "room header runs past the end of the image"}
	}

	widthScreens := int(rom[headerAddr+4])
	heightScreens := int(rom[headerAddr+5])

	r := &Room{
		Header:                 headerAddr,
		RoomIndex:              rom[headerAddr],
		MapArea:                MapArea(rom[headerAddr+1]),
		MinimapXCoord:          rom[headerAddr+2],
		MinimapYCoord:          rom[headerAddr+3],
		WidthScreens:           widthScreens,
		HeightScreens:          heightScreens,
		UpScroller:             rom[headerAddr+6],
		DownScroller:           rom[headerAddr+7],
		SpecialGraphicsBitflag: rom[headerAddr+8],
		WriteLevelData:         true,
	}

	if levelDataGrids == nil {
		levelDataGrids = make(map[uint32]*TileGrid)
	}

	offset := headerAddr + 11
	for {
		if int(offset)+2 > len(rom) {
			return nil, &HeaderError{Address: uint32(offset), Got: nil}
		}
		tag := [2]byte{rom[offset], rom[offset+1]}
		if !matchesAnyTag(tag, allowedStatePointerTags) {
			break
		}

		switch tag {
		case [2]byte{0x12, 0xe6}:
			eventValue := rom[offset+2]
			stateAddr := uint32(binary.LittleEndian.Uint16(rom[offset+3:offset+5])) + 0x70000
			state, err := decodeSharedRoomState(rom, stateAddr, widthScreens, heightScreens, levelDataGrids)
			if err != nil {
				return nil, err
			}
			r.ExtraStates = append(r.ExtraStates, &EventStatePointer{EventValue: eventValue, RoomState: state})
			offset += 5
		case [2]byte{0x69, 0xe6}:
			stateAddr := uint32(binary.LittleEndian.Uint16(rom[offset+2:offset+4])) + 0x70000
			state, err := decodeSharedRoomState(rom, stateAddr, widthScreens, heightScreens, levelDataGrids)
			if err != nil {
				return nil, err
			}
			r.ExtraStates = append(r.ExtraStates, &LandingStatePointer{RoomState: state})
			offset += 4
		case [2]byte{0x29, 0xe6}:
			eventValue := rom[offset+2]
			stateAddr := uint32(binary.LittleEndian.Uint16(rom[offset+3:offset+5])) + 0x70000
			state, err := decodeSharedRoomState(rom, stateAddr, widthScreens, heightScreens, levelDataGrids)
			if err != nil {
				return nil, err
			}
			r.ExtraStates = append(r.ExtraStates, &FlywayStatePointer{EventValue: eventValue, RoomState: state})
			offset += 5
		}
	}

	if rom[offset] != standardStateSentinel[0] || rom[offset+1] != standardStateSentinel[1] {
		return nil, &HeaderError{Address: offset, Got: rom[offset : offset+2]}
	}

	standardAddr := offset + 2
	standardState, err := decodeSharedRoomState(rom, uint32(standardAddr), widthScreens, heightScreens, levelDataGrids)
	if err != nil {
		return nil, err
	}
	r.StandardState = standardState

	doorListAddr := uint32(binary.LittleEndian.Uint16(rom[headerAddr+9:headerAddr+11])) + 0x70000
	doorAddrs, err := doorPointerListAddresses(rom, doorListAddr)
	if err != nil {
		return nil, err
	}
	for _, addr := range doorAddrs {
		door, err := DecodeDoor(rom, addr)
		if err != nil {
			// Best-effort: a single malformed door does not abort the
			// room import (§9 supplemented feature, grounded on the
			// importer's per-door try/except).
			continue
		}
		r.Doors = append(r.Doors, door)
	}

	return r, nil
}

func matchesAnyTag(tag [2]byte, tags [][2]byte) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func decodeSharedRoomState(rom []byte, addr uint32, widthScreens, heightScreens int, grids map[uint32]*TileGrid) (*RoomState, error) {
	state, err := DecodeRoomState(rom, addr)
	if err != nil {
		return nil, err
	}

	if grid, ok := grids[state.LevelDataAddress]; ok {
		state.Tiles = grid
		return state, nil
	}

	grid := NewTileGrid(widthScreens*16, heightScreens*16)
	grid.Fill(nil)
	grids[state.LevelDataAddress] = grid
	state.Tiles = grid
	return state, nil
}
