package tekton

import "encoding/binary"

// TileSet selects which graphics tileset a room state's tiles are drawn
// from (§6).
type TileSet byte

const (
	TileSetCrateriaCave          TileSet = 0x00
	TileSetCrateriaCaveRed       TileSet = 0x01
	TileSetCrateriaTech          TileSet = 0x02
	TileSetCrateriaTechDark      TileSet = 0x03
	TileSetWreckedShip           TileSet = 0x04
	TileSetWreckedShipDark       TileSet = 0x05
	TileSetBrinstarBlueGreenPink TileSet = 0x06
	TileSetBrinstarRedKraid      TileSet = 0x07
	TileSetStatuesHallway        TileSet = 0x08
	TileSetNorfairRedRidley      TileSet = 0x09
	TileSetNorfairBrownCave      TileSet = 0x0a
	TileSetMaridiaYellow         TileSet = 0x0b
	TileSetMaridiaPurpleSandtrap TileSet = 0x0c
	TileSetTourian               TileSet = 0x0d
	TileSetMotherBrainRoom       TileSet = 0x0e
	TileSetCeres                 TileSet = 0x0f
	TileSetCeresGreen            TileSet = 0x10
	TileSetCeresEntrance         TileSet = 0x11
	TileSetCeresEntranceGreen    TileSet = 0x12
	TileSetCeresRidleyRoom       TileSet = 0x13
	TileSetCeresRidleyRoomGreen  TileSet = 0x14
	TileSetSaveRoomPink          TileSet = 0x15
	TileSetSaveRoomPinkDark      TileSet = 0x16
	TileSetSaveRoomBlue          TileSet = 0x17
	TileSetSaveRoomGreen         TileSet = 0x18
	TileSetSaveRoomYellow        TileSet = 0x19
	TileSetKraidRoom             TileSet = 0x1a
	TileSetCrocomireRoom         TileSet = 0x1b
	TileSetDraygonRoom           TileSet = 0x1c
)

// SongSet selects the group of music tracks loaded for a room state (§6).
type SongSet byte

const (
	SongSetIntro              SongSet = 0x00
	SongSetTitleScreen        SongSet = 0x03
	SongSetEmptyCrateria      SongSet = 0x06
	SongSetSpacePirates       SongSet = 0x09
	SongSetReturnToCrateria   SongSet = 0x0c
	SongSetUpperBrinstar      SongSet = 0x0f
	SongSetLowerBrinstar      SongSet = 0x12
	SongSetUpperNorfair       SongSet = 0x15
	SongSetLowerNorfair       SongSet = 0x18
	SongSetMaridia            SongSet = 0x1b
	SongSetTourian            SongSet = 0x1e
	SongSetMotherBrain        SongSet = 0x21
	SongSetBossFight1         SongSet = 0x24
	SongSetBossFight2         SongSet = 0x27
	SongSetMinibossFight      SongSet = 0x2a
	SongSetCeresStation       SongSet = 0x2d
	SongSetWreckedShip        SongSet = 0x30
	SongSetZebesExploding     SongSet = 0x33
	SongSetSamusStory         SongSet = 0x36
	SongSetDeathSFX           SongSet = 0x39
	SongSetCreditsRoll        SongSet = 0x3c
	SongSetLastMetroidVO      SongSet = 0x3f
	SongSetTheGalaxyVO        SongSet = 0x42
	SongSetSuperMetroid       SongSet = 0x45
	SongSetSamusRevenge       SongSet = 0x48
)

// SongPlayIndex selects which track within a SongSet plays, or requests a
// transition (§6).
type SongPlayIndex byte

const (
	SongPlayNoChange   SongPlayIndex = 0x00
	SongPlaySamusLoad  SongPlayIndex = 0x01
	SongPlayPickupItem SongPlayIndex = 0x02
	SongPlayElevator   SongPlayIndex = 0x03
	SongPlayStatueHall SongPlayIndex = 0x04
	SongPlaySong1      SongPlayIndex = 0x05
	SongPlaySong2      SongPlayIndex = 0x06
	SongPlaySong3      SongPlayIndex = 0x07
	SongPlayStopMusic  SongPlayIndex = 0x80
)

// RoomState is the 26-byte record describing one presentation of a room:
// its tileset and music, FX/enemy/background/ASM pointers, scroll speed,
// and the TileGrid it owns (§3, §4.G).
type RoomState struct {
	LevelDataAddress   uint32
	TileSet            TileSet
	SongSet            SongSet
	SongPlayIndex      SongPlayIndex
	FXPointer          uint16
	EnemySetPointer    uint16
	EnemyGFXPointer    uint16
	BackgroundXScroll  byte
	BackgroundYScroll  byte
	RoomScrollsPointer uint16
	// UnusedPointer is preserved verbatim on round-trip; the source marks
	// it "supposedly unused" and performs no validation on it (§9).
	UnusedPointer  uint16
	MainASMPointer uint16
	PLMSetPointer  uint16
	BackgroundPointer uint16
	SetupASMPointer   uint16
	Tiles             *TileGrid
}

// EncodeBytes returns the 26-byte on-ROM record for s. The level-data
// address is written as a little-endian LoROM triple (§3, §4.G).
func (s *RoomState) EncodeBytes() ([]byte, error) {
	lorom, err := PCToLoROM(s.LevelDataAddress, LittleEndian)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 26)
	out = append(out, lorom...)
	out = append(out, byte(s.TileSet), byte(s.SongSet), byte(s.SongPlayIndex))
	out = appendUint16(out, s.FXPointer)
	out = appendUint16(out, s.EnemySetPointer)
	out = appendUint16(out, s.EnemyGFXPointer)
	out = append(out, s.BackgroundXScroll, s.BackgroundYScroll)
	out = appendUint16(out, s.RoomScrollsPointer)
	out = appendUint16(out, s.UnusedPointer)
	out = appendUint16(out, s.MainASMPointer)
	out = appendUint16(out, s.PLMSetPointer)
	out = appendUint16(out, s.BackgroundPointer)
	out = appendUint16(out, s.SetupASMPointer)
	return out, nil
}

// DecodeRoomState reads a 26-byte RoomState record at address addr within
// rom (§4.G inverse).
func DecodeRoomState(rom []byte, addr uint32) (*RoomState, error) {
	if int(addr)+26 > len(rom) {
		return nil, &AddressError{Value: addr, Msg: "room state record runs past the end of the image"}
	}
	data := rom[addr : addr+26]

	levelDataAddr, err := LoROMToPC(data[0:3], LittleEndian)
	if err != nil {
		return nil, err
	}

	return &RoomState{
		LevelDataAddress:   levelDataAddr,
		TileSet:            TileSet(data[3]),
		SongSet:            SongSet(data[4]),
		SongPlayIndex:      SongPlayIndex(data[5]),
		FXPointer:          binary.LittleEndian.Uint16(data[6:8]),
		EnemySetPointer:    binary.LittleEndian.Uint16(data[8:10]),
		EnemyGFXPointer:    binary.LittleEndian.Uint16(data[10:12]),
		BackgroundXScroll:  data[12],
		BackgroundYScroll:  data[13],
		RoomScrollsPointer: binary.LittleEndian.Uint16(data[14:16]),
		UnusedPointer:      binary.LittleEndian.Uint16(data[16:18]),
		MainASMPointer:     binary.LittleEndian.Uint16(data[18:20]),
		PLMSetPointer:      binary.LittleEndian.Uint16(data[20:22]),
		BackgroundPointer:  binary.LittleEndian.Uint16(data[22:24]),
		SetupASMPointer:    binary.LittleEndian.Uint16(data[24:26]),
	}, nil
}

func appendUint16(out []byte, v uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return append(out, b[0], b[1])
}

// RoomStatePointer is the closed variant over the three ways a room
// header can point at a non-standard RoomState: Event, Landing, and
// Flyway (§3). Each owns exactly one RoomState.
type RoomStatePointer interface {
	// TagBytes returns this variant's fixed 2-byte discriminator.
	TagBytes() [2]byte
	// EncodeTail returns the bytes following the tag: the optional
	// event-value byte, then the 2-byte little-endian state offset within
	// bank $8E.
	EncodeTail(stateAddrInBank8E uint16) []byte
	// ByteLength is this pointer's total encoded size, tag included.
	ByteLength() int
	State() *RoomState
}

// EventStatePointer triggers when the room's event flag equals EventValue
// (tag 12 E6, 5 bytes total — §3).
type EventStatePointer struct {
	EventValue byte
	RoomState  *RoomState
}

func (p *EventStatePointer) TagBytes() [2]byte { return [2]byte{0x12, 0xe6} }
func (p *EventStatePointer) ByteLength() int   { return 5 }
func (p *EventStatePointer) State() *RoomState { return p.RoomState }
func (p *EventStatePointer) EncodeTail(stateAddr uint16) []byte {
	out := []byte{p.EventValue, 0, 0}
	binary.LittleEndian.PutUint16(out[1:3], stateAddr)
	return out
}

// LandingStatePointer has no event value — it is unconditional but follows
// in declaration order (tag 69 E6, 4 bytes total — §3).
type LandingStatePointer struct {
	RoomState *RoomState
}

func (p *LandingStatePointer) TagBytes() [2]byte { return [2]byte{0x69, 0xe6} }
func (p *LandingStatePointer) ByteLength() int   { return 4 }
func (p *LandingStatePointer) State() *RoomState { return p.RoomState }
func (p *LandingStatePointer) EncodeTail(stateAddr uint16) []byte {
	out := make([]byte, 2)
	binary.LittleEndian.PutUint16(out, stateAddr)
	return out
}

// FlywayStatePointer triggers when the room's event flag equals EventValue,
// the same shape as EventStatePointer but a distinct tag (tag 29 E6, 5
// bytes total — §3).
type FlywayStatePointer struct {
	EventValue byte
	RoomState  *RoomState
}

func (p *FlywayStatePointer) TagBytes() [2]byte { return [2]byte{0x29, 0xe6} }
func (p *FlywayStatePointer) ByteLength() int   { return 5 }
func (p *FlywayStatePointer) State() *RoomState { return p.RoomState }
func (p *FlywayStatePointer) EncodeTail(stateAddr uint16) []byte {
	out := []byte{p.EventValue, 0, 0}
	binary.LittleEndian.PutUint16(out[1:3], stateAddr)
	return out
}

// standardStateSentinel is the literal 2-byte marker preceding the standard
// RoomState in a room header block (§4.G step 3).
var standardStateSentinel = [2]byte{0xe6, 0xe5}
