package tekton

import "encoding/binary"

// TileNoMax is the largest valid tileset graphic index (10 bits).
const TileNoMax = 0x3ff

// Tile is a single cell of a room's level data: a tileset graphic index,
// its mirror flags, and its BTS (Behind-the-Scenes) collision metadata
// (§3, §4.C). Tiles are fungible value types — compared and copied by
// value, never by identity.
type Tile struct {
	tileno  uint16
	BtsType uint8
	BtsNum  uint8
	HMirror bool
	VMirror bool
}

// NewTile returns the default tile: tileno 0, bts type/num 0, no mirroring.
func NewTile() Tile {
	return Tile{}
}

// TileNo returns the tileset graphic index (0..=0x3ff).
func (t Tile) TileNo() uint16 { return t.tileno }

// SetTileNo sets the tileset graphic index, rejecting values above 0x3ff
// (§3: "tileno (10-bit, 0..=0x3FF)").
func (t *Tile) SetTileNo(v uint16) error {
	if v > TileNoMax {
		return &RangeError{Field: "tileno", Value: int(v), Min: 0, Max: TileNoMax}
	}
	t.tileno = v
	return nil
}

// Equal reports whether two tiles have identical attributes (§3: "Equality
// is structural").
func (t Tile) Equal(other Tile) bool {
	return t.tileno == other.tileno &&
		t.BtsType == other.BtsType &&
		t.BtsNum == other.BtsNum &&
		t.HMirror == other.HMirror &&
		t.VMirror == other.VMirror
}

// Copy returns an independent copy of t. Tile is already a value type so
// this is only useful for documenting intent at call sites that fill a
// grid with repeated copies of the same tile (§3: "copies are independent").
func (t Tile) Copy() Tile { return t }

// L1Attributes returns the two-byte little-endian layer-1 attribute word:
// bits 0-9 tileno, bit 10 h_mirror, bit 11 v_mirror, bits 12-15 bts_type
// (§4.C).
func (t Tile) L1Attributes() [2]byte {
	v := t.tileno & 0x3ff
	if t.HMirror {
		v |= 1 << 10
	}
	if t.VMirror {
		v |= 1 << 11
	}
	v |= uint16(t.BtsType&0xf) << 12

	var out [2]byte
	binary.LittleEndian.PutUint16(out[:], v)
	return out
}

// BTSNumberByte returns the one-byte BTS number (§4.C).
func (t Tile) BTSNumberByte() byte { return t.BtsNum }

// tileFromAttributes reconstructs a Tile's graphic/mirror/bts-type fields
// from a decoded L1 attribute word; the caller fills in BtsNum separately
// since the BTS-number stream is encoded after all L1 words (§4.D).
func tileFromAttributes(word uint16, btsNum byte) Tile {
	return Tile{
		tileno:  word & 0x3ff,
		HMirror: word&(1<<10) != 0,
		VMirror: word&(1<<11) != 0,
		BtsType: uint8((word >> 12) & 0xf),
		BtsNum:  btsNum,
	}
}
