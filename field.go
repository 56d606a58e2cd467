package tekton

// Command codes for the byte-oriented field envelope (§4.E, §6).
const (
	CmdDirectCopy byte = 0b000
	CmdByteFill   byte = 0b001
	CmdWordFill   byte = 0b010

	cmdExtendedMarker byte = 0b111
)

const maxFieldBytes = 1024

// Field is a single variable-length unit of the compressed stream: it
// knows its own command-byte layout and can produce the bytes the game's
// decompressor expects (§4.E).
type Field interface {
	// NumBytes is the number of decoded (uncompressed) bytes this field
	// represents.
	NumBytes() int
	// EncodeBytes returns this field's encoded byte string.
	EncodeBytes() []byte
}

// encodeEnvelope returns the one- or two-byte command envelope for cmd and
// numBytes: a short form (3-bit command, 5-bit length-1) when numBytes is
// 32 or fewer, otherwise a long form (extended marker, 3-bit command,
// 10-bit length-1) (§4.E, §8 property 7).
func encodeEnvelope(cmd byte, numBytes int) ([]byte, error) {
	if numBytes < 1 || numBytes > maxFieldBytes {
		return nil, &RangeError{Field: "num_bytes", Value: numBytes, Min: 1, Max: maxFieldBytes}
	}
	if numBytes <= 32 {
		b := (cmd << 5) | byte(numBytes-1)
		return []byte{b}, nil
	}
	v := uint16(cmdExtendedMarker)<<13 | uint16(cmd)<<10 | uint16(numBytes-1)
	return []byte{byte(v >> 8), byte(v)}, nil
}

// decodeEnvelope reads a command envelope from the front of data, returning
// the command code, decoded byte count, and how many envelope bytes were
// consumed.
func decodeEnvelope(data []byte) (cmd byte, numBytes int, consumed int, err error) {
	if len(data) < 1 {
		return 0, 0, 0, &FieldError{Msg: "truncated field envelope"}
	}
	top3 := data[0] >> 5
	if top3 == cmdExtendedMarker {
		if len(data) < 2 {
			return 0, 0, 0, &FieldError{Msg: "truncated extended field envelope"}
		}
		v := uint16(data[0])<<8 | uint16(data[1])
		cmd = byte((v >> 10) & 0b111)
		numBytes = int(v&0x3ff) + 1
		return cmd, numBytes, 2, nil
	}
	cmd = top3
	numBytes = int(data[0]&0x1f) + 1
	return cmd, numBytes, 1, nil
}

// DirectCopyField stores a literal run of bytes that did not compress under
// any other scheme (§4.E).
type DirectCopyField struct {
	Bytes []byte
}

func (f *DirectCopyField) NumBytes() int { return len(f.Bytes) }

func (f *DirectCopyField) EncodeBytes() []byte {
	env, err := encodeEnvelope(CmdDirectCopy, len(f.Bytes))
	if err != nil {
		panic(err) // constructed only via the mapper, which always has a valid length
	}
	return append(env, f.Bytes...)
}

// ByteFillField represents a single byte repeated NumBytes times (§4.E).
type ByteFillField struct {
	Byte  byte
	Count int
}

func (f *ByteFillField) NumBytes() int { return f.Count }

func (f *ByteFillField) EncodeBytes() []byte {
	env, err := encodeEnvelope(CmdByteFill, f.Count)
	if err != nil {
		panic(err)
	}
	return append(env, f.Byte)
}

// WordFillField represents a two-byte pattern repeated across Count bytes;
// if Count is odd the final byte is the pattern's first byte (§4.E).
// WordFill requires its two bytes to differ — a pattern of two identical
// bytes is strictly smaller as a ByteFillField.
type WordFillField struct {
	Word  [2]byte
	Count int
}

func (f *WordFillField) NumBytes() int { return f.Count }

func (f *WordFillField) EncodeBytes() []byte {
	env, err := encodeEnvelope(CmdWordFill, f.Count)
	if err != nil {
		panic(err)
	}
	return append(env, f.Word[0], f.Word[1])
}

// L1RepeaterField is the tile-oriented shorthand for a single tile's L1
// attribute word repeated NumReps times: fixed header 0xE8 0x01 with
// (NumReps-1)<<1 added in, followed by the two-byte little-endian L1
// attributes value (§4.E, §6). The compression mapper never emits this and
// Decompress does not recognize it; it is a standalone encodable value (§9).
type L1RepeaterField struct {
	NumReps    int
	Attributes [2]byte // little-endian L1 attributes, as produced by Tile.L1Attributes
}

func (f *L1RepeaterField) NumBytes() int { return f.NumReps * 2 }

func (f *L1RepeaterField) EncodeBytes() []byte {
	header := uint16(0xe801) + uint16((f.NumReps-1)<<1)
	return []byte{byte(header >> 8), byte(header), f.Attributes[0], f.Attributes[1]}
}

// BTSRepeaterField is the tile-oriented shorthand for a single BTS number
// repeated NumReps times: header 0xE4 0x00 plus (NumReps-1), followed by
// the BTS byte (§4.E, §6).
type BTSRepeaterField struct {
	NumReps int
	BTSNum  byte
}

func (f *BTSRepeaterField) NumBytes() int { return f.NumReps }

func (f *BTSRepeaterField) EncodeBytes() []byte {
	header := uint16(0xe400) + uint16(f.NumReps-1)
	return []byte{byte(header >> 8), byte(header), f.BTSNum}
}

// BTSSingleField represents exactly one BTS number byte with the literal
// one-byte header 0x00 (§4.E, §6).
type BTSSingleField struct {
	BTSNum byte
}

func (f *BTSSingleField) NumBytes() int { return 1 }

func (f *BTSSingleField) EncodeBytes() []byte {
	return []byte{0x00, f.BTSNum}
}
