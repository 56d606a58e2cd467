package tekton

import "encoding/binary"

// ByteOrder selects how a 3-byte LoROM address is packed to or parsed from
// a byte string. The ROM mixes conventions within the same document: door
// pointer lists are little-endian, some callers pre-assemble a big-endian
// integer (§4.A, §9).
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

const (
	loromBankMin = 0x80
	loromBankMax = 0xff
	loromBankWindow = 0x8000
)

// LoROMToPC converts a 3-byte LoROM address to a PC (unheadered ROM image)
// offset. bytes must be exactly 3 bytes long and order selects whether the
// bank byte comes first (BigEndian) or last (LittleEndian).
//
// The game tolerates out-of-window low words by masking off bit 15 before
// computing the offset; this function mirrors that silently, as the game
// itself does (§4.A, §7: address translation's high-bit masking is the one
// locally-recovered condition, by design).
func LoROMToPC(addr []byte, order ByteOrder) (uint32, error) {
	if len(addr) != 3 {
		return 0, &AddressError{Msg: "LoROM address must be exactly 3 bytes"}
	}

	bank, word := splitLoROM(addr, order)

	if bank < loromBankMin || bank > loromBankMax {
		return 0, &AddressError{Value: uint32(bank)<<16 | uint32(word), Msg: "bank must be between 0x80 and 0xff"}
	}

	// The game masks off bit 15 of the low word before computing the
	// in-bank offset and re-derives the high half purely from the bank's
	// parity — this is what makes an out-of-window offset (bit 15 unset
	// on an odd bank, or set on an even one) "tolerated" rather than
	// rejected (§4.A, §9).
	offset := uint32(word & 0x7fff)
	if bank%2 == 1 {
		offset += loromBankWindow
	}

	pc := (uint32(bank-loromBankMin) / 2) * 0x10000
	pc += offset

	return pc, nil
}

// PCToLoROM converts a PC offset back into a 3-byte LoROM address, encoded
// per order. pc must address a valid LoROM bank 0x80..=0xff.
func PCToLoROM(pc uint32, order ByteOrder) ([]byte, error) {
	if pc > 0x3fffff {
		return nil, &AddressError{Value: pc, Msg: "PC address is out of LoROM range"}
	}

	bankHalf := pc / 0x10000
	offset := pc % 0x10000

	bank := byte(bankHalf*2) + loromBankMin
	low15 := offset
	if offset >= loromBankWindow {
		bank++
		low15 -= loromBankWindow
	}
	word := uint16(low15) | 0x8000

	return joinLoROM(bank, word, order), nil
}

func splitLoROM(addr []byte, order ByteOrder) (byte, uint16) {
	if order == BigEndian {
		return addr[0], binary.BigEndian.Uint16(addr[1:3])
	}
	return addr[2], binary.LittleEndian.Uint16(addr[0:2])
}

func joinLoROM(bank byte, word uint16, order ByteOrder) []byte {
	out := make([]byte, 3)
	if order == BigEndian {
		out[0] = bank
		binary.BigEndian.PutUint16(out[1:3], word)
	} else {
		binary.LittleEndian.PutUint16(out[0:2], word)
		out[2] = bank
	}
	return out
}
