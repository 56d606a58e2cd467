package tekton

import "encoding/binary"

// DoorBitFlag tags whether a door leads within the same map area or across
// one, and whether it seats an elevator (§6). 0xD0/0xE0/0xF0 are observed in
// ROM data but otherwise unexplained; they round-trip verbatim (§9).
type DoorBitFlag byte

const (
	DoorSameArea         DoorBitFlag = 0x00
	DoorAreaChange       DoorBitFlag = 0x40
	DoorElevatorSameArea DoorBitFlag = 0x80
	DoorElevatorAreaChange DoorBitFlag = 0xc0
	DoorUnknownD0        DoorBitFlag = 0xd0
	DoorUnknownE0        DoorBitFlag = 0xe0
	DoorUnknownF0        DoorBitFlag = 0xf0
)

var validDoorBitFlags = map[DoorBitFlag]bool{
	DoorSameArea: true, DoorAreaChange: true, DoorElevatorSameArea: true, DoorElevatorAreaChange: true,
	DoorUnknownD0: true, DoorUnknownE0: true, DoorUnknownF0: true,
}

// NewDoorBitFlag validates v against the known (including observed-but-
// unexplained) bitflag values.
func NewDoorBitFlag(v byte) (DoorBitFlag, error) {
	f := DoorBitFlag(v)
	if !validDoorBitFlags[f] {
		return 0, &RangeError{Field: "door bit flag", Value: int(v), Min: 0, Max: 0xff}
	}
	return f, nil
}

// DoorEjectDirection is the direction Samus exits a door into the target
// room, and whether the door cap closes behind her (§6).
type DoorEjectDirection byte

const (
	EjectRightNoClose DoorEjectDirection = 0x00
	EjectLeftNoClose  DoorEjectDirection = 0x01
	EjectDownNoClose  DoorEjectDirection = 0x02
	EjectUpNoClose    DoorEjectDirection = 0x03
	EjectRight        DoorEjectDirection = 0x04
	EjectLeft         DoorEjectDirection = 0x05
	EjectDown         DoorEjectDirection = 0x06
	EjectUp           DoorEjectDirection = 0x07
)

// NewDoorEjectDirection validates v against the eight known directions.
func NewDoorEjectDirection(v byte) (DoorEjectDirection, error) {
	if v > byte(EjectUp) {
		return 0, &RangeError{Field: "door eject direction", Value: int(v), Min: 0, Max: int(EjectUp)}
	}
	return DoorEjectDirection(v), nil
}

// Door is the closed variant over the two shapes a door data record can
// take: SimpleDoor, the normal case, and ElevatorLaunchpad, identified on
// import by a leading 00 00 target-room field (§3, §9).
type Door interface {
	// DataAddress is the PC address in the source image where this door's
	// 12-byte record lives.
	DataAddress() uint32
	// EncodeBytes returns the 12-byte on-ROM record for this door.
	EncodeBytes() []byte
}

// SimpleDoor is the common door shape: a target room, transition bitflag,
// eject direction, door-cap and spawn-screen coordinates, spawn distance,
// and an optional ASM hook (§3, §8 concrete door-record example).
type SimpleDoor struct {
	DataAddr         uint32
	TargetRoomID     uint16
	BitFlag          DoorBitFlag
	EjectDirection   DoorEjectDirection
	TargetDoorCapCol byte
	TargetDoorCapRow byte
	TargetScreenH    byte
	TargetScreenV    byte
	DistanceToSpawn  uint16
	ASMPointer       uint16
}

func (d *SimpleDoor) DataAddress() uint32 { return d.DataAddr }

func (d *SimpleDoor) EncodeBytes() []byte {
	out := make([]byte, 12)
	binary.LittleEndian.PutUint16(out[0:2], d.TargetRoomID)
	out[2] = byte(d.BitFlag)
	out[3] = byte(d.EjectDirection)
	out[4] = d.TargetDoorCapCol
	out[5] = d.TargetDoorCapRow
	out[6] = d.TargetScreenH
	out[7] = d.TargetScreenV
	binary.LittleEndian.PutUint16(out[8:10], d.DistanceToSpawn)
	binary.LittleEndian.PutUint16(out[10:12], d.ASMPointer)
	return out
}

// ElevatorLaunchpad is a door slot occupied by an elevator landing platform
// rather than a real door; its meaning is not understood, so its 12 bytes
// are preserved verbatim on import and re-emit (§3, §8).
type ElevatorLaunchpad struct {
	DataAddr uint32
	RawData  [12]byte
}

func (d *ElevatorLaunchpad) DataAddress() uint32 { return d.DataAddr }

func (d *ElevatorLaunchpad) EncodeBytes() []byte {
	out := make([]byte, 12)
	copy(out, d.RawData[:])
	return out
}

// DecodeDoor parses the 12-byte door record at dataAddr within rom. A
// leading 00 00 target-room field identifies an elevator launchpad rather
// than a real door (§9).
func DecodeDoor(rom []byte, dataAddr uint32) (Door, error) {
	if int(dataAddr)+12 > len(rom) {
		return nil, &AddressError{Value: dataAddr, Msg: "door record runs past the end of the image"}
	}
	data := rom[dataAddr : dataAddr+12]

	if data[0] == 0x00 && data[1] == 0x00 {
		var raw [12]byte
		copy(raw[:], data)
		return &ElevatorLaunchpad{DataAddr: dataAddr, RawData: raw}, nil
	}

	bitFlag, err := NewDoorBitFlag(data[2])
	if err != nil {
		return nil, err
	}
	ejectDir, err := NewDoorEjectDirection(data[3])
	if err != nil {
		return nil, err
	}

	return &SimpleDoor{
		DataAddr:         dataAddr,
		TargetRoomID:     binary.LittleEndian.Uint16(data[0:2]),
		BitFlag:          bitFlag,
		EjectDirection:   ejectDir,
		TargetDoorCapCol: data[4],
		TargetDoorCapRow: data[5],
		TargetScreenH:    data[6],
		TargetScreenV:    data[7],
		DistanceToSpawn:  binary.LittleEndian.Uint16(data[8:10]),
		ASMPointer:       binary.LittleEndian.Uint16(data[10:12]),
	}, nil
}

// TargetRoomHeader resolves a SimpleDoor's target-room header to a PC
// address, assuming — as the game does — that the farside room's header
// lives in LoROM bank $8F (§4.H supplemented feature, grounded on the
// importer's _get_door_target_room_id).
func (d *SimpleDoor) TargetRoomHeader() (uint32, error) {
	addr := []byte{byte(d.TargetRoomID), byte(d.TargetRoomID >> 8), 0x8f}
	return LoROMToPC(addr, LittleEndian)
}

// doorPointerListAddresses reads the 16-byte (8-slot) door pointer list
// starting at listAddr — a PC address within bank $8E — stopping at the
// first 00 00 terminator slot, and resolves each little-endian LoROM low
// word against bank $83 (Super Metroid's assumed door-data bank) into a PC
// address (§4.H, grounded on _get_door_data_addresses).
func doorPointerListAddresses(rom []byte, listAddr uint32) ([]uint32, error) {
	var out []uint32
	for offset := 0; offset < 16; offset += 2 {
		start := int(listAddr) + offset
		if start+2 > len(rom) {
			break
		}
		lo := rom[start : start+2]
		if lo[0] == 0x00 && lo[1] == 0x00 {
			break
		}
		addr := []byte{lo[0], lo[1], 0x83}
		pc, err := LoROMToPC(addr, LittleEndian)
		if err != nil {
			break
		}
		out = append(out, pc)
	}
	return out, nil
}
