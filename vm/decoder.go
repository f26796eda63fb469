package vm

// Family identifies which executor a decoded word is routed to
// (spec.md §4.4).
type Family int

const (
	FamUnknown Family = iota
	FamMOVZ
	FamAddImm
	FamAddReg
	FamSubReg
	FamSubImm
	FamSubSReg
	FamMul
	FamAndReg
	FamOrrReg
	FamOrrImm
	FamEorReg
	FamShiftReg
	FamShiftImm
	FamDiv
	FamBCond
	FamB
	FamBL
	FamBR
	FamSystem
	FamFP
	FamSIMDLoadStore
	FamSIMDData
	FamSIMDExtract
)

// Instruction is a decoded word awaiting execution.
type Instruction struct {
	Address uint64
	Word    uint32
	Family  Family
}

func topByte(word uint32) byte {
	return byte(word >> 24)
}

func bits(word uint32, hi, lo uint) uint32 {
	width := hi - lo + 1
	mask := uint32(1)<<width - 1
	return (word >> lo) & mask
}

// Decode classifies a 32-bit word into a Family by matching fixed bit
// masks against fixed patterns, per the cascade in spec.md §4.4.
func Decode(word uint32) (*Instruction, error) {
	inst := &Instruction{Word: word}
	top := topByte(word)

	switch top {
	case 0xD2, 0xD3:
		inst.Family = FamMOVZ
	case 0x91:
		inst.Family = FamAddImm
	case 0x8B:
		inst.Family = FamAddReg
	case 0xCB:
		inst.Family = FamSubReg
	case 0xD1:
		inst.Family = FamSubImm
	case 0xEB:
		inst.Family = FamSubSReg
	case 0x9B:
		if bits(word, 31, 21) == 0x4D8 && bits(word, 14, 10) == ZeroRegister {
			inst.Family = FamMul
		} else {
			return nil, errUnsupportedFormat(word, top, "unrecognized 0x9B encoding")
		}
	case 0x8A:
		inst.Family = FamAndReg
	case 0xAA:
		inst.Family = FamOrrReg
	case 0x92, 0x93:
		inst.Family = FamOrrImm
	case 0xCA:
		inst.Family = FamEorReg
	case 0xAB:
		inst.Family = FamShiftReg
	case 0xD4:
		inst.Family = FamShiftImm
	case 0x9A:
		inst.Family = FamDiv
	case 0x54:
		inst.Family = FamBCond
	case 0x14:
		inst.Family = FamB
	case 0x17:
		inst.Family = FamBL
	case 0xD6:
		if bits(word, 31, 22) == 0x358 {
			inst.Family = FamBR
		} else {
			return nil, errUnsupportedFormat(word, top, "unrecognized 0xD6 encoding")
		}
	case 0xD5:
		if word == NOPWord {
			inst.Family = FamSystem
		} else {
			return nil, errUnsupportedFormat(word, top, "only NOP is supported in the system family")
		}
	case 0x1E, 0x1F, 0x9E:
		inst.Family = FamFP
	case 0xBD, 0xFD:
		// Float LDR/STR (spec.md §4.8); routed to the FP family since
		// fpLoadStore is the only executor that handles them.
		inst.Family = FamFP
	case 0x4C:
		inst.Family = FamSIMDLoadStore
	case 0x4E, 0x6E:
		inst.Family = FamSIMDData
	case 0x0D:
		inst.Family = FamSIMDExtract
	default:
		return nil, errUnsupportedInstruction(top)
	}

	return inst, nil
}
