// Package asmtest is the minimal assembler equivalent spec.md calls for:
// a set of helpers that emit raw 32-bit ARM64 words for the families
// vm.Decode understands, so _test.go files can build literal test
// programs without hand-computing bit patterns inline. It has no
// directive parser, no symbol table, and is never imported outside
// tests — grounded on the per-family encoder functions in the teacher's
// encoder package (encoder/data_processing.go, encoder/branch.go), kept
// to plain word-builder functions rather than a full text assembler.
package asmtest

// NOP is the architectural no-op / program terminator.
const NOP uint32 = 0xD503201F

func bits(value uint32, width uint) uint32 {
	mask := uint32(1)<<width - 1
	return value & mask
}

// MOVZ rd, #imm16
func MOVZ(rd int, imm16 uint32) uint32 {
	return 0xD2<<24 | bits(imm16, 16)<<5 | bits(uint32(rd), 5)
}

// ADDImm rd, rn, #imm12
func ADDImm(rd, rn int, imm12 uint32) uint32 {
	return 0x91<<24 | bits(imm12, 12)<<10 | bits(uint32(rn), 5)<<5 | bits(uint32(rd), 5)
}

// ADDReg rd, rn, rm
func ADDReg(rd, rn, rm int) uint32 {
	return 0x8B<<24 | bits(uint32(rm), 5)<<16 | bits(uint32(rn), 5)<<5 | bits(uint32(rd), 5)
}

// SUBReg rd, rn, rm
func SUBReg(rd, rn, rm int) uint32 {
	return 0xCB<<24 | bits(uint32(rm), 5)<<16 | bits(uint32(rn), 5)<<5 | bits(uint32(rd), 5)
}

// SUBImm rd, rn, #imm12
func SUBImm(rd, rn int, imm12 uint32) uint32 {
	return 0xD1<<24 | bits(imm12, 12)<<10 | bits(uint32(rn), 5)<<5 | bits(uint32(rd), 5)
}

// SUBSReg rd, rn, rm (flag-setting)
func SUBSReg(rd, rn, rm int) uint32 {
	return 0xEB<<24 | bits(uint32(rm), 5)<<16 | bits(uint32(rn), 5)<<5 | bits(uint32(rd), 5)
}

// MUL rd, rn, rm (MADD with Ra=XZR)
func MUL(rd, rn, rm int) uint32 {
	return 0x9B<<24 | 0x4D8<<21 | bits(uint32(rm), 5)<<16 | 31<<10 | bits(uint32(rn), 5)<<5 | bits(uint32(rd), 5)
}

// ANDReg rd, rn, rm
func ANDReg(rd, rn, rm int) uint32 {
	return 0x8A<<24 | bits(uint32(rm), 5)<<16 | bits(uint32(rn), 5)<<5 | bits(uint32(rd), 5)
}

// ORRReg rd, rn, rm
func ORRReg(rd, rn, rm int) uint32 {
	return 0xAA<<24 | bits(uint32(rm), 5)<<16 | bits(uint32(rn), 5)<<5 | bits(uint32(rd), 5)
}

// EORReg rd, rn, rm
func EORReg(rd, rn, rm int) uint32 {
	return 0xCA<<24 | bits(uint32(rm), 5)<<16 | bits(uint32(rn), 5)<<5 | bits(uint32(rd), 5)
}

// ShiftOp selects LSL(0)/LSR(1)/ASR(2) for ShiftReg.
type ShiftOp uint32

const (
	LSL ShiftOp = 0
	LSR ShiftOp = 1
	ASR ShiftOp = 2
)

// ShiftReg rd, rn, rm (shift amount taken from rm, mod 64)
func ShiftReg(rd, rn, rm int, op ShiftOp) uint32 {
	return 0xAB<<24 | bits(uint32(rm), 5)<<16 | uint32(op)<<10 | bits(uint32(rn), 5)<<5 | bits(uint32(rd), 5)
}

// ShiftImm rd, rn, #amount
func ShiftImm(rd, rn int, amount uint32, op ShiftOp) uint32 {
	return 0xD4<<24 | uint32(op)<<22 | bits(amount, 6)<<10 | bits(uint32(rn), 5)<<5 | bits(uint32(rd), 5)
}

// UDIV rd, rn, rm
func UDIV(rd, rn, rm int) uint32 {
	return 0x9A<<24 | bits(uint32(rm), 5)<<16 | bits(uint32(rn), 5)<<5 | bits(uint32(rd), 5)
}

// SDIV rd, rn, rm
func SDIV(rd, rn, rm int) uint32 {
	return 0x9A<<24 | bits(uint32(rm), 5)<<16 | 1<<10 | bits(uint32(rn), 5)<<5 | bits(uint32(rd), 5)
}

// BCond cond, imm19 (word offset, not yet multiplied by 4)
func BCond(cond int, imm19 int32) uint32 {
	return 0x54<<24 | bits(uint32(imm19), 19)<<5 | bits(uint32(cond), 4)
}

// B imm26 (word offset)
func B(imm26 int32) uint32 {
	return 0x14<<24 | bits(uint32(imm26), 26)
}

// BL imm26 (word offset)
func BL(imm26 int32) uint32 {
	return 0x17<<24 | bits(uint32(imm26), 26)
}

// BR rn
func BR(rn int) uint32 {
	return 0x358<<22 | bits(uint32(rn), 5)<<5
}

// LD1 {Vd.16B},[Xn], with optional post-increment.
func LD1(vd, rn int, postIncrement bool) uint32 {
	w := uint32(0x4C) << 24
	w |= 1 << 22 // load
	if postIncrement {
		w |= 1 << 23
	}
	w |= bits(uint32(rn), 5) << 5
	w |= bits(uint32(vd), 5)
	return w
}

// ST1 {Vd.16B},[Xn], with optional post-increment.
func ST1(vd, rn int, postIncrement bool) uint32 {
	w := uint32(0x4C) << 24
	if postIncrement {
		w |= 1 << 23
	}
	w |= bits(uint32(rn), 5) << 5
	w |= bits(uint32(vd), 5)
	return w
}

// SIMDElementSize selects the 2-bit element-size field.
type SIMDElementSize uint32

const (
	ElemByte       SIMDElementSize = 0
	ElemHalfword   SIMDElementSize = 1
	ElemWord       SIMDElementSize = 2
	ElemDoubleword SIMDElementSize = 3
)

// VADD vd, vn, vm @ elementSize. Bit 21 is left clear: it is the bit
// classifySIMDData uses to tell the arithmetic family (ADD/SUB/MUL) apart
// from the logical family (AND/ORR/EOR) below, which all set it.
func VADD(vd, vn, vm int, sz SIMDElementSize) uint32 {
	return 0x4E<<24 | uint32(sz)<<22 | bits(uint32(vm), 5)<<16 | bits(uint32(vn), 5)<<5 | bits(uint32(vd), 5)
}

// VSUB vd, vn, vm @ elementSize
func VSUB(vd, vn, vm int, sz SIMDElementSize) uint32 {
	return 0x4E<<24 | uint32(sz)<<22 | bits(uint32(vm), 5)<<16 | 0x2<<10 | bits(uint32(vn), 5)<<5 | bits(uint32(vd), 5)
}

// VMUL vd, vn, vm @ elementSize
func VMUL(vd, vn, vm int, sz SIMDElementSize) uint32 {
	return 0x4E<<24 | uint32(sz)<<22 | bits(uint32(vm), 5)<<16 | 0x1<<10 | bits(uint32(vn), 5)<<5 | bits(uint32(vd), 5)
}

// VAND vd, vn, vm (bytewise, element size ignored)
func VAND(vd, vn, vm int) uint32 {
	return 0x4E<<24 | 1<<21 | bits(uint32(vm), 5)<<16 | 0x3<<10 | bits(uint32(vn), 5)<<5 | bits(uint32(vd), 5)
}

// VORR vd, vn, vm
func VORR(vd, vn, vm int) uint32 {
	return 0x4E<<24 | 1<<21 | bits(uint32(vm), 5)<<16 | 0x1<<10 | bits(uint32(vn), 5)<<5 | bits(uint32(vd), 5)
}

// VEOR vd, vn, vm
func VEOR(vd, vn, vm int) uint32 {
	return 0x4E<<24 | 1<<21 | bits(uint32(vm), 5)<<16 | 0x2<<10 | bits(uint32(vn), 5)<<5 | bits(uint32(vd), 5)
}

// VDUP vd, vn[index] @ elementSize
func VDUP(vd, vn, index int, sz SIMDElementSize) uint32 {
	return 0x4E<<24 | uint32(sz)<<22 | bits(uint32(index), 3)<<16 | 0x03<<10 | bits(uint32(vn), 5)<<5 | bits(uint32(vd), 5)
}

// VMOV vd, vn (whole register move)
func VMOV(vd, vn int) uint32 {
	return 0x4E<<24 | bits(uint32(vn), 5)<<16 | 0x19<<10 | bits(uint32(vn), 5)<<5 | bits(uint32(vd), 5)
}

// VExtractToScalar rd, vn, index (custom 0x0D opcode)
func VExtractToScalar(rd, vn, index int) uint32 {
	return 0x0D<<24 | bits(uint32(index), 4)<<10 | bits(uint32(vn), 5)<<5 | bits(uint32(rd), 5)
}

// FMOVIntToFloat32 sd, wn (reinterpret bits)
func FMOVIntToFloat32(sd, rn int) uint32 {
	return 0x1E270000 | bits(uint32(rn), 5)<<5 | bits(uint32(sd), 5)
}

// FMOVIntToFloat64 dd, xn (reinterpret bits)
func FMOVIntToFloat64(dd, rn int) uint32 {
	return 0x9E670000 | bits(uint32(rn), 5)<<5 | bits(uint32(dd), 5)
}

// FADDSingle sd, sn, sm
func FADDSingle(sd, sn, sm int) uint32 {
	return 0x1E202800 | bits(uint32(sm), 5)<<16 | bits(uint32(sn), 5)<<5 | bits(uint32(sd), 5)
}

// FADDDouble dd, dn, dm
func FADDDouble(dd, dn, dm int) uint32 {
	return 0x1E202800 | 1<<22 | bits(uint32(dm), 5)<<16 | bits(uint32(dn), 5)<<5 | bits(uint32(dd), 5)
}

// FSUBSingle sd, sn, sm
func FSUBSingle(sd, sn, sm int) uint32 {
	return 0x1E203800 | bits(uint32(sm), 5)<<16 | bits(uint32(sn), 5)<<5 | bits(uint32(sd), 5)
}

// FMULSingle sd, sn, sm
func FMULSingle(sd, sn, sm int) uint32 {
	return 0x1E200800 | bits(uint32(sm), 5)<<16 | bits(uint32(sn), 5)<<5 | bits(uint32(sd), 5)
}

// FDIVSingle sd, sn, sm
func FDIVSingle(sd, sn, sm int) uint32 {
	return 0x1E201800 | bits(uint32(sm), 5)<<16 | bits(uint32(sn), 5)<<5 | bits(uint32(sd), 5)
}

// FCVTZSSingle rd, sn (round toward zero, signed)
func FCVTZSSingle(rd, sn int) uint32 {
	return 0x1E380000 | bits(uint32(sn), 5)<<5 | bits(uint32(rd), 5)
}

// FCVTZSDouble rd, dn
func FCVTZSDouble(rd, dn int) uint32 {
	return 0x1E380000 | 1<<22 | bits(uint32(dn), 5)<<5 | bits(uint32(rd), 5)
}

// SCVTFSingle sd, rn (signed int -> float)
func SCVTFSingle(sd, rn int) uint32 {
	return 0x1E220000 | bits(uint32(rn), 5)<<5 | bits(uint32(sd), 5)
}

// FCMPSingle sn, sm
func FCMPSingle(sn, sm int) uint32 {
	return 0x1E202000 | bits(uint32(sm), 5)<<16 | bits(uint32(sn), 5)<<5
}

// LDRFloat32 st, rn, imm12 (imm12 counted in words of 4 bytes)
func LDRFloat32(st, rn int, imm12 uint32) uint32 {
	return 0xBD<<24 | bits(imm12, 12)<<10 | bits(uint32(rn), 5)<<5 | bits(uint32(st), 5)
}

// STRFloat32 st, rn, imm12
func STRFloat32(st, rn int, imm12 uint32) uint32 {
	return 0xFD<<24 | bits(imm12, 12)<<10 | bits(uint32(rn), 5)<<5 | bits(uint32(st), 5)
}
