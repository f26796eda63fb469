package vm

// Default construction parameters, mirrored from the teacher's
// vm_constants.go / constants.go layout.
const (
	// DefaultMemorySize is the flat address space size used when a caller
	// does not request a specific size.
	DefaultMemorySize = 1 << 20 // 1 MiB

	// DefaultMaxInstructions is the safety bound on instructions executed
	// per Run call, guarding against runaway or looping test programs.
	DefaultMaxInstructions = 1000

	// DefaultTraceCapacity bounds the in-memory execution trace ring.
	DefaultTraceCapacity = 4096
)

// NOPWord is the architectural NOP encoding, also used as the program
// termination sentinel (spec.md §4.9, §6).
const NOPWord uint32 = 0xD503201F

// Bit-field helpers shared across the decoder and executors. Named rather
// than inlined so the decode tables in decoder.go read as a truth table.
const (
	Mask1Bit  = 0x1
	Mask2Bit  = 0x3
	Mask3Bit  = 0x7
	Mask4Bit  = 0xF
	Mask5Bit  = 0x1F
	Mask6Bit  = 0x3F
	Mask12Bit = 0xFFF
	Mask16Bit = 0xFFFF
	Mask19Bit = 0x7FFFF
	Mask26Bit = 0x3FFFFFF

	SignBit64 = uint64(1) << 63
)

// ZeroRegister is the index that denotes XZR/WZR: reads as zero, writes
// discarded (spec.md §3).
const ZeroRegister = 31

// GeneralRegisterCount and SIMDRegisterCount size the register file arrays.
const (
	GeneralRegisterCount = 31 // X0..X30; index 31 is handled specially
	SIMDRegisterCount    = 32 // V0..V31
	SIMDRegisterBytes    = 16 // 128 bits
)
