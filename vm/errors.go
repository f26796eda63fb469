package vm

import "fmt"

// ErrorKind categorizes the tagged error values the core surfaces across
// its API boundary (spec.md §7). Modeled on the teacher's parser.Error /
// encoder.Error: a Kind enum plus payload fields, not bare errors.New.
type ErrorKind int

const (
	// ErrMemoryOutOfBounds covers accesses or instruction fetches outside
	// the memory array, misaligned instruction fetches resolved as
	// out-of-bounds by size, and (per SPEC_FULL §7/§10) writes that land
	// in a read-only region.
	ErrMemoryOutOfBounds ErrorKind = iota
	// ErrProgramCounterOutOfBounds covers an unaligned or invalid PC at
	// fetch time — distinct from ErrMemoryOutOfBounds per spec.md §8.
	ErrProgramCounterOutOfBounds
	// ErrUnsupportedInstruction means no decoder family matched the top
	// byte at all.
	ErrUnsupportedInstruction
	// ErrUnsupportedInstructionFormat means a family matched but the
	// sub-field combination isn't implemented (including the "zero
	// instruction word" trap and MADD with non-zero Ra).
	ErrUnsupportedInstructionFormat
	// ErrDevice covers missing memory backing on the bus, peripheral
	// failures, and the runaway-execution safety trip.
	ErrDevice
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMemoryOutOfBounds:
		return "MemoryOutOfBounds"
	case ErrProgramCounterOutOfBounds:
		return "ProgramCounterOutOfBounds"
	case ErrUnsupportedInstruction:
		return "UnsupportedInstruction"
	case ErrUnsupportedInstructionFormat:
		return "UnsupportedInstructionFormat"
	case ErrDevice:
		return "DeviceError"
	default:
		return "UnknownError"
	}
}

// Error is the tagged error value returned across the core's API boundary.
// Only the fields relevant to Kind are populated; the rest are zero.
type Error struct {
	Kind    ErrorKind
	Address uint64 // MemoryOutOfBounds, ProgramCounterOutOfBounds
	Word    uint32 // UnsupportedInstructionFormat
	TopByte byte   // UnsupportedInstruction(Format)
	Detail  string // UnsupportedInstructionFormat, DeviceError, read-only MemoryOutOfBounds
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrMemoryOutOfBounds:
		if e.Detail != "" {
			return fmt.Sprintf("memory out of bounds at 0x%X: %s", e.Address, e.Detail)
		}
		return fmt.Sprintf("memory out of bounds at 0x%X", e.Address)
	case ErrProgramCounterOutOfBounds:
		return fmt.Sprintf("program counter out of bounds: 0x%X", e.Address)
	case ErrUnsupportedInstruction:
		return fmt.Sprintf("unsupported instruction: top byte 0x%02X", e.TopByte)
	case ErrUnsupportedInstructionFormat:
		return fmt.Sprintf("unsupported instruction format: word=0x%08X top=0x%02X: %s", e.Word, e.TopByte, e.Detail)
	case ErrDevice:
		return fmt.Sprintf("device error: %s", e.Detail)
	default:
		return "unknown vm error"
	}
}

func errMemoryOutOfBounds(addr uint64) error {
	return &Error{Kind: ErrMemoryOutOfBounds, Address: addr}
}

func errMemoryReadOnly(addr uint64) error {
	return &Error{Kind: ErrMemoryOutOfBounds, Address: addr, Detail: "region is read-only"}
}

func errPCOutOfBounds(addr uint64) error {
	return &Error{Kind: ErrProgramCounterOutOfBounds, Address: addr}
}

func errUnsupportedInstruction(topByte byte) error {
	return &Error{Kind: ErrUnsupportedInstruction, TopByte: topByte}
}

func errUnsupportedFormat(word uint32, topByte byte, detail string) error {
	return &Error{Kind: ErrUnsupportedInstructionFormat, Word: word, TopByte: topByte, Detail: detail}
}

func errDevice(detail string) error {
	return &Error{Kind: ErrDevice, Detail: detail}
}
