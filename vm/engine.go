package vm

// TerminationReason distinguishes why Run stopped, per spec.md §7's
// requirement that NOP-termination and safety-bound-termination be
// distinguishable outcomes.
type TerminationReason int

const (
	TerminationNone TerminationReason = iota
	TerminationNOP
	TerminationError
)

// Engine is the complete virtual machine: register file, bus-mediated
// memory, and the fetch-decode-execute loop (spec.md §2, §4.9). It
// mirrors the teacher's VM struct, trimmed to this core's scope.
type Engine struct {
	CPU *CPU
	Bus *Bus

	MaxInstructions  uint64
	instructionCount uint64

	Trace *ExecutionTrace

	LastTermination TerminationReason
	LastError       error
}

// NewEngine constructs an Engine with a fresh register file and a flat
// memory of memorySize bytes wired straight onto the bus (spec.md §6
// `new_emulator`).
func NewEngine(memorySize uint64) *Engine {
	if memorySize == 0 {
		memorySize = DefaultMemorySize
	}
	mem := NewMemory(memorySize)
	return &Engine{
		CPU:             NewCPU(),
		Bus:             NewBus(mem),
		MaxInstructions: DefaultMaxInstructions,
	}
}

// LoadProgram writes instruction words little-endian starting at
// baseAddress and sets PC = baseAddress (spec.md §6 `load_program`).
func (e *Engine) LoadProgram(baseAddress uint64, words []uint32) error {
	if err := e.Bus.memory.WriteBlock(baseAddress, words); err != nil {
		return err
	}
	e.CPU.PC = baseAddress
	return nil
}

// GetRegister/SetRegister expose X0..X30 across the API boundary
// (spec.md §6).
func (e *Engine) GetRegister(n int) uint64            { return e.CPU.GetRegister(n) }
func (e *Engine) SetRegister(n int, v uint64)         { e.CPU.SetRegister(n, v) }
func (e *Engine) GetFloatRegister32(n int) uint32     { return e.CPU.GetFloat32(n) }
func (e *Engine) SetFloatRegister32(n int, v uint32)  { e.CPU.SetFloat32(n, v) }
func (e *Engine) GetFloatRegister64(n int) uint64     { return e.CPU.GetFloat64(n) }
func (e *Engine) SetFloatRegister64(n int, v uint64)  { e.CPU.SetFloat64(n, v) }

// InstructionCount reports how many instructions have executed since
// the last Run started (Run resets it to 0; each ExecuteOne adds one).
func (e *Engine) InstructionCount() uint64 { return e.instructionCount }

// ExecuteOne fetches, decodes, and executes the instruction at the
// current PC, advancing PC by 4 unless the instruction itself changed
// PC (spec.md §6 `execute_one`, §4.9). It does not interpret NOP as
// termination — callers stepping manually see NOP as an ordinary,
// successfully executed instruction; Run is what treats NOP as the
// program terminator.
func (e *Engine) ExecuteOne() error {
	word, err := e.fetch()
	if err != nil {
		return err
	}

	if e.Trace != nil {
		e.Trace.Record(e.CPU.PC, word)
	}

	inst, err := Decode(word)
	if err != nil {
		return err
	}
	inst.Address = e.CPU.PC

	oldPC := e.CPU.PC
	if err := e.dispatch(inst); err != nil {
		return err
	}
	if e.CPU.PC == oldPC {
		e.CPU.IncrementPC()
	}

	e.instructionCount++
	return nil
}

// fetch validates PC alignment/bounds and reads the instruction word at
// PC, applying the zero-word reserved trap (spec.md §4.9).
func (e *Engine) fetch() (uint32, error) {
	if e.CPU.PC%4 != 0 || !e.Bus.memory.IsValidAddress(e.CPU.PC) || e.CPU.PC+4 > e.Bus.memory.Size() {
		return 0, errPCOutOfBounds(e.CPU.PC)
	}

	word, err := e.Bus.ReadInstruction(e.CPU.PC)
	if err != nil {
		return 0, err
	}

	if word == 0 {
		return 0, errUnsupportedFormat(word, topByte(word), "instruction word is zero")
	}

	return word, nil
}

// dispatch routes a decoded instruction to the appropriate executor
// (spec.md §2 control flow).
func (e *Engine) dispatch(inst *Instruction) error {
	switch inst.Family {
	case FamMOVZ, FamAddImm, FamAddReg, FamSubReg, FamSubImm, FamSubSReg,
		FamMul, FamAndReg, FamOrrReg, FamOrrImm, FamEorReg,
		FamShiftReg, FamShiftImm, FamDiv:
		return ExecuteScalar(e.CPU, inst)

	case FamBCond, FamB, FamBL, FamBR:
		_, err := ExecuteBranch(e.CPU, inst)
		return err

	case FamSystem:
		// Only NOP reaches here; Decode rejects every other system
		// encoding. Executing it is a true no-op — Run is responsible
		// for treating it as program termination.
		e.CPU.IncrementPC()
		return nil

	case FamFP:
		return ExecuteFP(e.CPU, e.Bus, inst)

	case FamSIMDLoadStore:
		return ExecuteSIMDLoadStore(e.CPU, e.Bus, inst)

	case FamSIMDData:
		return ExecuteSIMDData(e.CPU, inst)

	case FamSIMDExtract:
		return ExecuteSIMDExtract(e.CPU, inst)

	default:
		return errUnsupportedFormat(inst.Word, topByte(inst.Word), "unrouted instruction family")
	}
}

// Run executes instructions until NOP, an error, or the safety bound
// (spec.md §4.9). Unlike ExecuteOne, Run recognizes NOP as the program
// terminator and stops before incrementing the instruction count for
// it, so NOP-termination and safety-bound-termination are
// distinguishable via LastTermination (spec.md §7).
func (e *Engine) Run() error {
	e.LastTermination = TerminationNone
	e.LastError = nil
	e.instructionCount = 0

	for {
		word, err := e.fetch()
		if err != nil {
			e.LastTermination = TerminationError
			e.LastError = err
			return err
		}

		if word == NOPWord {
			e.LastTermination = TerminationNOP
			return nil
		}

		if err := e.ExecuteOne(); err != nil {
			e.LastTermination = TerminationError
			e.LastError = err
			return err
		}

		if e.instructionCount >= e.MaxInstructions {
			err := errDevice("maximum instruction count exceeded")
			e.LastTermination = TerminationError
			e.LastError = err
			return err
		}
	}
}
