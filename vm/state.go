package vm

import "fmt"

// DumpState formats a single-line register/flags/cycle summary, used by
// the CLI and the TUI inspector (mirrors the teacher's VM.DumpState).
func (e *Engine) DumpState() string {
	flag := func(set bool, ch string) string {
		if set {
			return ch
		}
		return "-"
	}
	return fmt.Sprintf(
		"PC=0x%016X X30=0x%016X NZCV=[%s%s%s%s] FPSR=0x%08X instructions=%d",
		e.CPU.PC,
		e.CPU.GetRegister(30),
		flag(e.CPU.PSTATE.N, "N"), flag(e.CPU.PSTATE.Z, "Z"),
		flag(e.CPU.PSTATE.C, "C"), flag(e.CPU.PSTATE.V, "V"),
		e.CPU.FPSR,
		e.instructionCount,
	)
}
