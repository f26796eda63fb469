package vm

// signExtend sign-extends the low `bits` bits of v to 64 bits.
func signExtend(v uint64, bits uint) int64 {
	shift := 64 - bits
	return int64(v<<shift) >> shift
}

// ExecuteBranch runs B.cond / B / BL / BR (spec.md §4.5). A taken branch
// sets PC itself to the target; the engine loop must not additionally
// advance PC in that case (SPEC_FULL §10: PC is set directly on taken
// branches, and the loop advances by 4 only when the decoder reported no
// PC change).
//
// Returns whether PC was changed (false for an untaken B.cond, which
// leaves PC as it was for the caller to advance by 4 as usual).
func ExecuteBranch(cpu *CPU, inst *Instruction) (branched bool, err error) {
	w := inst.Word
	oldPC := cpu.PC

	switch inst.Family {
	case FamBCond:
		cond := ConditionCode(bits(w, 3, 0))
		imm19 := uint64(bits(w, 23, 5))
		offset := signExtend(imm19, 19) * 4
		if !cpu.PSTATE.Evaluate(cond) {
			return false, nil
		}
		cpu.PC = uint64(int64(oldPC) + offset)
		return true, nil

	case FamB:
		imm26 := uint64(bits(w, 25, 0))
		offset := signExtend(imm26, 26) * 4
		cpu.PC = uint64(int64(oldPC) + offset)
		return true, nil

	case FamBL:
		// The fixed 0x17 top byte occupies bits 25:24, so BL's offset is
		// the signed 24-bit field below it.
		imm24 := uint64(bits(w, 23, 0))
		offset := signExtend(imm24, 24) * 4
		cpu.SetRegister(30, oldPC+4)
		cpu.PC = uint64(int64(oldPC) + offset)
		return true, nil

	case FamBR:
		rn := int(bits(w, 9, 5))
		cpu.PC = cpu.GetRegister(rn)
		return true, nil

	default:
		return false, errUnsupportedFormat(w, topByte(w), "not a branch family")
	}
}
