package vm

import "math"

// ExecuteScalar runs the integer data-processing families (spec.md §4.5).
// On success it advances PC by 4 itself and returns nil.
func ExecuteScalar(cpu *CPU, inst *Instruction) error {
	w := inst.Word

	switch inst.Family {
	case FamMOVZ:
		rd := int(bits(w, 4, 0))
		imm16 := uint64(bits(w, 20, 5))
		// hw shift field (bits 22:21) is intentionally ignored, per the
		// simplified MOVZ behavior in spec.md §9.
		cpu.SetRegister(rd, imm16)

	case FamAddImm:
		rd := int(bits(w, 4, 0))
		rn := int(bits(w, 9, 5))
		imm12 := uint64(bits(w, 21, 10))
		a := cpu.GetRegister(rn)
		result := a + imm12
		cpu.SetRegister(rd, result)

	case FamAddReg:
		rd := int(bits(w, 4, 0))
		rn := int(bits(w, 9, 5))
		rm := int(bits(w, 20, 16))
		a := cpu.GetRegister(rn)
		b := cpu.GetRegister(rm)
		cpu.SetRegister(rd, a+b)

	case FamSubReg:
		rd := int(bits(w, 4, 0))
		rn := int(bits(w, 9, 5))
		rm := int(bits(w, 20, 16))
		a := cpu.GetRegister(rn)
		b := cpu.GetRegister(rm)
		cpu.SetRegister(rd, a-b)

	case FamSubImm:
		rd := int(bits(w, 4, 0))
		rn := int(bits(w, 9, 5))
		imm12 := uint64(bits(w, 21, 10))
		a := cpu.GetRegister(rn)
		cpu.SetRegister(rd, a-imm12)

	case FamSubSReg:
		// SUBS: flag-setting subtraction; Rd=31 discards the result and
		// sets flags only, matching ARM semantics (spec.md §9).
		rd := int(bits(w, 4, 0))
		rn := int(bits(w, 9, 5))
		rm := int(bits(w, 20, 16))
		a := cpu.GetRegister(rn)
		b := cpu.GetRegister(rm)
		result := a - b
		cpu.PSTATE.UpdateSub(a, b, result)
		cpu.SetRegister(rd, result)

	case FamMul:
		// MADD with Ra=XZR decodes as MUL (spec.md §4.4); non-zero Ra
		// is not implemented.
		rd := int(bits(w, 4, 0))
		rn := int(bits(w, 9, 5))
		rm := int(bits(w, 20, 16))
		a := cpu.GetRegister(rn)
		b := cpu.GetRegister(rm)
		cpu.SetRegister(rd, a*b)

	case FamAndReg:
		rd := int(bits(w, 4, 0))
		rn := int(bits(w, 9, 5))
		rm := int(bits(w, 20, 16))
		cpu.SetRegister(rd, cpu.GetRegister(rn)&cpu.GetRegister(rm))

	case FamOrrReg:
		rd := int(bits(w, 4, 0))
		rn := int(bits(w, 9, 5))
		rm := int(bits(w, 20, 16))
		cpu.SetRegister(rd, cpu.GetRegister(rn)|cpu.GetRegister(rm))

	case FamOrrImm:
		rd := int(bits(w, 4, 0))
		rn := int(bits(w, 9, 5))
		imm := uint64(bits(w, 21, 10)) << (uint(bits(w, 23, 22)) * 16)
		cpu.SetRegister(rd, cpu.GetRegister(rn)|imm)

	case FamEorReg:
		rd := int(bits(w, 4, 0))
		rn := int(bits(w, 9, 5))
		rm := int(bits(w, 20, 16))
		cpu.SetRegister(rd, cpu.GetRegister(rn)^cpu.GetRegister(rm))

	case FamShiftReg:
		rd := int(bits(w, 4, 0))
		rn := int(bits(w, 9, 5))
		rm := int(bits(w, 20, 16))
		op := bits(w, 15, 10)
		amount := cpu.GetRegister(rm) & 0x3F // masked with 0x3F per spec.md §4.5
		cpu.SetRegister(rd, shiftOp(op, cpu.GetRegister(rn), uint(amount)))

	case FamShiftImm:
		rd := int(bits(w, 4, 0))
		rn := int(bits(w, 9, 5))
		op := bits(w, 23, 22)
		amount := uint(bits(w, 15, 10)) & 0x3F // raw 6-bit field
		cpu.SetRegister(rd, shiftOp(op, cpu.GetRegister(rn), amount))

	case FamDiv:
		rd := int(bits(w, 4, 0))
		rn := int(bits(w, 9, 5))
		rm := int(bits(w, 20, 16))
		signed := bits(w, 10, 10) == 1
		a := cpu.GetRegister(rn)
		b := cpu.GetRegister(rm)
		cpu.SetRegister(rd, divide(a, b, signed))

	default:
		return errUnsupportedFormat(w, topByte(w), "not a scalar family")
	}

	cpu.IncrementPC()
	return nil
}

// shiftOp performs LSL/LSR/ASR per the 2-bit opcode shared by
// FamShiftReg/FamShiftImm (spec.md §4.4: 0=LSL, 1=LSR, 2=ASR).
func shiftOp(op uint32, value uint64, amount uint) uint64 {
	amount &= 0x3F
	switch op {
	case 0: // LSL
		if amount == 0 {
			return value
		}
		return value << amount
	case 1: // LSR
		if amount == 0 {
			return value
		}
		return value >> amount
	case 2: // ASR
		return uint64(int64(value) >> amount)
	default:
		return value
	}
}

// divide implements integer division per spec.md §4.5: division by zero
// yields 0; signed INT64_MIN/-1 is clamped to INT64_MIN to avoid a host
// trap.
func divide(a, b uint64, signed bool) uint64 {
	if b == 0 {
		return 0
	}
	if !signed {
		return a / b
	}
	sa, sb := int64(a), int64(b)
	if sa == math.MinInt64 && sb == -1 {
		return uint64(sa)
	}
	return uint64(sa / sb)
}
