package vm

// elementByteSize maps the 2-bit element-size field at instr[23:22] to a
// lane width in bytes (spec.md §4.7).
func elementByteSize(w uint32) int {
	switch bits(w, 23, 22) {
	case 0:
		return 1
	case 1:
		return 2
	case 2:
		return 4
	default:
		return 8
	}
}

// ExecuteSIMDLoadStore implements LD1/ST1 {Vd.16B},[Xn] (spec.md §4.7):
// 16 contiguous bytes, raw, with an optional post-increment of Xn by 16.
func ExecuteSIMDLoadStore(cpu *CPU, bus *Bus, inst *Instruction) error {
	w := inst.Word
	vd := int(bits(w, 4, 0))
	rn := int(bits(w, 9, 5))
	isStore := bits(w, 22, 22) == 0
	postIncrement := bits(w, 23, 23) == 1

	addr := cpu.GetRegister(rn)

	if isStore {
		data := cpu.GetVectorBytes(vd)
		if err := bus.WriteBytes(addr, data[:]); err != nil {
			return err
		}
	} else {
		data, err := bus.ReadBytes(addr, SIMDRegisterBytes)
		if err != nil {
			return err
		}
		var buf [SIMDRegisterBytes]byte
		copy(buf[:], data)
		cpu.SetVectorBytes(vd, buf)
	}

	if postIncrement {
		cpu.SetRegister(rn, addr+SIMDRegisterBytes)
	}

	cpu.IncrementPC()
	return nil
}

// ExecuteSIMDExtract implements the custom lane-to-scalar opcode
// (spec.md §4.7): rd=[4:0], vn=[9:5], index=[13:10]; Vn.B[index]
// zero-extended into Xd.
func ExecuteSIMDExtract(cpu *CPU, inst *Instruction) error {
	w := inst.Word
	rd := int(bits(w, 4, 0))
	vn := int(bits(w, 9, 5))
	index := int(bits(w, 13, 10))
	cpu.SetRegister(rd, cpu.GetVectorLane(vn, index, 1))
	cpu.IncrementPC()
	return nil
}

// simdOp identifies the SIMD data-processing operation within the
// overlapping mask space described in spec.md §4.7; precedence order
// is AND > OR > XOR > DUP > MOV > ADD/SUB/MUL (the last three are
// disjoint on bits [11:10]), following the decision-tree redesign
// spec.md §9 calls for.
type simdOp int

const (
	simdUnknown simdOp = iota
	simdAnd
	simdOrr
	simdEor
	simdDup
	simdMul
	simdSub
	simdAdd
	simdMov
)

// classifySIMDData resolves the operation for a FamSIMDData word. With
// bit [21] set, bits [11:10] select AND/OR/XOR; otherwise bits [15:10]
// select DUP (0x03) or MOV (0x19), and failing those bits [11:10] select
// ADD/SUB/MUL, per the disjoint-bit redesign spec.md §9 recommends over
// exact-pattern fallbacks.
func classifySIMDData(w uint32) simdOp {
	bit21 := bits(w, 21, 21)
	bits11_10 := bits(w, 11, 10)
	bits15_10 := bits(w, 15, 10)

	if bit21 == 1 {
		switch bits11_10 {
		case 0x3:
			return simdAnd
		case 0x1:
			return simdOrr
		case 0x2:
			return simdEor
		}
	}

	switch bits15_10 {
	case 0x03:
		return simdDup
	case 0x19:
		return simdMov
	}

	switch bits11_10 {
	case 0x0:
		return simdAdd
	case 0x2:
		return simdSub
	case 0x1:
		return simdMul
	}

	return simdUnknown
}

func wrapAdd(a, b uint64, byteSize int) uint64 {
	mod := uint64(1) << (8 * byteSize)
	return (a + b) % mod
}

func wrapSub(a, b uint64, byteSize int) uint64 {
	mod := uint64(1) << (8 * byteSize)
	return (a - b + mod) % mod
}

func wrapMul(a, b uint64, byteSize int) uint64 {
	mod := uint64(1) << (8 * byteSize)
	return (a * b) % mod
}

// ExecuteSIMDData implements the SIMD data-processing family: lanewise
// wrapping ADD/SUB/MUL, bytewise AND/OR/XOR, DUP lane->all, and plain
// register move (spec.md §4.7).
func ExecuteSIMDData(cpu *CPU, inst *Instruction) error {
	w := inst.Word
	vd := int(bits(w, 4, 0))
	vn := int(bits(w, 9, 5))
	vm := int(bits(w, 20, 16))
	byteSize := elementByteSize(w)
	lanes := SIMDRegisterBytes / byteSize

	op := classifySIMDData(w)

	switch op {
	case simdAnd, simdOrr, simdEor:
		a := cpu.GetVectorBytes(vn)
		b := cpu.GetVectorBytes(vm)
		var result [SIMDRegisterBytes]byte
		for i := range result {
			switch op {
			case simdAnd:
				result[i] = a[i] & b[i]
			case simdOrr:
				result[i] = a[i] | b[i]
			case simdEor:
				result[i] = a[i] ^ b[i]
			}
		}
		cpu.SetVectorBytes(vd, result)

	case simdMov:
		cpu.SetVectorBytes(vd, cpu.GetVectorBytes(vn))

	case simdDup:
		index := int(bits(w, 18, 16))
		value := cpu.GetVectorLane(vn, index, byteSize)
		for i := 0; i < lanes; i++ {
			cpu.SetVectorLane(vd, i, byteSize, value)
		}

	case simdAdd, simdSub, simdMul:
		if op == simdMul && byteSize == 8 {
			return errUnsupportedFormat(w, topByte(w), "MUL does not support doubleword element size")
		}
		for i := 0; i < lanes; i++ {
			a := cpu.GetVectorLane(vn, i, byteSize)
			b := cpu.GetVectorLane(vm, i, byteSize)
			var result uint64
			switch op {
			case simdAdd:
				result = wrapAdd(a, b, byteSize)
			case simdSub:
				result = wrapSub(a, b, byteSize)
			case simdMul:
				result = wrapMul(a, b, byteSize)
			}
			cpu.SetVectorLane(vd, i, byteSize, result)
		}

	default:
		return errUnsupportedFormat(w, topByte(w), "unrecognized SIMD data-processing encoding")
	}

	cpu.IncrementPC()
	return nil
}
