package vm_test

import (
	"testing"

	"github.com/arm64emu/arm64-emulator/vm"
)

func TestConditionCodeEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		state  vm.PSTATE
		cond   vm.ConditionCode
		expect bool
	}{
		{"EQ true", vm.PSTATE{Z: true}, vm.CondEQ, true},
		{"EQ false", vm.PSTATE{Z: false}, vm.CondEQ, false},
		{"NE", vm.PSTATE{Z: false}, vm.CondNE, true},
		{"CS", vm.PSTATE{C: true}, vm.CondCS, true},
		{"CC", vm.PSTATE{C: false}, vm.CondCC, true},
		{"MI", vm.PSTATE{N: true}, vm.CondMI, true},
		{"PL", vm.PSTATE{N: false}, vm.CondPL, true},
		{"VS", vm.PSTATE{V: true}, vm.CondVS, true},
		{"VC", vm.PSTATE{V: false}, vm.CondVC, true},
		{"HI true", vm.PSTATE{C: true, Z: false}, vm.CondHI, true},
		{"HI false when Z set", vm.PSTATE{C: true, Z: true}, vm.CondHI, false},
		{"LS", vm.PSTATE{C: false, Z: false}, vm.CondLS, true},
		{"GE true", vm.PSTATE{N: true, V: true}, vm.CondGE, true},
		{"GE false", vm.PSTATE{N: true, V: false}, vm.CondGE, false},
		{"LT", vm.PSTATE{N: true, V: false}, vm.CondLT, true},
		{"GT true", vm.PSTATE{Z: false, N: false, V: false}, vm.CondGT, true},
		{"GT false when Z set", vm.PSTATE{Z: true, N: false, V: false}, vm.CondGT, false},
		{"LE", vm.PSTATE{Z: true}, vm.CondLE, true},
		{"AL always true", vm.PSTATE{}, vm.CondAL, true},
		{"NV always false", vm.PSTATE{N: true, Z: true, C: true, V: true}, vm.CondNV, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.Evaluate(tt.cond); got != tt.expect {
				t.Errorf("%s.Evaluate(%s) = %v, want %v", tt.name, tt.cond, got, tt.expect)
			}
		})
	}
}

func TestUpdateNZ(t *testing.T) {
	var p vm.PSTATE
	p.UpdateNZ(0)
	if !p.Z || p.N {
		t.Error("zero result should set Z and clear N")
	}
	p.UpdateNZ(vm.SignBit64)
	if p.Z || !p.N {
		t.Error("top-bit-set result should set N and clear Z")
	}
}

func TestUpdateAddOverflow(t *testing.T) {
	var p vm.PSTATE
	a := uint64(0x7FFFFFFFFFFFFFFF)
	b := uint64(1)
	result := a + b
	p.UpdateAdd(a, b, result)
	if !p.V {
		t.Error("adding two positives into a negative result should set V")
	}
	if p.C {
		t.Error("this addition does not carry out of 64 bits")
	}
}

func TestUpdateAddCarry(t *testing.T) {
	var p vm.PSTATE
	a := uint64(0xFFFFFFFFFFFFFFFF)
	b := uint64(2)
	result := a + b // wraps
	p.UpdateAdd(a, b, result)
	if !p.C {
		t.Error("unsigned wraparound should set C")
	}
}

func TestUpdateSubNoBorrow(t *testing.T) {
	var p vm.PSTATE
	result := uint64(10) - uint64(3)
	p.UpdateSub(10, 3, result)
	if !p.C {
		t.Error("a >= b means no borrow, C should be set")
	}
	if p.N {
		t.Error("result is positive, N should be clear")
	}
}

func TestUpdateSubBorrow(t *testing.T) {
	var p vm.PSTATE
	a, b := uint64(3), uint64(10)
	result := a - b
	p.UpdateSub(a, b, result)
	if p.C {
		t.Error("a < b means a borrow occurred, C should be clear")
	}
	if !p.N {
		t.Error("3-10 wraps to a negative two's-complement result, N should be set")
	}
}

func TestUpdateSubOverflow(t *testing.T) {
	var p vm.PSTATE
	a := uint64(0x8000000000000000) // INT64_MIN
	b := uint64(1)
	result := a - b
	p.UpdateSub(a, b, result)
	if !p.V {
		t.Error("INT64_MIN - 1 overflows signed subtraction, V should be set")
	}
}
