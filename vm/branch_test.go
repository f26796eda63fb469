package vm_test

import (
	"testing"

	"github.com/arm64emu/arm64-emulator/internal/asmtest"
	"github.com/arm64emu/arm64-emulator/vm"
)

func TestExecuteBranchUnconditional(t *testing.T) {
	cpu := vm.NewCPU()
	cpu.PC = 0x1000
	inst, err := vm.Decode(asmtest.B(4))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	branched, err := vm.ExecuteBranch(cpu, inst)
	if err != nil {
		t.Fatalf("ExecuteBranch error: %v", err)
	}
	if !branched {
		t.Fatal("B should always branch")
	}
	if cpu.PC != 0x1000+16 {
		t.Errorf("PC = 0x%X, want 0x%X", cpu.PC, 0x1000+16)
	}
}

func TestExecuteBranchLinkSetsX30(t *testing.T) {
	cpu := vm.NewCPU()
	cpu.PC = 0x2000
	inst, _ := vm.Decode(asmtest.BL(2))
	branched, err := vm.ExecuteBranch(cpu, inst)
	if err != nil || !branched {
		t.Fatalf("BL should branch without error, got branched=%v err=%v", branched, err)
	}
	if cpu.GetRegister(30) != 0x2004 {
		t.Errorf("X30 = 0x%X, want 0x2004 (return address)", cpu.GetRegister(30))
	}
	if cpu.PC != 0x2000+8 {
		t.Errorf("PC = 0x%X, want 0x2008", cpu.PC)
	}
}

func TestExecuteBranchRegisterSetsGPCDirectly(t *testing.T) {
	cpu := vm.NewCPU()
	cpu.PC = 0x3000
	cpu.SetRegister(5, 0x9000)
	inst, _ := vm.Decode(asmtest.BR(5))
	branched, err := vm.ExecuteBranch(cpu, inst)
	if err != nil || !branched {
		t.Fatalf("BR should branch without error, got branched=%v err=%v", branched, err)
	}
	if cpu.PC != 0x9000 {
		t.Errorf("PC = 0x%X, want 0x9000 (BR sets PC directly, no -4 adjustment)", cpu.PC)
	}
}

func TestExecuteBranchConditionalTaken(t *testing.T) {
	cpu := vm.NewCPU()
	cpu.PC = 0x1000
	cpu.PSTATE.Z = true
	inst, _ := vm.Decode(asmtest.BCond(int(vm.CondEQ), 4))
	branched, err := vm.ExecuteBranch(cpu, inst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !branched || cpu.PC != 0x1000+16 {
		t.Errorf("expected B.EQ taken to 0x%X, got branched=%v pc=0x%X", 0x1000+16, branched, cpu.PC)
	}
}

func TestExecuteBranchConditionalNotTaken(t *testing.T) {
	cpu := vm.NewCPU()
	cpu.PC = 0x1000
	cpu.PSTATE.Z = false
	inst, _ := vm.Decode(asmtest.BCond(int(vm.CondEQ), 4))
	branched, err := vm.ExecuteBranch(cpu, inst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if branched {
		t.Error("B.EQ should not be taken when Z is clear")
	}
	if cpu.PC != 0x1000 {
		t.Error("PC should be unchanged by an untaken branch; the engine loop advances it")
	}
}

func TestExecuteBranchNegativeOffset(t *testing.T) {
	cpu := vm.NewCPU()
	cpu.PC = 0x1000
	inst, _ := vm.Decode(asmtest.B(-4))
	_, err := vm.ExecuteBranch(cpu, inst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cpu.PC != 0x1000-16 {
		t.Errorf("PC = 0x%X, want 0x%X", cpu.PC, 0x1000-16)
	}
}
