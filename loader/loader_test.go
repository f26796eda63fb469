package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arm64emu/arm64-emulator/internal/asmtest"
	"github.com/arm64emu/arm64-emulator/loader"
	"github.com/arm64emu/arm64-emulator/vm"
)

func TestWordsFromBytesDecodesLittleEndian(t *testing.T) {
	data := []byte{0x1F, 0x20, 0x03, 0xD5} // NOP, little-endian
	words, err := loader.WordsFromBytes(data)
	if err != nil {
		t.Fatalf("WordsFromBytes error: %v", err)
	}
	if len(words) != 1 || words[0] != asmtest.NOP {
		t.Errorf("words = %v, want [0x%08X]", words, asmtest.NOP)
	}
}

func TestWordsFromBytesRejectsPartialWord(t *testing.T) {
	_, err := loader.WordsFromBytes([]byte{0x00, 0x01, 0x02})
	if err == nil {
		t.Fatal("expected an error for a length not a multiple of 4")
	}
}

func TestLoadFileWritesProgramAndSetsPC(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.bin")

	words := []uint32{asmtest.MOVZ(0, 42), asmtest.NOP}
	data := make([]byte, 0, len(words)*4)
	for _, w := range words {
		data = append(data, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write test program: %v", err)
	}

	engine := vm.NewEngine(16384)
	if err := loader.LoadFile(engine, path, 0x2000); err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if engine.CPU.PC != 0x2000 {
		t.Errorf("PC = 0x%X, want 0x2000", engine.CPU.PC)
	}
	if err := engine.ExecuteOne(); err != nil {
		t.Fatalf("ExecuteOne error: %v", err)
	}
	if engine.GetRegister(0) != 42 {
		t.Errorf("X0 = %d, want 42", engine.GetRegister(0))
	}
}

func TestLoadFileMissingPathErrors(t *testing.T) {
	engine := vm.NewEngine(4096)
	err := loader.LoadFile(engine, filepath.Join(t.TempDir(), "missing.bin"), 0x1000)
	if err == nil {
		t.Fatal("expected an error for a missing program file")
	}
}
