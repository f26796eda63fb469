// Package loader reads the binary program format spec.md §6 defines — a
// flat sequence of 32-bit little-endian instruction words with no
// header, relocation, or symbol table — and hands it to an Engine. It
// plays the role the teacher's loader package plays for its assembled
// programs, trimmed to match this core's header-less word-stream
// format (the teacher's ELF-like segment/symbol loading has no
// equivalent here since there is no assembler in this core's scope).
package loader

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/arm64emu/arm64-emulator/vm"
)

// WordsFromBytes decodes a raw byte slice into little-endian 32-bit
// words. len(data) must be a multiple of 4.
func WordsFromBytes(data []byte) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("program length %d is not a multiple of 4 bytes", len(data))
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4 : i*4+4])
	}
	return words, nil
}

// LoadFile reads the binary program at path and loads it into engine at
// baseAddress, setting PC = baseAddress (spec.md §6 `load_program`).
func LoadFile(engine *vm.Engine, path string, baseAddress uint64) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read program %s: %w", path, err)
	}
	words, err := WordsFromBytes(data)
	if err != nil {
		return fmt.Errorf("failed to parse program %s: %w", path, err)
	}
	return engine.LoadProgram(baseAddress, words)
}
