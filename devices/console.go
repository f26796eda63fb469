// Package devices holds the small set of built-in peripherals this core
// ships (SPEC_FULL §7): a single write-only debug console, reachable
// only through vm.Bus/vm.Device, never through a syscall trap — trap-
// based I/O is out of scope per spec.md §1.
package devices

import (
	"fmt"
	"io"
)

// Console is a one-register-wide, write-only debug output device: a
// write to its single offset prints the low byte to Writer. It mirrors
// the teacher's OutputWriter-backed console output (vm.VM.OutputWriter),
// reached here through the Device contract instead of a syscall.
type Console struct {
	Writer io.Writer
}

// NewConsole wires a Console to w.
func NewConsole(w io.Writer) *Console {
	return &Console{Writer: w}
}

// Size reports the console's one-register footprint on the bus.
func (c *Console) Size() uint64 { return 8 }

// Read always returns 0; the console has no readable state.
func (c *Console) Read(offset uint64) (uint64, error) {
	return 0, nil
}

// Write prints the low byte of value as a single character.
func (c *Console) Write(offset uint64, value uint64) error {
	_, err := fmt.Fprintf(c.Writer, "%c", byte(value))
	return err
}
