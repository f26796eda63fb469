package vm_test

import (
	"testing"

	"github.com/arm64emu/arm64-emulator/vm"
	"github.com/stretchr/testify/require"
)

// stubDevice is a minimal vm.Device double for bus dispatch tests.
type stubDevice struct {
	size       uint64
	lastWrite  uint64
	readValue  uint64
	writeCount int
}

func (d *stubDevice) Size() uint64 { return d.size }
func (d *stubDevice) Read(offset uint64) (uint64, error) {
	return d.readValue, nil
}
func (d *stubDevice) Write(offset uint64, value uint64) error {
	d.lastWrite = value
	d.writeCount++
	return nil
}

func TestBusDevicePreemptsMemory(t *testing.T) {
	mem := vm.NewMemory(1024)
	bus := vm.NewBus(mem)
	dev := &stubDevice{size: 8, readValue: 0x99}
	bus.RegisterDevice(512, dev)

	require.NoError(t, bus.Write(512, 7, 8))
	if dev.writeCount != 1 || dev.lastWrite != 7 {
		t.Errorf("expected device to absorb the write, got count=%d value=%d", dev.writeCount, dev.lastWrite)
	}

	got, err := bus.Read(512, 8)
	require.NoError(t, err)
	if got != 0x99 {
		t.Errorf("bus.Read should return the device's value, got %d", got)
	}
}

func TestBusFallsThroughToMemoryOutsideDeviceRange(t *testing.T) {
	mem := vm.NewMemory(1024)
	bus := vm.NewBus(mem)
	bus.RegisterDevice(512, &stubDevice{size: 8})

	require.NoError(t, bus.Write(0, 42, 4))
	got, err := bus.Read(0, 4)
	require.NoError(t, err)
	if got != 42 {
		t.Errorf("bus.Read(0) = %d, want 42", got)
	}
}

func TestBusNoBackingMemoryIsDeviceError(t *testing.T) {
	bus := vm.NewBus(nil)
	_, err := bus.Read(0, 4)
	require.Error(t, err)
	vmErr, ok := err.(*vm.Error)
	require.True(t, ok)
	if vmErr.Kind != vm.ErrDevice {
		t.Errorf("expected ErrDevice, got %s", vmErr.Kind)
	}
}

func TestBusReadBytesWriteBytesBypassDevices(t *testing.T) {
	mem := vm.NewMemory(32)
	bus := vm.NewBus(mem)
	dev := &stubDevice{size: 8, readValue: 0x99}
	bus.RegisterDevice(0, dev)
	data := []byte{1, 2, 3, 4}
	require.NoError(t, bus.WriteBytes(0, data))
	got, err := bus.ReadBytes(0, 4)
	require.NoError(t, err)
	if string(got) != string(data) {
		t.Errorf("ReadBytes = %v, want %v", got, data)
	}
	if dev.writeCount != 0 {
		t.Errorf("WriteBytes should not reach the device, got %d device writes", dev.writeCount)
	}
}
