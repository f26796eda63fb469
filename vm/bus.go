package vm

// Bus address-routes accesses between memory-mapped devices and main
// memory (spec.md §4.1). Device lookup is linear, first-match-wins, the
// same scan style the teacher's Memory.findSegment uses for regions —
// grounded additionally on the device-table dispatch pattern in the
// retrieval pack's Game-Boy-Advance-style bus (IntuitionEngine's
// MachineBus / the LJS360d-RoBA bus.go reference), simplified here to a
// plain slice since this core only ever registers a handful of devices.
type Bus struct {
	memory  *Memory
	devices []deviceEntry
}

// NewBus wires a Bus to its backing memory. memory may be nil only for
// bus-only unit tests that exercise device dispatch in isolation; any
// access that falls through to memory with a nil reference is
// ErrDevice, per spec.md §4.1.
func NewBus(memory *Memory) *Bus {
	return &Bus{memory: memory}
}

// RegisterDevice maps a device at `base` in bus address space.
func (b *Bus) RegisterDevice(base uint64, d Device) {
	b.devices = append(b.devices, deviceEntry{base: base, device: d})
}

// findDevice returns the first registered device whose range contains
// addr, and the address translated to that device's own offset.
func (b *Bus) findDevice(addr uint64) (Device, uint64, bool) {
	for _, e := range b.devices {
		if addr >= e.base && addr < e.base+e.device.Size() {
			return e.device, addr - e.base, true
		}
	}
	return nil, 0, false
}

// Read dispatches a sized read through the bus: device match first, then
// main memory.
func (b *Bus) Read(addr uint64, size int) (uint64, error) {
	if d, offset, ok := b.findDevice(addr); ok {
		return d.Read(offset)
	}
	if b.memory == nil {
		return 0, errDevice("bus has no backing memory")
	}
	return b.memory.Read(addr, size)
}

// Write dispatches a sized write through the bus.
func (b *Bus) Write(addr uint64, value uint64, size int) error {
	if d, offset, ok := b.findDevice(addr); ok {
		return d.Write(offset, value)
	}
	if b.memory == nil {
		return errDevice("bus has no backing memory")
	}
	return b.memory.Write(addr, value, size)
}

// ReadInstruction fetches a 32-bit instruction word through the bus.
// Devices are not expected to carry executable code in this core, but
// the lookup is still attempted first for uniformity before falling
// through to memory.
func (b *Bus) ReadInstruction(addr uint64) (uint32, error) {
	if _, _, ok := b.findDevice(addr); ok {
		v, err := b.Read(addr, 4)
		return uint32(v), err
	}
	if b.memory == nil {
		return 0, errDevice("bus has no backing memory")
	}
	return b.memory.ReadInstruction(addr)
}

// ReadBytes/WriteBytes bypass device dispatch: SIMD LD1/ST1 always
// target main memory in this core (spec.md §4.7 names no device-backed
// vector transfer), but still report ErrDevice if memory is unattached.
func (b *Bus) ReadBytes(addr uint64, n int) ([]byte, error) {
	if b.memory == nil {
		return nil, errDevice("bus has no backing memory")
	}
	return b.memory.ReadBytes(addr, n)
}

func (b *Bus) WriteBytes(addr uint64, data []byte) error {
	if b.memory == nil {
		return errDevice("bus has no backing memory")
	}
	return b.memory.WriteBytes(addr, data)
}
