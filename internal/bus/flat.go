// flat.go - a flat, fully read/write 64KiB bus with no ROM or mirroring,
// used by the CPU unit tests in the cpu package (SPEC_FULL.md §4.2: "An
// alternative 'basic' bus ... exists for tests").

package bus

// FlatBus is a plain 64KiB byte-addressed memory with no access
// restrictions, mirroring the teacher's test rigs (e.g. z80TestBus in
// cpu_z80_test_helpers_test.go) that give the CPU a flat scratch space.
type FlatBus struct {
	mem [0x10000]byte
}

func NewFlatBus() *FlatBus {
	return &FlatBus{}
}

func (b *FlatBus) Read(addr uint16) byte      { return b.mem[addr] }
func (b *FlatBus) Write(addr uint16, v byte)  { b.mem[addr] = v }

// Load copies program bytes into memory starting at addr, a convenience
// used by CPU property tests to set up an instruction stream.
func (b *FlatBus) Load(addr uint16, data []byte) {
	copy(b.mem[addr:], data)
}
