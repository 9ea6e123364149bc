// bus.go - the byte-addressed 16-bit memory interface the CPU core talks
// to. Grounded on the teacher's MachineBus (machine_bus.go): bus
// polymorphism is a small capability interface, not a concrete type, so
// production code and tests can swap implementations freely.

package bus

// Bus is the read/write abstraction cpu.CPU depends on (it is the same
// shape as cpu.Bus; kept here too so callers can build a bus without
// importing the cpu package).
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
}
