package machine

import (
	"testing"

	"github.com/spaceinvaders/emu8080/internal/audio"
	"github.com/spaceinvaders/emu8080/internal/bus"
	"github.com/spaceinvaders/emu8080/internal/input"
)

// fakeAudio records PlayOneShot/SetLooping calls without touching any
// real device, so port-routing tests don't need the headless build tag.
type fakeAudio struct {
	oneShots []int
	looping  map[int]bool
}

func newFakeAudio() *fakeAudio { return &fakeAudio{looping: map[int]bool{}} }

func (f *fakeAudio) Start() error { return nil }
func (f *fakeAudio) PlayOneShot(s int) { f.oneShots = append(f.oneShots, s) }
func (f *fakeAudio) SetLooping(s int, on bool) { f.looping[s] = on }
func (f *fakeAudio) Close() error { return nil }

type fakeVideo struct {
	published int
}

func (f *fakeVideo) Start() error                 { return nil }
func (f *fakeVideo) Publish(vram []byte) error     { f.published++; return nil }
func (f *fakeVideo) Close() error                 { return nil }

func newTestMachine() (*Machine, *fakeAudio, *fakeVideo) {
	b := bus.NewArcadeBus()
	fa := newFakeAudio()
	fv := &fakeVideo{}
	m := New(b, fa, fv, input.NewStaticSource(), "")
	return m, fa, fv
}

func TestRefreshInputsSetsConstantAndShiftPorts(t *testing.T) {
	m, _, _ := newTestMachine()
	m.shift.WriteData(0xAB)
	m.refreshInputs()
	if m.cpu.Devices[0] != 0x8F {
		t.Fatalf("device 0 = 0x%02X, want 0x8F", m.cpu.Devices[0])
	}
	if m.cpu.Devices[1]&input.Port1Always1 == 0 {
		t.Fatal("port 1 always-set bit missing")
	}
	if m.cpu.Devices[3] != 0xAB {
		t.Fatalf("device 3 = 0x%02X, want 0xAB (shift read at offset 0)", m.cpu.Devices[3])
	}
}

func TestDrainOutputRoutesShiftPorts(t *testing.T) {
	m, _, _ := newTestMachine()
	m.cpu.OutputPort, m.cpu.OutputValue, m.cpu.OutputPending = portShiftData, 0xAA, true
	m.drainOutput()
	m.cpu.OutputPort, m.cpu.OutputValue, m.cpu.OutputPending = portShiftData, 0xBB, true
	m.drainOutput()
	m.cpu.OutputPort, m.cpu.OutputValue, m.cpu.OutputPending = portShiftOffset, 0x03, true
	m.drainOutput()

	if got := m.shift.Read(); got != 0xDD {
		t.Fatalf("shift read = 0x%02X, want 0xDD", got)
	}
}

func TestDrainOutputFiresOneShotSamples(t *testing.T) {
	m, fa, _ := newTestMachine()
	m.cpu.OutputPort, m.cpu.OutputValue, m.cpu.OutputPending = portSound1, 0b0000_0010, true
	m.drainOutput()
	if len(fa.oneShots) != 1 || fa.oneShots[0] != audio.SampleShot {
		t.Fatalf("oneShots = %v, want [SampleShot]", fa.oneShots)
	}
}

func TestDrainOutputStartsAndStopsLoop(t *testing.T) {
	m, fa, _ := newTestMachine()
	m.cpu.OutputPort, m.cpu.OutputValue, m.cpu.OutputPending = portSound1, 0b0000_0001, true
	m.drainOutput()
	if !fa.looping[audio.SampleUFOLoop] {
		t.Fatal("loop should have started")
	}
	m.cpu.OutputPort, m.cpu.OutputValue, m.cpu.OutputPending = portSound1, 0b0000_0000, true
	m.drainOutput()
	if fa.looping[audio.SampleUFOLoop] {
		t.Fatal("loop should have stopped")
	}
}

func TestDrainOutputIgnoresWatchdogAndUnknownPorts(t *testing.T) {
	m, fa, _ := newTestMachine()
	m.cpu.OutputPort, m.cpu.OutputValue, m.cpu.OutputPending = portWatchdog, 0x00, true
	m.drainOutput()
	if len(fa.oneShots) != 0 {
		t.Fatal("watchdog write must not trigger audio")
	}
	m.cpu.OutputPort, m.cpu.OutputValue, m.cpu.OutputPending = 0x07, 0xFF, true
	m.drainOutput()
	if len(fa.oneShots) != 0 || len(fa.looping) != 0 {
		t.Fatal("unknown port write must not trigger audio")
	}
	if m.cpu.OutputPending {
		t.Fatal("unknown port write must still be drained")
	}
}

func TestRunHalfFrameTicksExactCount(t *testing.T) {
	m, _, _ := newTestMachine()
	// A zeroed ROM decodes as NOP (opcode 0x00), 4 cycles each, so n
	// ticks of runHalfFrame advance PC by n/4.
	m.runHalfFrame(400)
	if m.cpu.PC != 100 {
		t.Fatalf("PC = %d, want 100 after 400 ticks of 4-cycle NOPs", m.cpu.PC)
	}
}
