// machine.go - the frame driver: wires the CPU, arcade bus, shift
// device, video output, audio engine, and input source into the 60Hz
// loop described in SPEC_FULL.md §4.5.
//
// Grounded on runtime_ipc.go's two-goroutine producer/consumer split
// (emulator thread vs UI thread) and machine_bus.go's mutex-per-shared-
// item discipline: no lock is held across a CPU tick.

package machine

import (
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/spaceinvaders/emu8080/internal/audio"
	"github.com/spaceinvaders/emu8080/internal/bus"
	"github.com/spaceinvaders/emu8080/internal/cpu"
	"github.com/spaceinvaders/emu8080/internal/input"
	"github.com/spaceinvaders/emu8080/internal/shift"
	"github.com/spaceinvaders/emu8080/internal/video"
)

// Ports the shift device and audio edge-decoder answer on, per §6.
const (
	portShiftOffset = 2
	portShiftData   = 4
	portSound1      = 3
	portSound2      = 5
	portWatchdog    = 6
)

const (
	ticksFirstHalf  = 16667
	ticksSecondHalf = 16666
	frameBudget     = 16667 * time.Microsecond
	rstMidFrame     = 0xCF // RST 1
	rstEndFrame     = 0xD7 // RST 2
)

// Machine composes every component described in SPEC_FULL.md §3 and
// drives them through the per-frame contract in §4.5.
type Machine struct {
	cpu   *cpu.CPU
	bus   *bus.ArcadeBus
	shift *shift.Device
	audio audio.Engine
	video video.Output
	input input.Source

	edge audio.EdgeDecoder

	mu     sync.Mutex
	port1latch byte
	port2latch byte

	logLevel string
}

// New builds a Machine with an already-ROM-loaded bus and the given
// backend implementations. Construction never fails; backend open
// failures (audio device unavailable) are handled inside each backend
// per spec.md §7 and surface only as a disabled backend.
func New(b *bus.ArcadeBus, a audio.Engine, v video.Output, in input.Source, logLevel string) *Machine {
	arcadeBus := b
	m := &Machine{
		bus:      arcadeBus,
		shift:    shift.New(),
		audio:    a,
		video:    v,
		input:    in,
		logLevel: logLevel,
	}
	m.cpu = cpu.New(arcadeBus)
	return m
}

// Run drives the emulator at 60Hz until stop is closed. It is meant to
// run on its own goroutine; Start/Close on the video and audio backends
// are called from here so their lifecycle matches the run's.
func (m *Machine) Run(stop <-chan struct{}) error {
	var g errgroup.Group
	g.Go(func() error { return m.video.Start() })
	g.Go(func() error { return m.audio.Start() })
	if err := g.Wait(); err != nil {
		return err
	}
	defer m.video.Close()
	defer m.audio.Close()

	for {
		select {
		case <-stop:
			return nil
		default:
		}
		if m.input.Quit() {
			return nil
		}

		deadline := time.Now().Add(frameBudget)
		m.runHalfFrame(ticksFirstHalf)
		m.cpu.ReceiveInterrupt(rstMidFrame)
		m.runHalfFrame(ticksSecondHalf)
		m.cpu.ReceiveInterrupt(rstEndFrame)

		if err := m.video.Publish(m.bus.VideoRAM()); err != nil {
			m.logf("error", "video publish: %v", err)
		}

		if remaining := time.Until(deadline); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// runHalfFrame ticks the CPU n times, refreshing input latches and
// draining any pending OUT write on every tick. No mutex is held across
// a cpu.Tick call: the per-tick work takes the lock only to read or
// write the shared latches, never around the tick itself.
func (m *Machine) runHalfFrame(n int) {
	for i := 0; i < n; i++ {
		m.refreshInputs()
		m.cpu.Tick()
		m.drainOutput()
	}
}

func (m *Machine) refreshInputs() {
	m.mu.Lock()
	m.port1latch = m.input.Port1()
	m.port2latch = m.input.Port2()
	m.mu.Unlock()

	m.mu.Lock()
	p1, p2 := m.port1latch, m.port2latch
	m.mu.Unlock()

	m.cpu.Devices[0] = 0x8F
	m.cpu.Devices[1] = p1
	m.cpu.Devices[2] = p2
	m.cpu.Devices[3] = m.shift.Read()
}

func (m *Machine) drainOutput() {
	if !m.cpu.OutputPending {
		return
	}
	port, value := m.cpu.OutputPort, m.cpu.OutputValue
	m.cpu.OutputPending = false

	switch port {
	case portShiftOffset:
		m.shift.WriteOffset(value)
	case portShiftData:
		m.shift.WriteData(value)
	case portSound1:
		fires, loopOn, loopChanged := m.edge.Port3Fires(value)
		for _, s := range fires {
			m.audio.PlayOneShot(s)
		}
		if loopChanged {
			m.audio.SetLooping(audio.SampleUFOLoop, loopOn)
		}
	case portSound2:
		for _, s := range m.edge.Port5Fires(value) {
			m.audio.PlayOneShot(s)
		}
	case portWatchdog:
		// Watchdog kick: no observable effect without a reset timer.
	default:
		m.logf("debug", "unhandled OUT port %d = 0x%02X", port, value)
	}
}

func (m *Machine) logf(level, format string, args ...any) {
	if m.logLevel == "" || m.logLevel == "error" && level != "error" ||
		level == "debug" && m.logLevel != "debug" {
		return
	}
	log.Printf("["+level+"] "+format, args...)
}
