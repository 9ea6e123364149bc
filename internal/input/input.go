// input.go - the keyboard-to-input-port adapter. In scope here is the
// bit layout (spec.md §6); out of scope (per spec.md §1) is the actual
// keyboard library binding, which lives in ebiten.go.

package input

// Source is the capability the frame driver polls once per frame to
// refresh the two input-port latches and detect a quit request.
type Source interface {
	Port1() byte
	Port2() byte
	Quit() bool
}

// Port1 bit layout, from spec.md §6.
const (
	Port1Coin     = 1 << 0 // active-low
	Port1Start2P  = 1 << 1
	Port1Start1P  = 1 << 2
	Port1Always1  = 1 << 3
	Port1P1Fire   = 1 << 4
	Port1P1Left   = 1 << 5
	Port1P1Right  = 1 << 6
)

// Port2 bit layout, from spec.md §6.
const (
	Port2P2Fire  = 1 << 4
	Port2P2Left  = 1 << 5
	Port2P2Right = 1 << 6
)

// idlePort1 is the port-1 byte with nothing pressed: bit 3 always set,
// and the active-low coin bit idle-high.
const idlePort1 = Port1Always1 | Port1Coin

// StaticSource is a fixed-state Source holding already-composed port
// bytes, used by tests and by the headless build where no real keyboard
// exists. Callers are responsible for the active-low coin bit's polarity
// when composing P1.
type StaticSource struct {
	P1, P2   byte
	Quitting bool
}

// NewStaticSource returns a source reporting the idle (no key pressed)
// state.
func NewStaticSource() *StaticSource {
	return &StaticSource{P1: idlePort1}
}

func (s *StaticSource) Port1() byte { return s.P1 }
func (s *StaticSource) Port2() byte { return s.P2 }
func (s *StaticSource) Quit() bool  { return s.Quitting }
