//go:build headless

// headless.go - audio disabled entirely, used by tests/CI so no sound
// device is ever opened.

package audio

// NoopEngine discards every playback request but records the most
// recent one, so tests can assert on what the frame driver tried to
// play without a real audio device.
type NoopEngine struct {
	LastOneShot int
	Looping     [SampleCount]bool
}

func NewOtoEngine() (Engine, error) {
	return &NoopEngine{LastOneShot: -1}, nil
}

func (n *NoopEngine) Start() error { return nil }

func (n *NoopEngine) PlayOneShot(sample int) {
	n.LastOneShot = sample
}

func (n *NoopEngine) SetLooping(sample int, on bool) {
	n.Looping[sample] = on
}

func (n *NoopEngine) Close() error { return nil }
