//go:build !headless

// ebiten.go - windowed video backend for the Space Invaders panel.
//
// Grounded on video_backend_ebiten.go: an ebiten.Game implementation that
// owns the window and uploads a freshly rasterized framebuffer on every
// Draw call, guarded by a mutex the emulator thread only ever holds for
// the duration of a swap (SPEC_FULL.md / spec.md §5 concurrency model).

package video

import (
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

const windowScale = 3

// EbitenOutput is the production Output backend: a resizable window
// scaled up from the native 256x224 panel.
type EbitenOutput struct {
	mu      sync.RWMutex
	pixels  []byte // current published frame, PanelWidth*PanelHeight*4
	started bool
	ready   chan struct{}
}

func NewEbitenOutput() (Output, error) {
	return &EbitenOutput{
		pixels: make([]byte, PanelWidth*PanelHeight*4),
		ready:  make(chan struct{}, 1),
	}, nil
}

func (e *EbitenOutput) Start() error {
	if e.started {
		return nil
	}
	e.started = true
	ebiten.SetWindowSize(PanelWidth*windowScale, PanelHeight*windowScale)
	ebiten.SetWindowTitle("Space Invaders")
	ebiten.SetWindowResizable(true)
	ebiten.SetVsyncEnabled(true)

	go func() {
		_ = ebiten.RunGame(e)
	}()
	return nil
}

// Publish swaps in a freshly rasterized frame. The lock is held only for
// the duration of the copy, never across a CPU tick -- the emulator
// thread calls this once per completed frame, after the CPU has already
// finished running that frame's ticks.
func (e *EbitenOutput) Publish(vram []byte) error {
	frame := Rasterize(vram)
	e.mu.Lock()
	e.pixels = frame
	e.mu.Unlock()
	select {
	case e.ready <- struct{}{}:
	default:
	}
	return nil
}

func (e *EbitenOutput) Close() error {
	return nil
}

// Update implements ebiten.Game. Input is read by the input package's
// KeyboardSource, not here, to keep this backend a thin adapter.
func (e *EbitenOutput) Update() error {
	return nil
}

func (e *EbitenOutput) Draw(screen *ebiten.Image) {
	e.mu.RLock()
	src := image.NewRGBA(image.Rect(0, 0, PanelWidth, PanelHeight))
	copy(src.Pix, e.pixels)
	e.mu.RUnlock()

	bounds := screen.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	screen.WritePixels(dst.Pix)
}

func (e *EbitenOutput) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
