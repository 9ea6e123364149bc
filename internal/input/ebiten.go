//go:build !headless

// ebiten.go - keyboard binding for the Source interface, using
// ebiten/inpututil the way video_backend_ebiten.go's keyHandler does.
// Mapping is exactly spec.md §6's table.

package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyboardSource polls ebiten's key state once per frame.
type KeyboardSource struct{}

func NewKeyboardSource() *KeyboardSource { return &KeyboardSource{} }

func (k *KeyboardSource) Port1() byte {
	b := byte(idlePort1)
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		b &^= Port1Coin // active-low: pressed clears the bit
	}
	if ebiten.IsKeyPressed(ebiten.Key2) {
		b |= Port1Start2P
	}
	if ebiten.IsKeyPressed(ebiten.Key1) {
		b |= Port1Start1P
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		b |= Port1P1Fire
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		b |= Port1P1Left
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		b |= Port1P1Right
	}
	return b
}

func (k *KeyboardSource) Port2() byte {
	var b byte
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		b |= Port2P2Fire
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		b |= Port2P2Left
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		b |= Port2P2Right
	}
	return b
}

func (k *KeyboardSource) Quit() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
