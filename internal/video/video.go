// video.go - the video adapter's interface and the pure rasterization
// logic shared by every backend. Rasterization itself -- turning 7168
// bytes of 1bpp VRAM into pixels -- is explicitly in scope here; the
// windowed display and framebuffer rasterization backend are the thin
// "external collaborator" adapters named in spec.md §1.
//
// Grounded on video_chip.go's double-buffered RGBA framebuffer and
// video_backend_ebiten.go's window/backend split.

package video

const (
	PanelWidth  = 256
	PanelHeight = 224
)

// Output is the capability every video backend provides. Publish is
// called once per completed frame by the frame driver; Start/Close
// manage backend lifecycle (opening a window, or nothing at all for the
// headless backend).
type Output interface {
	Start() error
	Publish(vram []byte) error
	Close() error
}

// Rasterize turns the 7168-byte 1bpp video RAM region into an RGBA
// buffer rotated -90 degrees from the native panel orientation (the
// native panel is 224 columns x 256 rows, memory-mapped column-major on
// the physical, rotated cabinet; see SPEC_FULL.md §6). The returned
// slice is PanelWidth*PanelHeight*4 bytes, row-major, landscape
// (width=PanelWidth=256, height=PanelHeight=224) after rotation.
//
// Native pixel (x,y) with x in [0,255] (the 256-long column axis), y in
// [0,223] (the 224-wide row axis) is bit x%8 of byte
// 0x2400+(y*32)+(x/8) -- vram is already that region with 0x2400
// subtracted, so byte index is y*32+(x/8). A -90 degree (counter-
// clockwise) rotation maps native (x,y) onto output (x, 223-y): the
// native column axis becomes the output's row axis, reversed, and the
// native row axis becomes the output's column axis unchanged.
func Rasterize(vram []byte) []byte {
	out := make([]byte, PanelWidth*PanelHeight*4)
	for y := 0; y < PanelHeight; y++ {
		for x := 0; x < PanelWidth; x++ {
			byteIdx := y*32 + x/8
			bit := (vram[byteIdx] >> uint(x%8)) & 1
			oy := PanelHeight - 1 - y
			r, g, b := tint(x, oy, bit == 1)
			o := (oy*PanelWidth + x) * 4
			out[o+0] = r
			out[o+1] = g
			out[o+2] = b
			out[o+3] = 0xFF
		}
	}
	return out
}

// tint applies the positional color-overlay convention from §6: rows
// with y<80 are green, 200<y<=220 are red, everything else white, and
// off pixels are always black. This is a display convention only, not a
// hardware behavior, per spec.md's Non-goals ("color overlay fidelity
// beyond the simple positional scheme").
func tint(_ int, y int, on bool) (r, g, b byte) {
	if !on {
		return 0, 0, 0
	}
	switch {
	case y < 80:
		return 0, 0xFF, 0
	case y > 200 && y <= 220:
		return 0xFF, 0, 0
	default:
		return 0xFF, 0xFF, 0xFF
	}
}
