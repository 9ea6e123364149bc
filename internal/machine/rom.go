// rom.go - loads the four 2048-byte ROM files and concatenates them
// into the bus's ROM bank in H,G,F,E order.
//
// Grounded on file_io.go's file-reading helpers, generalized to this
// platform's fixed four-file layout. Per spec.md §6/§7: a missing file
// is a fatal configuration failure, not a recoverable one.

package machine

import (
	"fmt"
	"os"
	"path/filepath"
)

const romFileSize = 2048

// romFiles is the concatenation order from spec.md §6: H, G, F, E.
var romFiles = []string{"invaders.h", "invaders.g", "invaders.f", "invaders.e"}

// LoadROM reads the four ROM files from dir and returns their
// concatenation (8192 bytes). Any missing or short file is a
// configuration failure.
func LoadROM(dir string) ([]byte, error) {
	out := make([]byte, 0, romFileSize*len(romFiles))
	for _, name := range romFiles {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("configuration failure: missing ROM file %s: %w", path, err)
		}
		if len(data) != romFileSize {
			return nil, fmt.Errorf("configuration failure: %s is %d bytes, want %d", path, len(data), romFileSize)
		}
		out = append(out, data...)
	}
	return out, nil
}
