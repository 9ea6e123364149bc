// Command spaceinvaders runs the Intel 8080 Space Invaders arcade core
// against a window, resolving ROM files from the current directory.
//
// Grounded on application.rs's startup sequence: fatal on missing ROM
// files, `SI_LOG_LEVEL`-gated logging per psg_player.go's debug-flag
// convention, and a best-effort clipboard ROM-path convenience guarded
// by sync.Once the way video_backend_ebiten.go guards clipboardOnce.

package main

import (
	"fmt"
	"log"
	"os"
	"sync"

	"golang.design/x/clipboard"

	"github.com/spaceinvaders/emu8080/internal/audio"
	"github.com/spaceinvaders/emu8080/internal/bus"
	"github.com/spaceinvaders/emu8080/internal/input"
	"github.com/spaceinvaders/emu8080/internal/machine"
	"github.com/spaceinvaders/emu8080/internal/video"
)

var clipboardOnce sync.Once

// resolveROMDir finds a directory containing invaders.h, starting with
// the working directory and falling back to a clipboard paste if it is
// not found there. If neither has it, the working directory is returned
// and LoadROM reports the missing files.
func resolveROMDir() string {
	wd, err := os.Getwd()
	if err == nil {
		if _, statErr := os.Stat(wd + "/invaders.h"); statErr == nil {
			return wd
		}
	}

	var pasted string
	clipboardOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			return
		}
		if data := clipboard.Read(clipboard.FmtText); data != nil {
			pasted = string(data)
		}
	})
	if pasted != "" {
		if _, statErr := os.Stat(pasted + "/invaders.h"); statErr == nil {
			return pasted
		}
	}
	return wd
}

func main() {
	logLevel := os.Getenv("SI_LOG_LEVEL")

	romDir := resolveROMDir()
	rom, err := machine.LoadROM(romDir)
	if err != nil {
		log.Fatalf("spaceinvaders: %v", err)
	}

	arcadeBus := bus.NewArcadeBus()
	arcadeBus.LoadROM(0, rom)

	videoOut, err := video.NewEbitenOutput()
	if err != nil {
		log.Fatalf("spaceinvaders: video init: %v", err)
	}
	audioEngine, err := audio.NewOtoEngine()
	if err != nil {
		log.Fatalf("spaceinvaders: audio init: %v", err)
	}
	keyboard := input.NewKeyboardSource()

	m := machine.New(arcadeBus, audioEngine, videoOut, keyboard, logLevel)

	stop := make(chan struct{})
	if err := m.Run(stop); err != nil {
		fmt.Fprintln(os.Stderr, "spaceinvaders:", err)
		os.Exit(1)
	}
}
