// Package frontend runs an emulator in a pixel window.
package frontend

import (
	"log"
	"math/rand"
	"time"

	"github.com/n-ulricksen/emu6502/emu"
)

// Options configure the window frontend.
type Options struct {
	Debug                bool    // Show the register panel.
	InstructionsPerFrame int     // Instructions executed between two frames.
	FPS                  float64 // Frames per second.
}

func DefaultOptions() Options {
	return Options{
		InstructionsPerFrame: 1000,
		FPS:                  60,
	}
}

// Run opens a window and drives e until the window is closed. It must be
// called from the function passed to pixelgl.Run. When the program halts the
// last frame stays on screen.
func Run(e *emu.Emulator, opts Options) error {
	display, err := NewDisplay(opts.Debug)
	if err != nil {
		return err
	}
	keyboard := NewKeyboard()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	random := func() byte { return byte(rng.Intn(256)) }

	interval := time.Duration(float64(time.Second) / opts.FPS)
	log.Println("Frame refresh time:", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Use a time ticker to keep frames rendered steadily at a set FPS.
	for !display.Closed() {
		if code, ok := keyboard.Poll(display.Window()); ok {
			e.PressKey(code)
		}

		if !e.Halted() {
			if _, err := e.RunFrame(opts.InstructionsPerFrame, random); err != nil {
				return err
			}
			if e.Halted() {
				log.Printf("Program halted after %d instructions", e.Cpu.InstructionCount())
			}
		}

		display.Update(e.Video.Frame(), e.Video.Dirty(), e.Cpu)
		e.Video.ClearDirty()

		<-ticker.C
	}

	return nil
}
