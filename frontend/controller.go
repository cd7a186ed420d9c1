package frontend

import (
	"github.com/faiface/pixel/pixelgl"
	"github.com/n-ulricksen/emu6502/emu"
)

// Keyboard turns window key events into the ASCII codes programs read from
// the key latch.
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

type keyBinding struct {
	button pixelgl.Button
	code   byte
}

// Key binds for keys that do not type a character, in priority order: when
// several are pressed in the same frame the last one wins.
// Arrow keys double as the usual w/a/s/d movement keys.
var keyBindings = []keyBinding{
	{pixelgl.KeyUp, 'w'},
	{pixelgl.KeyLeft, 'a'},
	{pixelgl.KeyDown, 's'},
	{pixelgl.KeyRight, 'd'},
	{pixelgl.KeyEnter, 0x0D},
	{pixelgl.KeyBackspace, 0x08},
	{pixelgl.KeyEscape, 0x1B},
}

// Poll returns the code of the most recent key pressed since the last window
// update, if any.
func (k *Keyboard) Poll(win *pixelgl.Window) (byte, bool) {
	var bound []byte
	for _, b := range keyBindings {
		if win.JustPressed(b.button) {
			bound = append(bound, b.code)
		}
	}

	return emu.LatchCode(win.Typed(), bound)
}
