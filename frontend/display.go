package frontend

import (
	"fmt"
	"image"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/n-ulricksen/emu6502/emu"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

type Display struct {
	window      *pixelgl.Window
	frameMatrix pixel.Matrix  // Scale and position to render the video frame.
	sprite      *pixel.Sprite // Last uploaded frame.

	debug bool
	panel *text.Text // Register panel, nil unless debugging.
}

const (
	// Main display settings
	videoResW  float64 = emu.VideoWidth
	videoResH  float64 = emu.VideoHeight
	scale      float64 = 12 // Scale at which to render the video frame.
	screenW    float64 = videoResW * scale
	screenH    float64 = videoResH * scale
	screenPosX float64 = 600 // Where to render the display on the user's monitor.
	screenPosY float64 = 400

	// Debug display settings
	debugResW float64 = 256
	debugPad  float64 = 8
)

func NewDisplay(debug bool) (*Display, error) {
	width := screenW
	if debug {
		width += debugResW
	}

	config := pixelgl.WindowConfig{
		Title:    "6502 Emulator",
		Bounds:   pixel.R(0, 0, width, screenH),
		Position: pixel.V(screenPosX, screenPosY),
		VSync:    true,
	}
	window, err := pixelgl.NewWindow(config)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create window")
	}

	// Calculate matrix required to render the frame based on the set scale.
	bounds := pixel.R(0, 0, videoResW, videoResH)

	matrix := pixel.IM.Moved(bounds.Center().Scaled(scale))
	matrix = matrix.Scaled(bounds.Center().Scaled(scale), scale)

	d := &Display{
		window:      window,
		frameMatrix: matrix,
		debug:       debug,
	}

	if debug {
		atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
		d.panel = text.New(pixel.V(screenW+debugPad, screenH-2*debugPad), atlas)
		d.panel.Color = colornames.Lightgreen
	}

	return d, nil
}

func (d *Display) Window() *pixelgl.Window { return d.window }

func (d *Display) Closed() bool { return d.window.Closed() }

// Update draws frame, and the register panel when debugging, then swaps
// buffers and polls window events. The frame is only uploaded again when
// dirty is set.
func (d *Display) Update(frame *image.RGBA, dirty bool, cpu *emu.Cpu6502) {
	d.window.Clear(colornames.Black)

	if dirty || d.sprite == nil {
		pic := pixel.PictureDataFromImage(frame)
		d.sprite = pixel.NewSprite(pic, pic.Bounds())
	}
	d.sprite.Draw(d.window, d.frameMatrix)

	if d.debug {
		d.drawPanel(cpu)
	}

	d.window.Update()
}

func (d *Display) drawPanel(cpu *emu.Cpu6502) {
	d.panel.Clear()

	fmt.Fprintf(d.panel, "Flags: NV-BDIZC\n       %08b\n\n", cpu.Status)
	fmt.Fprintf(d.panel, "PC: $%04X\n", cpu.Pc)
	fmt.Fprintf(d.panel, "A:  $%02X\n", cpu.A)
	fmt.Fprintf(d.panel, "X:  $%02X\n", cpu.X)
	fmt.Fprintf(d.panel, "Y:  $%02X\n", cpu.Y)
	fmt.Fprintf(d.panel, "SP: $%02X\n\n", cpu.Sp)

	inst := emu.InstructionFor(cpu.Opcode())
	fmt.Fprintf(d.panel, "Last: %02X %s {%v}\n", cpu.Opcode(), inst.Name, inst.Mode)
	fmt.Fprintf(d.panel, "Instructions: %d\n", cpu.InstructionCount())
	fmt.Fprintf(d.panel, "State: %v\n", cpu.State())

	d.panel.Draw(d.window, pixel.IM)
}
