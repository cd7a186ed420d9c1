package emu

import (
	"image"
	"image/color"

	"golang.org/x/image/colornames"
)

// ByteReader gives read-only access to memory.
type ByteReader interface {
	GetByte(addr uint32) byte
}

const (
	VideoWidth  = 32
	VideoHeight = 32
)

// 16 colour palette, indexed by the low nibble of a video byte.
var palette = [16]color.RGBA{
	colornames.Black,
	colornames.White,
	colornames.Red,
	colornames.Cyan,
	colornames.Purple,
	colornames.Green,
	colornames.Blue,
	colornames.Yellow,
	colornames.Orange,
	colornames.Brown,
	colornames.Lightcoral, // light red
	colornames.Dimgray,    // dark grey
	colornames.Gray,
	colornames.Lightgreen,
	colornames.Lightblue,
	colornames.Lightgray,
}

// PaletteColor returns the colour a video byte is displayed with.
func PaletteColor(b byte) color.RGBA {
	return palette[b&0x0F]
}

// VideoController keeps a pixel representation of the video region. It only
// observes memory; it never writes to it.
type VideoController struct {
	mem ByteReader

	rgba    *image.RGBA // One pixel per byte of the video region.
	dirty   bool        // Whether the frame changed since the last ClearDirty.
	updates uint64
}

func NewVideoController(mem ByteReader) *VideoController {
	return &VideoController{
		mem:  mem,
		rgba: image.NewRGBA(image.Rect(0, 0, VideoWidth, VideoHeight)),
	}
}

// Reset paints the whole frame black.
func (v *VideoController) Reset() {
	black := palette[0]
	for y := 0; y < VideoHeight; y++ {
		for x := 0; x < VideoWidth; x++ {
			v.rgba.SetRGBA(x, y, black)
		}
	}

	v.dirty = false
	v.updates = 0
}

// UpdatePixel repaints the pixel backed by addr. Addresses outside the video
// region are ignored.
func (v *VideoController) UpdatePixel(addr uint16) {
	if addr < VideoStart || addr > VideoEnd {
		return
	}

	offset := int(addr - VideoStart)
	x := offset % VideoWidth
	y := offset / VideoWidth

	v.rgba.SetRGBA(x, y, PaletteColor(v.mem.GetByte(uint32(addr))))

	v.dirty = true
	v.updates++
}

// Frame returns the current pixels. The image is owned by the controller.
func (v *VideoController) Frame() *image.RGBA { return v.rgba }

func (v *VideoController) Dirty() bool { return v.dirty }

func (v *VideoController) ClearDirty() { v.dirty = false }

// Updates is the number of pixel updates since the last reset.
func (v *VideoController) Updates() uint64 { return v.updates }
