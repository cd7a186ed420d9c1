package emu

import (
	"image/color"
	"testing"

	"golang.org/x/image/colornames"
)

func TestPaletteColor(t *testing.T) {
	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{PaletteColor(0x00), colornames.Black},
		{PaletteColor(0x01), colornames.White},
		{PaletteColor(0x02), colornames.Red},
		{PaletteColor(0x0F), colornames.Lightgray},
		{PaletteColor(0x11), colornames.White}, // only the low nibble counts
		{PaletteColor(0xF2), colornames.Red},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v\n", test.got, test.want)
		}
	}
}

func TestVideoUpdatePixel(t *testing.T) {
	ram := NewRam()
	video := NewVideoController(ram)
	video.Reset()

	ram.SetByte(0x0200, 0x01)
	video.UpdatePixel(0x0200)

	ram.SetByte(0x0221, 0x02) // x=1, y=1
	video.UpdatePixel(0x0221)

	ram.SetByte(0x05FF, 0x05) // bottom right corner
	video.UpdatePixel(0x05FF)

	video.UpdatePixel(0x0100) // outside, ignored

	frame := video.Frame()

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{frame.RGBAAt(0, 0), colornames.White},
		{frame.RGBAAt(1, 1), colornames.Red},
		{frame.RGBAAt(31, 31), colornames.Green},
		{frame.RGBAAt(2, 0), colornames.Black},
		{video.Updates(), uint64(3)},
		{video.Dirty(), true},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v\n", test.got, test.want)
		}
	}

	video.ClearDirty()
	if video.Dirty() {
		t.Errorf("got dirty frame after ClearDirty\n")
	}
}

func TestVideoReset(t *testing.T) {
	ram := NewRam()
	video := NewVideoController(ram)

	ram.SetByte(0x0300, 0x07)
	video.UpdatePixel(0x0300)
	video.Reset()

	bounds := video.Frame().Bounds()
	if bounds.Dx() != VideoWidth || bounds.Dy() != VideoHeight {
		t.Fatalf("got frame %v, want %vx%v\n", bounds, VideoWidth, VideoHeight)
	}

	black := color.RGBA(colornames.Black)
	for y := 0; y < VideoHeight; y++ {
		for x := 0; x < VideoWidth; x++ {
			if got := video.Frame().RGBAAt(x, y); got != black {
				t.Fatalf("pixel (%v,%v): got %v, want %v\n", x, y, got, black)
			}
		}
	}

	if video.Dirty() || video.Updates() != 0 {
		t.Errorf("got dirty=%v updates=%v after reset\n", video.Dirty(), video.Updates())
	}
}
