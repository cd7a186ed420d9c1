// Package terminal prints the video frame to a text terminal for headless
// runs.
package terminal

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal writes frames to an output, in colour when the output is a real
// terminal that is wide enough.
type Terminal struct {
	output     io.Writer
	realOutput bool
	width      int
}

// New returns a Terminal writing to f.
func New(f *os.File) *Terminal {
	t := &Terminal{output: f}

	fd := int(f.Fd())
	t.realOutput = term.IsTerminal(fd)
	if t.realOutput {
		if w, _, err := term.GetSize(fd); err == nil {
			t.width = w
		}
	}

	return t
}

// Draw writes img to the terminal output.
func (t *Terminal) Draw(img *image.RGBA) error {
	if t.realOutput && t.width >= img.Bounds().Dx() {
		return RenderANSI(t.output, img)
	}
	return RenderPlain(t.output, img)
}

// RenderANSI draws img with 24-bit colour escapes. Each character cell holds
// two pixels stacked vertically: the upper one as foreground of a half block,
// the lower one as background.
func RenderANSI(w io.Writer, img *image.RGBA) error {
	b := img.Bounds()
	out := bufio.NewWriter(w)

	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.RGBAAt(x, y)
			bottom := top
			if y+1 < b.Max.Y {
				bottom = img.RGBAAt(x, y+1)
			}
			fmt.Fprintf(out, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
		}
		out.WriteString("\x1b[0m\n")
	}

	return out.Flush()
}

// RenderPlain draws img one character per pixel: '.' for black and '#' for
// anything else.
func RenderPlain(w io.Writer, img *image.RGBA) error {
	b := img.Bounds()
	out := bufio.NewWriter(w)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R == 0 && c.G == 0 && c.B == 0 {
				out.WriteByte('.')
			} else {
				out.WriteByte('#')
			}
		}
		out.WriteByte('\n')
	}

	return out.Flush()
}
