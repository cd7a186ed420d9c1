package terminal

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"strings"
	"testing"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetRGBA(x, y, color.RGBA{A: 0xFF})
		}
	}
	img.SetRGBA(1, 0, color.RGBA{R: 0xFF, A: 0xFF})
	img.SetRGBA(2, 1, color.RGBA{R: 1, G: 2, B: 3, A: 0xFF})

	return img
}

func TestRenderPlain(t *testing.T) {
	var buf bytes.Buffer

	if err := RenderPlain(&buf, testImage()); err != nil {
		t.Fatal(err)
	}

	want := ".#.\n..#\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q\n", buf.String(), want)
	}
}

func TestRenderANSI(t *testing.T) {
	var buf bytes.Buffer

	if err := RenderANSI(&buf, testImage()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{strings.Count(out, "\n"), 1}, // two pixel rows share one line
		{strings.Count(out, "▀"), 3},
		{strings.Contains(out, "\x1b[38;2;255;0;0m\x1b[48;2;0;0;0m▀"), true},
		{strings.Contains(out, "\x1b[38;2;0;0;0m\x1b[48;2;1;2;3m▀"), true},
		{strings.HasSuffix(out, "\x1b[0m\n"), true},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v\n", test.got, test.want)
		}
	}
}

func TestDrawToFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "frame")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	// A regular file is never a terminal.
	if err := New(f).Draw(testImage()); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != ".#.\n..#\n" {
		t.Errorf("got %q, want plain frame\n", got)
	}
}
