package loader

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestParseHex(t *testing.T) {
	src := []byte(`; add two numbers
a9 05   # LDA #$05
0x18, $69 03
0X00
`)

	program, err := ParseHex(src)
	if err != nil {
		t.Fatalf("parse: %v\n", err)
	}

	want := []byte{0xA9, 0x05, 0x18, 0x69, 0x03, 0x00}
	if !bytes.Equal(program, want) {
		t.Errorf("got % x, want % x\n", program, want)
	}
}

func TestParseHexErrors(t *testing.T) {
	tests := []struct {
		src string
	}{
		{"a9 zz"},
		{"100"},
		{"a9\n05 -1"},
		{"0x"},
	}

	for _, test := range tests {
		if _, err := ParseHex([]byte(test.src)); err == nil {
			t.Errorf("%q: got nil error, want parse error\n", test.src)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	raw := filepath.Join(dir, "prog.bin")
	hex := filepath.Join(dir, "prog.hex")
	empty := filepath.Join(dir, "empty.bin")

	if err := os.WriteFile(raw, []byte{0xA9, 0x01, 0x00}, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(hex, []byte("a9 01 ; LDA\n00\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		hex  bool
		want []byte
	}{
		{raw, false, []byte{0xA9, 0x01, 0x00}},
		{hex, true, []byte{0xA9, 0x01, 0x00}},
		{empty, false, []byte{}},
	}

	for _, test := range tests {
		got, err := LoadFile(test.path, test.hex)
		if err != nil {
			t.Errorf("%v: %v\n", test.path, err)
			continue
		}
		if !bytes.Equal(got, test.want) {
			t.Errorf("%v: got % x, want % x\n", test.path, got, test.want)
		}
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.bin"), false); err == nil {
		t.Errorf("got nil error for a missing file\n")
	}
}
