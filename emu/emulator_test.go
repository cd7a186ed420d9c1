package emu

import (
	"bytes"
	"strings"
	"testing"
)

func TestEmulatorReset(t *testing.T) {
	e := runProgram(t, []byte{0xA9, 0x03, 0x8D, 0x10, 0x02, 0x00}, nil)

	e.Reset()
	once := e.Cpu.Registers()
	frame := append([]byte(nil), e.Video.Frame().Pix...)

	e.Reset()

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{e.Ram.GetByte(0x0200), byte(0)},
		{e.Ram.GetByte(0x0210), byte(0)},
		{e.Video.Updates(), uint64(0)},
		{e.Video.Frame().RGBAAt(16, 0), PaletteColor(0)},
		{e.Cpu.Registers(), Registers{Sp: 0xFF, Status: 0x20}},
		{e.Halted(), false},

		// A second reset changes nothing.
		{e.Cpu.Registers(), once},
		{bytes.Equal(e.Video.Frame().Pix, frame), true},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v\n", test.got, test.want)
		}
	}

	for addr := uint32(0); addr < MemorySize; addr++ {
		if got := e.Ram.GetByte(addr); got != 0 {
			t.Fatalf("cell %#04x: got %v, want 0\n", addr, got)
		}
	}
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer

	e := NewEmulator(Config{Trace: &buf})
	if err := e.Load([]byte{0xA9, 0x05, 0x8D, 0x00, 0x03, 0xF0, 0xFE, 0x00}); err != nil {
		t.Fatalf("load: %v\n", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %v trace lines, want 4\n%v", len(lines), buf.String())
	}

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{strings.HasPrefix(lines[0], "0200  A9  LDA  #$05"), true},
		{strings.HasPrefix(lines[1], "0202  8D  STA  $0300"), true},
		{strings.HasPrefix(lines[2], "0205  F0  BEQ  $0205"), true},
		{strings.HasPrefix(lines[3], "0207  00  BRK"), true},
		{strings.Contains(lines[1], "A:05 X:00 Y:00 P:20 SP:FF PC:0202"), true},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v\n%v", test.got, test.want, buf.String())
		}
	}
}
