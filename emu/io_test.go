package emu

import "testing"

func TestPressKey(t *testing.T) {
	// LDA $FF; BRK
	e := newTestEmulator(t, []byte{0xA5, 0xFF, 0x00}, nil)

	e.PressKey('w')
	if err := e.Start(); err != nil {
		t.Fatalf("run: %v\n", err)
	}

	if e.Cpu.A != 'w' {
		t.Errorf("got %#02x, want %#02x\n", e.Cpu.A, 'w')
	}
}

func TestRunFrame(t *testing.T) {
	// loop: LDA $FE; STA $0300; JMP loop
	program := []byte{0xA5, 0xFE, 0x8D, 0x00, 0x03, 0x4C, 0x00, 0x02}
	e := newTestEmulator(t, program, nil)

	next := byte(0)
	rnd := func() byte {
		next++
		return next
	}

	n, err := e.RunFrame(6, rnd)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{err, nil},
		{n, 6},
		{e.Ram.GetByte(0x0300), byte(4)}, // LDA of the second pass saw the fourth byte
		{e.Ram.GetByte(uint32(RandomAddr)), byte(6)},
		{e.Halted(), false},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v\n", test.got, test.want)
		}
	}
}

func TestRunFrameStopsAtHalt(t *testing.T) {
	// LDA #$01; BRK
	e := newTestEmulator(t, []byte{0xA9, 0x01, 0x00}, nil)

	n, err := e.RunFrame(100, nil)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{err, nil},
		{n, 2},
		{e.Halted(), true},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v\n", test.got, test.want)
		}
	}
}

func TestLatchCode(t *testing.T) {
	tests := []struct {
		typed   string
		bound   []byte
		code    byte
		pressed bool
	}{
		{"", nil, 0, false},
		{"a", nil, 'a', true},
		{"xy", nil, 'y', true},
		{"é", nil, 0, false},
		{"q", []byte{'w'}, 'w', true},
		{"", []byte{'w', 'd'}, 'd', true},
		{"", []byte{'a', 0x0D}, 0x0D, true},
	}

	for _, test := range tests {
		code, pressed := LatchCode(test.typed, test.bound)
		if code != test.code || pressed != test.pressed {
			t.Errorf("%q %v: got %#02x %v, want %#02x %v\n",
				test.typed, test.bound, code, pressed, test.code, test.pressed)
		}
	}
}
