package emu

import "testing"

func TestRamAddressWrap(t *testing.T) {
	ram := NewRam()

	ram.SetByte(0x10000, 0xAB)
	ram.SetByte(0x1FFFF, 0xCD)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{ram.GetByte(0x0000), byte(0xAB)},
		{ram.GetByte(0xFFFF), byte(0xCD)},
		{ram.GetByte(0x20000), byte(0xAB)},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v\n", test.got, test.want)
		}
	}
}

func TestRamReset(t *testing.T) {
	ram := NewRam()
	ram.SetByte(0x0000, 1)
	ram.SetByte(0x0200, 2)
	ram.SetByte(0xFFFF, 3)

	ram.Reset()
	ram.Reset()

	for addr := uint32(0); addr < MemorySize; addr++ {
		if got := ram.GetByte(addr); got != 0 {
			t.Fatalf("cell %#04x: got %v, want 0\n", addr, got)
		}
	}
}

func TestRamWrite(t *testing.T) {
	ram := NewRam()

	n := ram.Write(0x0200, []byte{0xA9, 0x05, 0x00})
	short := ram.Write(0xFFFE, []byte{1, 2, 3, 4})

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{n, 3},
		{ram.GetByte(0x0200), byte(0xA9)},
		{ram.GetByte(0x0201), byte(0x05)},
		{ram.GetByte(0x0202), byte(0x00)},

		// No wraparound past the top of memory.
		{short, 2},
		{ram.GetByte(0xFFFE), byte(1)},
		{ram.GetByte(0xFFFF), byte(2)},
		{ram.GetByte(0x0000), byte(0)},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v\n", test.got, test.want)
		}
	}
}
