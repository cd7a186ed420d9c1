package emu

import "testing"

// pixelRecorder records every video notification it receives along with the
// memory value visible at that moment.
type pixelRecorder struct {
	ram   *Ram
	addrs []uint16
	seen  []byte
}

func (p *pixelRecorder) UpdatePixel(addr uint16) {
	p.addrs = append(p.addrs, addr)
	p.seen = append(p.seen, p.ram.GetByte(uint32(addr)))
}

func newTestBus() (*AddressBus, *pixelRecorder) {
	ram := NewRam()
	rec := &pixelRecorder{ram: ram}

	return NewAddressBus(ram, rec), rec
}

func TestBusGetWord(t *testing.T) {
	bus, _ := newTestBus()

	bus.SetByte(0x0010, 0x34)
	bus.SetByte(0x0011, 0x12)
	bus.SetByte(0xFFFF, 0xCD)
	bus.SetByte(0x0000, 0xAB)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{bus.GetWord(0x0010), uint16(0x1234)},
		{bus.GetWord(0xFFFF), uint16(0xABCD)}, // high byte wraps to 0x0000
		{bus.GetByte(0x0011), byte(0x12)},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v\n", test.got, test.want)
		}
	}
}

func TestBusVideoNotification(t *testing.T) {
	bus, rec := newTestBus()

	bus.SetByte(0x01FF, 1) // stack, below video
	bus.SetByte(0x0200, 2) // first video byte
	bus.SetByte(0x0400, 3)
	bus.SetByte(0x05FF, 4) // last video byte
	bus.SetByte(0x0600, 5) // above video

	if len(rec.addrs) != 3 {
		t.Fatalf("got %v notifications, want 3\n", len(rec.addrs))
	}

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{rec.addrs[0], uint16(0x0200)},
		{rec.addrs[1], uint16(0x0400)},
		{rec.addrs[2], uint16(0x05FF)},

		// Memory already holds the new value when the video side is told.
		{rec.seen[0], byte(2)},
		{rec.seen[1], byte(3)},
		{rec.seen[2], byte(4)},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v\n", test.got, test.want)
		}
	}
}

func TestBusReadHasNoSideEffects(t *testing.T) {
	bus, rec := newTestBus()

	bus.GetByte(0x0300)
	bus.GetWord(0x0300)

	if len(rec.addrs) != 0 {
		t.Errorf("got %v notifications, want 0\n", len(rec.addrs))
	}
}
