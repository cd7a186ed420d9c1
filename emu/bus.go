package emu

// PixelUpdater is notified about every write into the video region.
type PixelUpdater interface {
	UpdatePixel(addr uint16)
}

// AddressBus is the single routing point between the CPU, memory and the
// video controller. None of them hold a reference to each other.
type AddressBus struct {
	ram *Ram
	vic PixelUpdater
}

func NewAddressBus(ram *Ram, vic PixelUpdater) *AddressBus {
	return &AddressBus{
		ram: ram,
		vic: vic,
	}
}

// Used by the CPU to read data from the bus at a specified address.
func (b *AddressBus) GetByte(addr uint16) byte {
	return b.ram.GetByte(uint32(addr))
}

// Read a word from memory (little endian order).
func (b *AddressBus) GetWord(addr uint16) uint16 {
	lo := b.GetByte(addr)
	hi := b.GetByte(addr + 1)

	return (uint16(hi) << 8) | uint16(lo)
}

// Used by the CPU to write data to the bus at a specified address. Writes into
// the video region are forwarded to the video controller once the memory cell
// holds the new value.
func (b *AddressBus) SetByte(addr uint16, data byte) {
	b.ram.SetByte(uint32(addr), data)

	if addr >= VideoStart && addr <= VideoEnd {
		b.vic.UpdatePixel(addr)
	}
}
