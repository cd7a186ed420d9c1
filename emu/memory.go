package emu

// Memory map of the machine.
const (
	MemorySize = 64 * 1024
	addrMask   = 0xFFFF

	ZeroPageStart uint16 = 0x0000
	ZeroPageEnd   uint16 = 0x00FF
	StackBase     uint16 = 0x0100 // Stack page: 0x0100-0x01FF
	StackEnd      uint16 = 0x01FF
	VideoStart    uint16 = 0x0200 // Memory-mapped 32x32 pixel buffer.
	VideoEnd      uint16 = 0x05FF

	// Programs are loaded right after the stack page.
	ProgramStart uint16 = 0x0200
)

// Ram is the flat 64KB store of the machine. It knows nothing about the CPU.
type Ram struct {
	data [MemorySize]byte
}

func NewRam() *Ram {
	return &Ram{}
}

// Reset zero-fills every cell.
func (r *Ram) Reset() {
	r.data = [MemorySize]byte{}
}

// GetByte reads a cell. The address wraps at 64KB.
func (r *Ram) GetByte(addr uint32) byte {
	return r.data[addr&addrMask]
}

// SetByte writes a cell. The address wraps at 64KB.
func (r *Ram) SetByte(addr uint32, data byte) {
	r.data[addr&addrMask] = data
}

// Write copies data into memory starting at offset. There is no wraparound:
// bytes that would land past 0xFFFF are dropped, and the number of bytes
// actually written is returned.
func (r *Ram) Write(offset uint16, data []byte) int {
	return copy(r.data[offset:], data)
}
