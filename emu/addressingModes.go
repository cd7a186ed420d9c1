package emu

type AddressingMode int

const (
	IMP AddressingMode = iota // Implied
	ACC                       // Accumulator
	IMM                       // Immediate
	REL                       // Relative
	ZP0                       // Zero Page
	ZPX                       // Zero Page, X
	ZPY                       // Zero Page, Y
	ABS                       // Absolute
	ABX                       // Absolute, X
	ABY                       // Absolute, Y
	IND                       // Indirect
	IZX                       // Indexed Indirect
	IZY                       // Indirect Indexed
)

var modeNames = [...]string{"IMP", "ACC", "IMM", "REL", "ZP0", "ZPX", "ZPY", "ABS", "ABX", "ABY", "IND", "IZX", "IZY"}

func (m AddressingMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "???"
	}
	return modeNames[m]
}

// OperandSize is the number of bytes following the opcode.
func (m AddressingMode) OperandSize() int {
	switch m {
	case IMP, ACC:
		return 0
	case ABS, ABX, ABY, IND:
		return 2
	}
	return 1
}

// resolve consumes the operand bytes of the current instruction and computes
// the effective address (or immediate value) for the given mode.
func (cpu *Cpu6502) resolve(mode AddressingMode) {
	cpu.mode = mode

	switch mode {
	case IMP, ACC:
		// Operand, if any, is the accumulator.

	case IMM:
		cpu.fetched = cpu.consumeByte()

	case REL:
		// Signed displacement from the address of the next instruction.
		offset := int8(cpu.consumeByte())
		cpu.addrAbs = cpu.Pc + uint16(offset)

	case ZP0:
		cpu.addrAbs = uint16(cpu.consumeByte())

	case ZPX:
		cpu.addrAbs = uint16(cpu.consumeByte()+cpu.X) & 0x00FF

	case ZPY:
		cpu.addrAbs = uint16(cpu.consumeByte()+cpu.Y) & 0x00FF

	case ABS:
		cpu.addrAbs = cpu.consumeWord()

	case ABX:
		cpu.addrBase = cpu.consumeWord()
		cpu.addrAbs = cpu.addrBase + uint16(cpu.X)

	case ABY:
		cpu.addrBase = cpu.consumeWord()
		cpu.addrAbs = cpu.addrBase + uint16(cpu.Y)

	case IND:
		// The pointer's high byte never crosses a page: JMP ($10FF) reads
		// $10FF and $1000.
		ptr := cpu.consumeWord()
		lo := cpu.bus.GetByte(ptr)
		hi := cpu.bus.GetByte(ptr&0xFF00 | uint16(byte(ptr)+1))
		cpu.addrAbs = uint16(hi)<<8 | uint16(lo)

	case IZX:
		zp := cpu.consumeByte() + cpu.X
		cpu.addrAbs = cpu.bus.GetWord(uint16(zp))

	case IZY:
		zp := cpu.consumeByte()
		cpu.addrBase = cpu.bus.GetWord(uint16(zp))
		cpu.addrAbs = cpu.addrBase + uint16(cpu.Y)
	}
}
