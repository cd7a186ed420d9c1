package emu

////////////////////////////////////////////////////////////////
// Instructions
type Instruction struct {
	Name    string
	Mode    AddressingMode
	Execute func(cpu *Cpu6502) error
}

// InstructionFor returns the table entry for an opcode.
func InstructionFor(opcode byte) Instruction { return instructions[opcode] }

// Every opcode has an entry. Undocumented opcodes follow NMOS 6502 behaviour.
// Reference: http://archive.6502.org/datasheets/rockwell_r650x_r651x.pdf
var instructions = [256]Instruction{
	0x00: {"BRK", IMP, (*Cpu6502).opBRK}, 0x01: {"ORA", IZX, (*Cpu6502).opORA}, 0x02: {"JAM", IMP, (*Cpu6502).opJAM}, 0x03: {"SLO", IZX, (*Cpu6502).opSLO},
	0x04: {"NOP", ZP0, (*Cpu6502).opNOP}, 0x05: {"ORA", ZP0, (*Cpu6502).opORA}, 0x06: {"ASL", ZP0, (*Cpu6502).opASL}, 0x07: {"SLO", ZP0, (*Cpu6502).opSLO},
	0x08: {"PHP", IMP, (*Cpu6502).opPHP}, 0x09: {"ORA", IMM, (*Cpu6502).opORA}, 0x0A: {"ASL", ACC, (*Cpu6502).opASL}, 0x0B: {"ANC", IMM, (*Cpu6502).opANC},
	0x0C: {"NOP", ABS, (*Cpu6502).opNOP}, 0x0D: {"ORA", ABS, (*Cpu6502).opORA}, 0x0E: {"ASL", ABS, (*Cpu6502).opASL}, 0x0F: {"SLO", ABS, (*Cpu6502).opSLO},

	0x10: {"BPL", REL, (*Cpu6502).opBPL}, 0x11: {"ORA", IZY, (*Cpu6502).opORA}, 0x12: {"JAM", IMP, (*Cpu6502).opJAM}, 0x13: {"SLO", IZY, (*Cpu6502).opSLO},
	0x14: {"NOP", ZPX, (*Cpu6502).opNOP}, 0x15: {"ORA", ZPX, (*Cpu6502).opORA}, 0x16: {"ASL", ZPX, (*Cpu6502).opASL}, 0x17: {"SLO", ZPX, (*Cpu6502).opSLO},
	0x18: {"CLC", IMP, (*Cpu6502).opCLC}, 0x19: {"ORA", ABY, (*Cpu6502).opORA}, 0x1A: {"NOP", IMP, (*Cpu6502).opNOP}, 0x1B: {"SLO", ABY, (*Cpu6502).opSLO},
	0x1C: {"NOP", ABX, (*Cpu6502).opNOP}, 0x1D: {"ORA", ABX, (*Cpu6502).opORA}, 0x1E: {"ASL", ABX, (*Cpu6502).opASL}, 0x1F: {"SLO", ABX, (*Cpu6502).opSLO},

	0x20: {"JSR", ABS, (*Cpu6502).opJSR}, 0x21: {"AND", IZX, (*Cpu6502).opAND}, 0x22: {"JAM", IMP, (*Cpu6502).opJAM}, 0x23: {"RLA", IZX, (*Cpu6502).opRLA},
	0x24: {"BIT", ZP0, (*Cpu6502).opBIT}, 0x25: {"AND", ZP0, (*Cpu6502).opAND}, 0x26: {"ROL", ZP0, (*Cpu6502).opROL}, 0x27: {"RLA", ZP0, (*Cpu6502).opRLA},
	0x28: {"PLP", IMP, (*Cpu6502).opPLP}, 0x29: {"AND", IMM, (*Cpu6502).opAND}, 0x2A: {"ROL", ACC, (*Cpu6502).opROL}, 0x2B: {"ANC", IMM, (*Cpu6502).opANC},
	0x2C: {"BIT", ABS, (*Cpu6502).opBIT}, 0x2D: {"AND", ABS, (*Cpu6502).opAND}, 0x2E: {"ROL", ABS, (*Cpu6502).opROL}, 0x2F: {"RLA", ABS, (*Cpu6502).opRLA},

	0x30: {"BMI", REL, (*Cpu6502).opBMI}, 0x31: {"AND", IZY, (*Cpu6502).opAND}, 0x32: {"JAM", IMP, (*Cpu6502).opJAM}, 0x33: {"RLA", IZY, (*Cpu6502).opRLA},
	0x34: {"NOP", ZPX, (*Cpu6502).opNOP}, 0x35: {"AND", ZPX, (*Cpu6502).opAND}, 0x36: {"ROL", ZPX, (*Cpu6502).opROL}, 0x37: {"RLA", ZPX, (*Cpu6502).opRLA},
	0x38: {"SEC", IMP, (*Cpu6502).opSEC}, 0x39: {"AND", ABY, (*Cpu6502).opAND}, 0x3A: {"NOP", IMP, (*Cpu6502).opNOP}, 0x3B: {"RLA", ABY, (*Cpu6502).opRLA},
	0x3C: {"NOP", ABX, (*Cpu6502).opNOP}, 0x3D: {"AND", ABX, (*Cpu6502).opAND}, 0x3E: {"ROL", ABX, (*Cpu6502).opROL}, 0x3F: {"RLA", ABX, (*Cpu6502).opRLA},

	0x40: {"RTI", IMP, (*Cpu6502).opRTI}, 0x41: {"EOR", IZX, (*Cpu6502).opEOR}, 0x42: {"JAM", IMP, (*Cpu6502).opJAM}, 0x43: {"SRE", IZX, (*Cpu6502).opSRE},
	0x44: {"NOP", ZP0, (*Cpu6502).opNOP}, 0x45: {"EOR", ZP0, (*Cpu6502).opEOR}, 0x46: {"LSR", ZP0, (*Cpu6502).opLSR}, 0x47: {"SRE", ZP0, (*Cpu6502).opSRE},
	0x48: {"PHA", IMP, (*Cpu6502).opPHA}, 0x49: {"EOR", IMM, (*Cpu6502).opEOR}, 0x4A: {"LSR", ACC, (*Cpu6502).opLSR}, 0x4B: {"ALR", IMM, (*Cpu6502).opALR},
	0x4C: {"JMP", ABS, (*Cpu6502).opJMP}, 0x4D: {"EOR", ABS, (*Cpu6502).opEOR}, 0x4E: {"LSR", ABS, (*Cpu6502).opLSR}, 0x4F: {"SRE", ABS, (*Cpu6502).opSRE},

	0x50: {"BVC", REL, (*Cpu6502).opBVC}, 0x51: {"EOR", IZY, (*Cpu6502).opEOR}, 0x52: {"JAM", IMP, (*Cpu6502).opJAM}, 0x53: {"SRE", IZY, (*Cpu6502).opSRE},
	0x54: {"NOP", ZPX, (*Cpu6502).opNOP}, 0x55: {"EOR", ZPX, (*Cpu6502).opEOR}, 0x56: {"LSR", ZPX, (*Cpu6502).opLSR}, 0x57: {"SRE", ZPX, (*Cpu6502).opSRE},
	0x58: {"CLI", IMP, (*Cpu6502).opCLI}, 0x59: {"EOR", ABY, (*Cpu6502).opEOR}, 0x5A: {"NOP", IMP, (*Cpu6502).opNOP}, 0x5B: {"SRE", ABY, (*Cpu6502).opSRE},
	0x5C: {"NOP", ABX, (*Cpu6502).opNOP}, 0x5D: {"EOR", ABX, (*Cpu6502).opEOR}, 0x5E: {"LSR", ABX, (*Cpu6502).opLSR}, 0x5F: {"SRE", ABX, (*Cpu6502).opSRE},

	0x60: {"RTS", IMP, (*Cpu6502).opRTS}, 0x61: {"ADC", IZX, (*Cpu6502).opADC}, 0x62: {"JAM", IMP, (*Cpu6502).opJAM}, 0x63: {"RRA", IZX, (*Cpu6502).opRRA},
	0x64: {"NOP", ZP0, (*Cpu6502).opNOP}, 0x65: {"ADC", ZP0, (*Cpu6502).opADC}, 0x66: {"ROR", ZP0, (*Cpu6502).opROR}, 0x67: {"RRA", ZP0, (*Cpu6502).opRRA},
	0x68: {"PLA", IMP, (*Cpu6502).opPLA}, 0x69: {"ADC", IMM, (*Cpu6502).opADC}, 0x6A: {"ROR", ACC, (*Cpu6502).opROR}, 0x6B: {"ARR", IMM, (*Cpu6502).opARR},
	0x6C: {"JMP", IND, (*Cpu6502).opJMP}, 0x6D: {"ADC", ABS, (*Cpu6502).opADC}, 0x6E: {"ROR", ABS, (*Cpu6502).opROR}, 0x6F: {"RRA", ABS, (*Cpu6502).opRRA},

	0x70: {"BVS", REL, (*Cpu6502).opBVS}, 0x71: {"ADC", IZY, (*Cpu6502).opADC}, 0x72: {"JAM", IMP, (*Cpu6502).opJAM}, 0x73: {"RRA", IZY, (*Cpu6502).opRRA},
	0x74: {"NOP", ZPX, (*Cpu6502).opNOP}, 0x75: {"ADC", ZPX, (*Cpu6502).opADC}, 0x76: {"ROR", ZPX, (*Cpu6502).opROR}, 0x77: {"RRA", ZPX, (*Cpu6502).opRRA},
	0x78: {"SEI", IMP, (*Cpu6502).opSEI}, 0x79: {"ADC", ABY, (*Cpu6502).opADC}, 0x7A: {"NOP", IMP, (*Cpu6502).opNOP}, 0x7B: {"RRA", ABY, (*Cpu6502).opRRA},
	0x7C: {"NOP", ABX, (*Cpu6502).opNOP}, 0x7D: {"ADC", ABX, (*Cpu6502).opADC}, 0x7E: {"ROR", ABX, (*Cpu6502).opROR}, 0x7F: {"RRA", ABX, (*Cpu6502).opRRA},

	0x80: {"NOP", IMM, (*Cpu6502).opNOP}, 0x81: {"STA", IZX, (*Cpu6502).opSTA}, 0x82: {"NOP", IMM, (*Cpu6502).opNOP}, 0x83: {"SAX", IZX, (*Cpu6502).opSAX},
	0x84: {"STY", ZP0, (*Cpu6502).opSTY}, 0x85: {"STA", ZP0, (*Cpu6502).opSTA}, 0x86: {"STX", ZP0, (*Cpu6502).opSTX}, 0x87: {"SAX", ZP0, (*Cpu6502).opSAX},
	0x88: {"DEY", IMP, (*Cpu6502).opDEY}, 0x89: {"NOP", IMM, (*Cpu6502).opNOP}, 0x8A: {"TXA", IMP, (*Cpu6502).opTXA}, 0x8B: {"ANE", IMM, (*Cpu6502).opANE},
	0x8C: {"STY", ABS, (*Cpu6502).opSTY}, 0x8D: {"STA", ABS, (*Cpu6502).opSTA}, 0x8E: {"STX", ABS, (*Cpu6502).opSTX}, 0x8F: {"SAX", ABS, (*Cpu6502).opSAX},

	0x90: {"BCC", REL, (*Cpu6502).opBCC}, 0x91: {"STA", IZY, (*Cpu6502).opSTA}, 0x92: {"JAM", IMP, (*Cpu6502).opJAM}, 0x93: {"SHA", IZY, (*Cpu6502).opSHA},
	0x94: {"STY", ZPX, (*Cpu6502).opSTY}, 0x95: {"STA", ZPX, (*Cpu6502).opSTA}, 0x96: {"STX", ZPY, (*Cpu6502).opSTX}, 0x97: {"SAX", ZPY, (*Cpu6502).opSAX},
	0x98: {"TYA", IMP, (*Cpu6502).opTYA}, 0x99: {"STA", ABY, (*Cpu6502).opSTA}, 0x9A: {"TXS", IMP, (*Cpu6502).opTXS}, 0x9B: {"TAS", ABY, (*Cpu6502).opTAS},
	0x9C: {"SHY", ABX, (*Cpu6502).opSHY}, 0x9D: {"STA", ABX, (*Cpu6502).opSTA}, 0x9E: {"SHX", ABY, (*Cpu6502).opSHX}, 0x9F: {"SHA", ABY, (*Cpu6502).opSHA},

	0xA0: {"LDY", IMM, (*Cpu6502).opLDY}, 0xA1: {"LDA", IZX, (*Cpu6502).opLDA}, 0xA2: {"LDX", IMM, (*Cpu6502).opLDX}, 0xA3: {"LAX", IZX, (*Cpu6502).opLAX},
	0xA4: {"LDY", ZP0, (*Cpu6502).opLDY}, 0xA5: {"LDA", ZP0, (*Cpu6502).opLDA}, 0xA6: {"LDX", ZP0, (*Cpu6502).opLDX}, 0xA7: {"LAX", ZP0, (*Cpu6502).opLAX},
	0xA8: {"TAY", IMP, (*Cpu6502).opTAY}, 0xA9: {"LDA", IMM, (*Cpu6502).opLDA}, 0xAA: {"TAX", IMP, (*Cpu6502).opTAX}, 0xAB: {"LXA", IMM, (*Cpu6502).opLXA},
	0xAC: {"LDY", ABS, (*Cpu6502).opLDY}, 0xAD: {"LDA", ABS, (*Cpu6502).opLDA}, 0xAE: {"LDX", ABS, (*Cpu6502).opLDX}, 0xAF: {"LAX", ABS, (*Cpu6502).opLAX},

	0xB0: {"BCS", REL, (*Cpu6502).opBCS}, 0xB1: {"LDA", IZY, (*Cpu6502).opLDA}, 0xB2: {"JAM", IMP, (*Cpu6502).opJAM}, 0xB3: {"LAX", IZY, (*Cpu6502).opLAX},
	0xB4: {"LDY", ZPX, (*Cpu6502).opLDY}, 0xB5: {"LDA", ZPX, (*Cpu6502).opLDA}, 0xB6: {"LDX", ZPY, (*Cpu6502).opLDX}, 0xB7: {"LAX", ZPY, (*Cpu6502).opLAX},
	0xB8: {"CLV", IMP, (*Cpu6502).opCLV}, 0xB9: {"LDA", ABY, (*Cpu6502).opLDA}, 0xBA: {"TSX", IMP, (*Cpu6502).opTSX}, 0xBB: {"LAS", ABY, (*Cpu6502).opLAS},
	0xBC: {"LDY", ABX, (*Cpu6502).opLDY}, 0xBD: {"LDA", ABX, (*Cpu6502).opLDA}, 0xBE: {"LDX", ABY, (*Cpu6502).opLDX}, 0xBF: {"LAX", ABY, (*Cpu6502).opLAX},

	0xC0: {"CPY", IMM, (*Cpu6502).opCPY}, 0xC1: {"CMP", IZX, (*Cpu6502).opCMP}, 0xC2: {"NOP", IMM, (*Cpu6502).opNOP}, 0xC3: {"DCP", IZX, (*Cpu6502).opDCP},
	0xC4: {"CPY", ZP0, (*Cpu6502).opCPY}, 0xC5: {"CMP", ZP0, (*Cpu6502).opCMP}, 0xC6: {"DEC", ZP0, (*Cpu6502).opDEC}, 0xC7: {"DCP", ZP0, (*Cpu6502).opDCP},
	0xC8: {"INY", IMP, (*Cpu6502).opINY}, 0xC9: {"CMP", IMM, (*Cpu6502).opCMP}, 0xCA: {"DEX", IMP, (*Cpu6502).opDEX}, 0xCB: {"SBX", IMM, (*Cpu6502).opSBX},
	0xCC: {"CPY", ABS, (*Cpu6502).opCPY}, 0xCD: {"CMP", ABS, (*Cpu6502).opCMP}, 0xCE: {"DEC", ABS, (*Cpu6502).opDEC}, 0xCF: {"DCP", ABS, (*Cpu6502).opDCP},

	0xD0: {"BNE", REL, (*Cpu6502).opBNE}, 0xD1: {"CMP", IZY, (*Cpu6502).opCMP}, 0xD2: {"JAM", IMP, (*Cpu6502).opJAM}, 0xD3: {"DCP", IZY, (*Cpu6502).opDCP},
	0xD4: {"NOP", ZPX, (*Cpu6502).opNOP}, 0xD5: {"CMP", ZPX, (*Cpu6502).opCMP}, 0xD6: {"DEC", ZPX, (*Cpu6502).opDEC}, 0xD7: {"DCP", ZPX, (*Cpu6502).opDCP},
	0xD8: {"CLD", IMP, (*Cpu6502).opCLD}, 0xD9: {"CMP", ABY, (*Cpu6502).opCMP}, 0xDA: {"NOP", IMP, (*Cpu6502).opNOP}, 0xDB: {"DCP", ABY, (*Cpu6502).opDCP},
	0xDC: {"NOP", ABX, (*Cpu6502).opNOP}, 0xDD: {"CMP", ABX, (*Cpu6502).opCMP}, 0xDE: {"DEC", ABX, (*Cpu6502).opDEC}, 0xDF: {"DCP", ABX, (*Cpu6502).opDCP},

	0xE0: {"CPX", IMM, (*Cpu6502).opCPX}, 0xE1: {"SBC", IZX, (*Cpu6502).opSBC}, 0xE2: {"NOP", IMM, (*Cpu6502).opNOP}, 0xE3: {"ISC", IZX, (*Cpu6502).opISC},
	0xE4: {"CPX", ZP0, (*Cpu6502).opCPX}, 0xE5: {"SBC", ZP0, (*Cpu6502).opSBC}, 0xE6: {"INC", ZP0, (*Cpu6502).opINC}, 0xE7: {"ISC", ZP0, (*Cpu6502).opISC},
	0xE8: {"INX", IMP, (*Cpu6502).opINX}, 0xE9: {"SBC", IMM, (*Cpu6502).opSBC}, 0xEA: {"NOP", IMP, (*Cpu6502).opNOP}, 0xEB: {"USBC", IMM, (*Cpu6502).opSBC},
	0xEC: {"CPX", ABS, (*Cpu6502).opCPX}, 0xED: {"SBC", ABS, (*Cpu6502).opSBC}, 0xEE: {"INC", ABS, (*Cpu6502).opINC}, 0xEF: {"ISC", ABS, (*Cpu6502).opISC},

	0xF0: {"BEQ", REL, (*Cpu6502).opBEQ}, 0xF1: {"SBC", IZY, (*Cpu6502).opSBC}, 0xF2: {"JAM", IMP, (*Cpu6502).opJAM}, 0xF3: {"ISC", IZY, (*Cpu6502).opISC},
	0xF4: {"NOP", ZPX, (*Cpu6502).opNOP}, 0xF5: {"SBC", ZPX, (*Cpu6502).opSBC}, 0xF6: {"INC", ZPX, (*Cpu6502).opINC}, 0xF7: {"ISC", ZPX, (*Cpu6502).opISC},
	0xF8: {"SED", IMP, (*Cpu6502).opSED}, 0xF9: {"SBC", ABY, (*Cpu6502).opSBC}, 0xFA: {"NOP", IMP, (*Cpu6502).opNOP}, 0xFB: {"ISC", ABY, (*Cpu6502).opISC},
	0xFC: {"NOP", ABX, (*Cpu6502).opNOP}, 0xFD: {"SBC", ABX, (*Cpu6502).opSBC}, 0xFE: {"INC", ABX, (*Cpu6502).opINC}, 0xFF: {"ISC", ABX, (*Cpu6502).opISC},
}

////////////////////////////////////////////////////////////////
// Shared arithmetic

// adc adds m and the carry to the accumulator. Decimal mode is ignored.
func (cpu *Cpu6502) adc(m byte) {
	// 16-bit to keep any carry.
	result := uint16(cpu.A) + uint16(m) + uint16(cpu.carry())

	cpu.setFlag(StatusFlagC, result > 0xFF)

	// Overflow when both operands have the same sign and the result does not.
	cpu.setFlag(StatusFlagV, (cpu.A^byte(result))&(m^byte(result))&(1<<7) > 0)

	cpu.A = byte(result)
	cpu.setZN(cpu.A)
}

// compare sets the flags as if m was subtracted from reg.
func (cpu *Cpu6502) compare(reg, m byte) {
	cpu.setFlag(StatusFlagC, reg >= m)
	cpu.setZN(reg - m)
}

func (cpu *Cpu6502) asl(v byte) byte {
	// Set carry flag to old bit 7.
	cpu.setFlag(StatusFlagC, v&(1<<7) > 0)
	v <<= 1
	cpu.setZN(v)

	return v
}

func (cpu *Cpu6502) lsr(v byte) byte {
	// Set carry flag to old bit 0.
	cpu.setFlag(StatusFlagC, v&1 > 0)
	v >>= 1
	cpu.setZN(v)

	return v
}

func (cpu *Cpu6502) rol(v byte) byte {
	carry := cpu.carry()
	cpu.setFlag(StatusFlagC, v&(1<<7) > 0)
	v = (v << 1) | carry
	cpu.setZN(v)

	return v
}

func (cpu *Cpu6502) ror(v byte) byte {
	carry := cpu.carry()
	cpu.setFlag(StatusFlagC, v&1 > 0)
	v = (v >> 1) | (carry << 7)
	cpu.setZN(v)

	return v
}

func (cpu *Cpu6502) branch(cond bool) {
	if cond {
		cpu.Pc = cpu.addrAbs
	}
}

// pullStatus restores the status register from the stack. The break flag is
// left as it is and the unused flag stays set.
func (cpu *Cpu6502) pullStatus() {
	b := cpu.Status & byte(StatusFlagB)
	cpu.Status = cpu.stackPop()&^byte(StatusFlagB|StatusFlagU) | b | byte(StatusFlagU)
}

// unstableHigh is the value the SHA/SHX/SHY/TAS family ANDs into the stored
// register: the high byte of the base address plus one.
func (cpu *Cpu6502) unstableHigh() byte {
	return byte(cpu.addrBase>>8) + 1
}

////////////////////////////////////////////////////////////////
// Load, store and transfer

// LDA - Load Accumulator
func (cpu *Cpu6502) opLDA() error {
	cpu.A = cpu.fetch()
	cpu.setZN(cpu.A)
	return nil
}

// LDX - Load X Register
func (cpu *Cpu6502) opLDX() error {
	cpu.X = cpu.fetch()
	cpu.setZN(cpu.X)
	return nil
}

// LDY - Load Y Register
func (cpu *Cpu6502) opLDY() error {
	cpu.Y = cpu.fetch()
	cpu.setZN(cpu.Y)
	return nil
}

// STA - Store Accumulator
func (cpu *Cpu6502) opSTA() error {
	cpu.bus.SetByte(cpu.addrAbs, cpu.A)
	return nil
}

// STX - Store X Register
func (cpu *Cpu6502) opSTX() error {
	cpu.bus.SetByte(cpu.addrAbs, cpu.X)
	return nil
}

// STY - Store Y Register
func (cpu *Cpu6502) opSTY() error {
	cpu.bus.SetByte(cpu.addrAbs, cpu.Y)
	return nil
}

// TAX - Transfer Accumulator to X
func (cpu *Cpu6502) opTAX() error {
	cpu.X = cpu.A
	cpu.setZN(cpu.X)
	return nil
}

// TAY - Transfer Accumulator to Y
func (cpu *Cpu6502) opTAY() error {
	cpu.Y = cpu.A
	cpu.setZN(cpu.Y)
	return nil
}

// TSX - Transfer Stack Pointer to X
func (cpu *Cpu6502) opTSX() error {
	cpu.X = cpu.Sp
	cpu.setZN(cpu.X)
	return nil
}

// TXA - Transfer X to Accumulator
func (cpu *Cpu6502) opTXA() error {
	cpu.A = cpu.X
	cpu.setZN(cpu.A)
	return nil
}

// TXS - Transfer X to Stack Pointer
func (cpu *Cpu6502) opTXS() error {
	cpu.Sp = cpu.X
	return nil
}

// TYA - Transfer Y to Accumulator
func (cpu *Cpu6502) opTYA() error {
	cpu.A = cpu.Y
	cpu.setZN(cpu.A)
	return nil
}

////////////////////////////////////////////////////////////////
// Stack

// PHA - Push Accumulator
func (cpu *Cpu6502) opPHA() error {
	return cpu.stackPush(cpu.A)
}

// PHP - Push Processor Status
func (cpu *Cpu6502) opPHP() error {
	// Set B flag according to: http://visual6502.org/wiki/index.php?title=6502_BRK_and_B_bit
	return cpu.stackPush(cpu.Status | byte(StatusFlagB|StatusFlagU))
}

// PLA - Pull Accumulator
func (cpu *Cpu6502) opPLA() error {
	cpu.A = cpu.stackPop()
	cpu.setZN(cpu.A)
	return nil
}

// PLP - Pull Processor Status
func (cpu *Cpu6502) opPLP() error {
	cpu.pullStatus()
	return nil
}

////////////////////////////////////////////////////////////////
// Logic and arithmetic

// AND - Logical AND
func (cpu *Cpu6502) opAND() error {
	cpu.A &= cpu.fetch()
	cpu.setZN(cpu.A)
	return nil
}

// EOR - Exclusive OR
func (cpu *Cpu6502) opEOR() error {
	cpu.A ^= cpu.fetch()
	cpu.setZN(cpu.A)
	return nil
}

// ORA - Logical Inclusive OR
func (cpu *Cpu6502) opORA() error {
	cpu.A |= cpu.fetch()
	cpu.setZN(cpu.A)
	return nil
}

// BIT - Bit Test
func (cpu *Cpu6502) opBIT() error {
	m := cpu.fetch()

	cpu.setFlag(StatusFlagZ, m&cpu.A == 0)
	cpu.setFlag(StatusFlagV, m&(1<<6) > 0)
	cpu.setFlag(StatusFlagN, m&(1<<7) > 0)
	return nil
}

// ADC - Add with Carry
func (cpu *Cpu6502) opADC() error {
	cpu.adc(cpu.fetch())
	return nil
}

// SBC - Subtract with Carry
func (cpu *Cpu6502) opSBC() error {
	// Invert to subtract
	cpu.adc(^cpu.fetch())
	return nil
}

// CMP - Compare (Accumulator)
func (cpu *Cpu6502) opCMP() error {
	cpu.compare(cpu.A, cpu.fetch())
	return nil
}

// CPX - Compare X Register
func (cpu *Cpu6502) opCPX() error {
	cpu.compare(cpu.X, cpu.fetch())
	return nil
}

// CPY - Compare Y Register
func (cpu *Cpu6502) opCPY() error {
	cpu.compare(cpu.Y, cpu.fetch())
	return nil
}

////////////////////////////////////////////////////////////////
// Increments and decrements

// INC - Increment Memory
func (cpu *Cpu6502) opINC() error {
	v := cpu.fetch() + 1
	cpu.store(v)
	cpu.setZN(v)
	return nil
}

// INX - Increment X Register
func (cpu *Cpu6502) opINX() error {
	cpu.X++
	cpu.setZN(cpu.X)
	return nil
}

// INY - Increment Y Register
func (cpu *Cpu6502) opINY() error {
	cpu.Y++
	cpu.setZN(cpu.Y)
	return nil
}

// DEC - Decrement Memory
func (cpu *Cpu6502) opDEC() error {
	v := cpu.fetch() - 1
	cpu.store(v)
	cpu.setZN(v)
	return nil
}

// DEX - Decrement X Register
func (cpu *Cpu6502) opDEX() error {
	cpu.X--
	cpu.setZN(cpu.X)
	return nil
}

// DEY - Decrement Y Register
func (cpu *Cpu6502) opDEY() error {
	cpu.Y--
	cpu.setZN(cpu.Y)
	return nil
}

////////////////////////////////////////////////////////////////
// Shifts

// ASL - Arithmetic Shift Left
func (cpu *Cpu6502) opASL() error {
	cpu.store(cpu.asl(cpu.fetch()))
	return nil
}

// LSR - Logical Shift Right
func (cpu *Cpu6502) opLSR() error {
	cpu.store(cpu.lsr(cpu.fetch()))
	return nil
}

// ROL - Rotate Left
func (cpu *Cpu6502) opROL() error {
	cpu.store(cpu.rol(cpu.fetch()))
	return nil
}

// ROR - Rotate Right
func (cpu *Cpu6502) opROR() error {
	cpu.store(cpu.ror(cpu.fetch()))
	return nil
}

////////////////////////////////////////////////////////////////
// Jumps and branches

// JMP - Jump
func (cpu *Cpu6502) opJMP() error {
	cpu.Pc = cpu.addrAbs
	return nil
}

// JSR - Jump to Subroutine
func (cpu *Cpu6502) opJSR() error {
	// The pushed return address is the last byte of the JSR instruction.
	if err := cpu.stackPushWord(cpu.Pc - 1); err != nil {
		return err
	}

	cpu.Pc = cpu.addrAbs
	return nil
}

// RTS - Return from Subroutine
func (cpu *Cpu6502) opRTS() error {
	cpu.Pc = cpu.stackPopWord() + 1
	return nil
}

// RTI - Return from Interrupt
func (cpu *Cpu6502) opRTI() error {
	cpu.pullStatus()
	cpu.Pc = cpu.stackPopWord()
	return nil
}

// BCC - Branch if Carry Clear
func (cpu *Cpu6502) opBCC() error {
	cpu.branch(cpu.getFlag(StatusFlagC) == 0)
	return nil
}

// BCS - Branch if Carry Set
func (cpu *Cpu6502) opBCS() error {
	cpu.branch(cpu.getFlag(StatusFlagC) != 0)
	return nil
}

// BEQ - Branch if Equal
func (cpu *Cpu6502) opBEQ() error {
	cpu.branch(cpu.getFlag(StatusFlagZ) != 0)
	return nil
}

// BMI - Branch if Minus
func (cpu *Cpu6502) opBMI() error {
	cpu.branch(cpu.getFlag(StatusFlagN) != 0)
	return nil
}

// BNE - Branch if Not Equal
func (cpu *Cpu6502) opBNE() error {
	cpu.branch(cpu.getFlag(StatusFlagZ) == 0)
	return nil
}

// BPL - Branch if Positive
func (cpu *Cpu6502) opBPL() error {
	cpu.branch(cpu.getFlag(StatusFlagN) == 0)
	return nil
}

// BVC - Branch if Overflow Clear
func (cpu *Cpu6502) opBVC() error {
	cpu.branch(cpu.getFlag(StatusFlagV) == 0)
	return nil
}

// BVS - Branch if Overflow Set
func (cpu *Cpu6502) opBVS() error {
	cpu.branch(cpu.getFlag(StatusFlagV) != 0)
	return nil
}

////////////////////////////////////////////////////////////////
// Flags and system

// CLC - Clear Carry Flag
func (cpu *Cpu6502) opCLC() error {
	cpu.setFlag(StatusFlagC, false)
	return nil
}

// CLD - Clear Decimal Mode
func (cpu *Cpu6502) opCLD() error {
	cpu.setFlag(StatusFlagD, false)
	return nil
}

// CLI - Clear Interrupt Disable
func (cpu *Cpu6502) opCLI() error {
	cpu.setFlag(StatusFlagI, false)
	return nil
}

// CLV - Clear Overflow Flag
func (cpu *Cpu6502) opCLV() error {
	cpu.setFlag(StatusFlagV, false)
	return nil
}

// SEC - Set Carry Flag
func (cpu *Cpu6502) opSEC() error {
	cpu.setFlag(StatusFlagC, true)
	return nil
}

// SED - Set Decimal Flag
func (cpu *Cpu6502) opSED() error {
	cpu.setFlag(StatusFlagD, true)
	return nil
}

// SEI - Set Interrupt Disable
func (cpu *Cpu6502) opSEI() error {
	cpu.setFlag(StatusFlagI, true)
	return nil
}

// BRK - Break. The machine has no interrupt vectors; BRK ends the program.
func (cpu *Cpu6502) opBRK() error {
	cpu.state = Halted
	return nil
}

// NOP - No Operation. Operand bytes, if any, were consumed by the
// addressing mode.
func (cpu *Cpu6502) opNOP() error { return nil }

////////////////////////////////////////////////////////////////
// Undocumented instructions

// JAM - locks up the processor.
func (cpu *Cpu6502) opJAM() error {
	cpu.state = Halted
	return ErrJammed
}

// LAX - LDA and LDX
func (cpu *Cpu6502) opLAX() error {
	cpu.A = cpu.fetch()
	cpu.X = cpu.A
	cpu.setZN(cpu.A)
	return nil
}

// SAX - Store A AND X
func (cpu *Cpu6502) opSAX() error {
	cpu.bus.SetByte(cpu.addrAbs, cpu.A&cpu.X)
	return nil
}

// DCP - DEC then CMP
func (cpu *Cpu6502) opDCP() error {
	v := cpu.fetch() - 1
	cpu.store(v)
	cpu.compare(cpu.A, v)
	return nil
}

// ISC - INC then SBC
func (cpu *Cpu6502) opISC() error {
	v := cpu.fetch() + 1
	cpu.store(v)
	cpu.adc(^v)
	return nil
}

// SLO - ASL then ORA
func (cpu *Cpu6502) opSLO() error {
	v := cpu.asl(cpu.fetch())
	cpu.store(v)
	cpu.A |= v
	cpu.setZN(cpu.A)
	return nil
}

// RLA - ROL then AND
func (cpu *Cpu6502) opRLA() error {
	v := cpu.rol(cpu.fetch())
	cpu.store(v)
	cpu.A &= v
	cpu.setZN(cpu.A)
	return nil
}

// SRE - LSR then EOR
func (cpu *Cpu6502) opSRE() error {
	v := cpu.lsr(cpu.fetch())
	cpu.store(v)
	cpu.A ^= v
	cpu.setZN(cpu.A)
	return nil
}

// RRA - ROR then ADC
func (cpu *Cpu6502) opRRA() error {
	v := cpu.ror(cpu.fetch())
	cpu.store(v)
	cpu.adc(v)
	return nil
}

// ANC - AND, then copy N into C
func (cpu *Cpu6502) opANC() error {
	cpu.A &= cpu.fetch()
	cpu.setZN(cpu.A)
	cpu.setFlag(StatusFlagC, cpu.getFlag(StatusFlagN) != 0)
	return nil
}

// ALR - AND then LSR A
func (cpu *Cpu6502) opALR() error {
	cpu.A = cpu.lsr(cpu.A & cpu.fetch())
	return nil
}

// ARR - AND then ROR A, with C and V taken from bits 6 and 5 of the result
func (cpu *Cpu6502) opARR() error {
	cpu.A = (cpu.A&cpu.fetch())>>1 | cpu.carry()<<7
	cpu.setZN(cpu.A)
	cpu.setFlag(StatusFlagC, cpu.A&(1<<6) > 0)
	cpu.setFlag(StatusFlagV, (cpu.A>>6^cpu.A>>5)&1 > 0)
	return nil
}

// SBX - X = (A AND X) - operand, without borrow
func (cpu *Cpu6502) opSBX() error {
	t := cpu.A & cpu.X
	m := cpu.fetch()
	cpu.setFlag(StatusFlagC, t >= m)
	cpu.X = t - m
	cpu.setZN(cpu.X)
	return nil
}

// LAS - A, X and SP = memory AND SP
func (cpu *Cpu6502) opLAS() error {
	v := cpu.fetch() & cpu.Sp
	cpu.A = v
	cpu.X = v
	cpu.Sp = v
	cpu.setZN(v)
	return nil
}

// ANE - A = (A OR magic) AND X AND operand. The magic constant varies between
// chips; 0xEE is the common value.
func (cpu *Cpu6502) opANE() error {
	cpu.A = (cpu.A | 0xEE) & cpu.X & cpu.fetch()
	cpu.setZN(cpu.A)
	return nil
}

// LXA - A = X = (A OR magic) AND operand
func (cpu *Cpu6502) opLXA() error {
	cpu.A = (cpu.A | 0xEE) & cpu.fetch()
	cpu.X = cpu.A
	cpu.setZN(cpu.A)
	return nil
}

// SHA - store A AND X AND (high byte + 1)
func (cpu *Cpu6502) opSHA() error {
	cpu.bus.SetByte(cpu.addrAbs, cpu.A&cpu.X&cpu.unstableHigh())
	return nil
}

// SHX - store X AND (high byte + 1)
func (cpu *Cpu6502) opSHX() error {
	cpu.bus.SetByte(cpu.addrAbs, cpu.X&cpu.unstableHigh())
	return nil
}

// SHY - store Y AND (high byte + 1)
func (cpu *Cpu6502) opSHY() error {
	cpu.bus.SetByte(cpu.addrAbs, cpu.Y&cpu.unstableHigh())
	return nil
}

// TAS - SP = A AND X, then store SP AND (high byte + 1)
func (cpu *Cpu6502) opTAS() error {
	cpu.Sp = cpu.A & cpu.X
	cpu.bus.SetByte(cpu.addrAbs, cpu.Sp&cpu.unstableHigh())
	return nil
}
