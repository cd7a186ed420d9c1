package emu

import (
	"bytes"
	"fmt"
)

// traceLine describes the instruction at addr together with the register
// state before it executes. Operand bytes are read through the bus, which has
// no side effects for reads.
//
// Much help from https://github.com/OneLoneCoder/olcNES
func (cpu *Cpu6502) traceLine(addr uint16) string {
	var line bytes.Buffer

	opcode := cpu.bus.GetByte(addr)
	inst := instructions[opcode]

	line.WriteString(fmt.Sprintf("%04X  %02X  %-4s ", addr, opcode, inst.Name))
	line.WriteString(formatOperand(inst.Mode, cpu.bus, addr+1))
	line.WriteString(fmt.Sprintf("\t\t%v", cpu.Registers()))

	return line.String()
}

// formatOperand renders the operand of an instruction whose operand bytes
// start at addr.
func formatOperand(mode AddressingMode, bus Bus, addr uint16) string {
	var lo, hi byte

	switch mode.OperandSize() {
	case 1:
		lo = bus.GetByte(addr)
	case 2:
		lo = bus.GetByte(addr)
		hi = bus.GetByte(addr + 1)
	}
	word := uint16(hi)<<8 | uint16(lo)

	switch mode {
	case ACC:
		return "A"
	case IMM:
		return fmt.Sprintf("#$%02X", lo)
	case REL:
		// Branch target relative to the next instruction.
		return fmt.Sprintf("$%04X", addr+1+uint16(int8(lo)))
	case ZP0:
		return fmt.Sprintf("$%02X", lo)
	case ZPX:
		return fmt.Sprintf("$%02X,X", lo)
	case ZPY:
		return fmt.Sprintf("$%02X,Y", lo)
	case ABS:
		return fmt.Sprintf("$%04X", word)
	case ABX:
		return fmt.Sprintf("$%04X,X", word)
	case ABY:
		return fmt.Sprintf("$%04X,Y", word)
	case IND:
		return fmt.Sprintf("($%04X)", word)
	case IZX:
		return fmt.Sprintf("($%02X,X)", lo)
	case IZY:
		return fmt.Sprintf("($%02X),Y", lo)
	}

	return ""
}
