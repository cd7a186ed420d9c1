package emu

import (
	"fmt"
	"io"
	"log"
)

// Bus is what the CPU sees of the machine.
type Bus interface {
	GetByte(addr uint16) byte
	GetWord(addr uint16) uint16
	SetByte(addr uint16, data byte)
}

// State of the decode loop.
type State int

const (
	Running State = iota
	Halted
)

func (s State) String() string {
	if s == Halted {
		return "Halted"
	}
	return "Running"
}

type Cpu6502 struct {
	Pc     uint16 // Program Counter
	Sp     byte   // Stack Pointer: low 8 bits of next free location on stack.
	A      byte   // Accumulator Register
	X      byte   // X Register
	Y      byte   // Y Register
	Status byte   // Processor Status Flags

	bus Bus // Communication Bus

	// Internal variables
	state    State
	opcode   byte           // Opcode of the instruction being executed
	mode     AddressingMode // Addressing mode of the instruction being executed
	addrAbs  uint16         // Set by addressing mode resolution, used by instructions
	addrBase uint16         // Un-indexed address for ABX, ABY and IZY
	fetched  byte           // Immediate operand

	instCount uint64 // Total # of instructions executed
	instLimit uint64 // Step fails after this many instructions, 0 for no limit

	logger *log.Logger // Instruction trace, nil when disabled
}

func NewCpu6502(bus Bus) *Cpu6502 {
	cpu := &Cpu6502{bus: bus}
	cpu.Reset()

	return cpu
}

// SetTrace enables an instruction trace written to w. A nil writer disables it.
func (cpu *Cpu6502) SetTrace(w io.Writer) {
	if w == nil {
		cpu.logger = nil
		return
	}
	cpu.logger = log.New(w, "", 0)
}

// SetInstructionLimit makes Step fail with ErrInstructionLimit once n
// instructions have been executed since reset. Zero removes the limit.
func (cpu *Cpu6502) SetInstructionLimit(n uint64) { cpu.instLimit = n }

////////////////////////////////////////////////////////////////
// Status Flags
type SF6502 byte // 6502 Status Flag

const (
	StatusFlagC SF6502 = 1 << iota // Carry
	StatusFlagZ                    // Zero
	StatusFlagI                    // Interrupt Disable
	StatusFlagD                    // Decimal Mode
	StatusFlagB                    // Break Command
	StatusFlagU                    // UNUSED, always set
	StatusFlagV                    // Overflow
	StatusFlagN                    // Negative
)

const statusReset = byte(StatusFlagU)

// Convenience functions used to get and set CPU status flags.
func (cpu *Cpu6502) getFlag(f SF6502) byte {
	return cpu.Status & byte(f)
}

func (cpu *Cpu6502) setFlag(f SF6502, b bool) {
	if b {
		cpu.Status |= byte(f)
	} else {
		cpu.Status &^= byte(f)
	}
}

// Flag reports whether a status flag is set.
func (cpu *Cpu6502) Flag(f SF6502) bool { return cpu.getFlag(f) != 0 }

// carry returns the carry flag as 0 or 1.
func (cpu *Cpu6502) carry() byte {
	return cpu.Status & byte(StatusFlagC)
}

// setZN updates the zero and negative flags from a result.
func (cpu *Cpu6502) setZN(v byte) {
	cpu.setFlag(StatusFlagZ, v == 0)
	cpu.setFlag(StatusFlagN, v&(1<<7) > 0)
}

////////////////////////////////////////////////////////////////
// Fetching

// consumeByte reads the byte under the program counter and advances it.
func (cpu *Cpu6502) consumeByte() byte {
	data := cpu.bus.GetByte(cpu.Pc)
	cpu.Pc++

	return data
}

// consumeWord reads the little endian word under the program counter and
// advances it by two.
func (cpu *Cpu6502) consumeWord() uint16 {
	word := cpu.bus.GetWord(cpu.Pc)
	cpu.Pc += 2

	return word
}

// fetch returns the operand of the current instruction.
func (cpu *Cpu6502) fetch() byte {
	switch cpu.mode {
	case IMM:
		return cpu.fetched
	case IMP, ACC:
		return cpu.A
	}
	return cpu.bus.GetByte(cpu.addrAbs)
}

// store writes the result of a read-modify-write instruction back to where
// its operand came from.
func (cpu *Cpu6502) store(data byte) {
	if cpu.mode == ACC {
		cpu.A = data
		return
	}
	cpu.bus.SetByte(cpu.addrAbs, data)
}

////////////////////////////////////////////////////////////////
// Stack

// stackPush writes to the stack page and moves the stack pointer down. A push
// with the stack pointer at 0x00 is fatal rather than wrapping around.
func (cpu *Cpu6502) stackPush(data byte) error {
	cpu.bus.SetByte(StackBase|uint16(cpu.Sp), data)

	if cpu.Sp == 0x00 {
		return ErrStackOverflow
	}
	cpu.Sp--

	return nil
}

// stackPop moves the stack pointer up and reads the stack page. At 0xFF the
// pointer stays put and the top cell is returned again.
func (cpu *Cpu6502) stackPop() byte {
	if cpu.Sp != 0xFF {
		cpu.Sp++
	}
	return cpu.bus.GetByte(StackBase | uint16(cpu.Sp))
}

func (cpu *Cpu6502) stackPushWord(data uint16) error {
	if err := cpu.stackPush(byte(data >> 8)); err != nil {
		return err
	}
	return cpu.stackPush(byte(data))
}

func (cpu *Cpu6502) stackPopWord() uint16 {
	lo := cpu.stackPop()
	hi := cpu.stackPop()

	return uint16(hi)<<8 | uint16(lo)
}

////////////////////////////////////////////////////////////////
// Execution

func (cpu *Cpu6502) Reset() {
	// Clear registers, reset stack pointer
	cpu.A = 0x00
	cpu.X = 0x00
	cpu.Y = 0x00
	cpu.Pc = 0x0000
	cpu.Sp = 0xFF
	cpu.Status = statusReset

	cpu.state = Running
	cpu.opcode = 0x00
	cpu.mode = IMP
	cpu.addrAbs = 0x0000
	cpu.addrBase = 0x0000
	cpu.fetched = 0x00
	cpu.instCount = 0
}

func (cpu *Cpu6502) State() State { return cpu.state }

func (cpu *Cpu6502) Halted() bool { return cpu.state == Halted }

// InstructionCount is the number of instructions executed since reset.
func (cpu *Cpu6502) InstructionCount() uint64 { return cpu.instCount }

// Opcode is the opcode of the most recently executed instruction.
func (cpu *Cpu6502) Opcode() byte { return cpu.opcode }

// SetProgramCounter moves execution to pc. A halted CPU becomes runnable again
// but nothing executes until the caller calls Run or Step (Start or Step on
// the Emulator).
func (cpu *Cpu6502) SetProgramCounter(pc uint16) {
	cpu.Pc = pc
	cpu.state = Running
}

// Step executes one instruction. A halted CPU does nothing.
func (cpu *Cpu6502) Step() error {
	if cpu.state == Halted {
		return nil
	}
	if cpu.instLimit > 0 && cpu.instCount >= cpu.instLimit {
		return ErrInstructionLimit
	}

	if cpu.logger != nil {
		cpu.logger.Print(cpu.traceLine(cpu.Pc))
	}

	cpu.opcode = cpu.consumeByte()

	inst := &instructions[cpu.opcode]
	if inst.Execute == nil {
		panic(fmt.Sprintf("emu: opcode %#02x has no instruction", cpu.opcode))
	}

	cpu.resolve(inst.Mode)
	err := inst.Execute(cpu)
	cpu.instCount++

	return err
}

// Run is the decode loop: it executes instructions until the CPU halts or an
// instruction fails.
func (cpu *Cpu6502) Run() error {
	for cpu.state == Running {
		if err := cpu.Step(); err != nil {
			return err
		}
	}

	return nil
}

// Registers is a snapshot of the architectural registers.
type Registers struct {
	A      byte
	X      byte
	Y      byte
	Sp     byte
	Pc     uint16
	Status byte
}

func (r Registers) String() string {
	return fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X PC:%04X", r.A, r.X, r.Y, r.Status, r.Sp, r.Pc)
}

func (cpu *Cpu6502) Registers() Registers {
	return Registers{
		A:      cpu.A,
		X:      cpu.X,
		Y:      cpu.Y,
		Sp:     cpu.Sp,
		Pc:     cpu.Pc,
		Status: cpu.Status,
	}
}
