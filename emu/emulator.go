package emu

import (
	"io"

	"github.com/pkg/errors"
)

// Config holds the knobs of an Emulator.
type Config struct {
	Trace           io.Writer // Instruction trace destination, nil to disable
	MaxInstructions uint64    // Start gives up after this many instructions, 0 for no limit
}

func DefaultConfig() Config {
	return Config{}
}

// Emulator wires memory, bus, video and CPU together.
type Emulator struct {
	Ram   *Ram
	Bus   *AddressBus
	Video *VideoController
	Cpu   *Cpu6502
}

func NewEmulator(cfg Config) *Emulator {
	ram := NewRam()
	video := NewVideoController(ram)
	bus := NewAddressBus(ram, video)
	cpu := NewCpu6502(bus)

	cpu.SetTrace(cfg.Trace)
	cpu.SetInstructionLimit(cfg.MaxInstructions)

	e := &Emulator{
		Ram:   ram,
		Bus:   bus,
		Video: video,
		Cpu:   cpu,
	}
	e.Reset()

	return e
}

// Reset clears memory, then the frame, then the CPU.
func (e *Emulator) Reset() {
	e.Ram.Reset()
	e.Video.Reset()
	e.Cpu.Reset()
}

// LoadProgram copies program to ProgramStart and points the CPU at it without
// running anything.
func (e *Emulator) LoadProgram(program []byte) error {
	if len(program) > MemorySize-int(ProgramStart) {
		return errors.Wrapf(ErrProgramTooLarge, "%d bytes at $%04X", len(program), ProgramStart)
	}

	e.Ram.Write(ProgramStart, program)
	e.Cpu.SetProgramCounter(ProgramStart)

	return nil
}

// Load loads program and runs it until the CPU halts.
func (e *Emulator) Load(program []byte) error {
	if err := e.LoadProgram(program); err != nil {
		return err
	}
	return e.Start()
}

// Start runs the decode loop from the current program counter.
func (e *Emulator) Start() error {
	if err := e.Cpu.Run(); err != nil {
		return e.wrap(err)
	}
	return nil
}

// Step executes a single instruction.
func (e *Emulator) Step() error {
	if err := e.Cpu.Step(); err != nil {
		return e.wrap(err)
	}
	return nil
}

func (e *Emulator) Halted() bool { return e.Cpu.Halted() }

func (e *Emulator) wrap(err error) error {
	return errors.Wrapf(err, "pc $%04X opcode %02X", e.Cpu.Pc, e.Cpu.Opcode())
}
