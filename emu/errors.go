package emu

import "github.com/pkg/errors"

var (
	// ErrStackOverflow is returned when a push finds the stack pointer already
	// at 0x00. The stack pointer is left at 0x00.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrJammed is returned by the undocumented opcodes that lock up an NMOS 6502.
	ErrJammed = errors.New("cpu jammed")

	ErrProgramTooLarge  = errors.New("program does not fit in memory")
	ErrInstructionLimit = errors.New("instruction limit reached")
)
