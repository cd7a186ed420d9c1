package emu

// Zero page cells the frontends feed.
const (
	RandomAddr uint16 = 0x00FE // New random byte before every instruction.
	KeyAddr    uint16 = 0x00FF // ASCII code of the last key pressed.
)

// PressKey latches an ASCII key code where programs poll for input.
func (e *Emulator) PressKey(code byte) {
	e.Bus.SetByte(KeyAddr, code)
}

// LatchCode picks the key code to latch from one frame of input: the typed
// text and the codes of bound keys pressed, in binding order. Bound keys win
// over typed text and later entries win over earlier ones. Non-ASCII runes are
// ignored.
func LatchCode(typed string, bound []byte) (byte, bool) {
	var code byte
	pressed := false

	for _, r := range typed {
		if r < 0x80 {
			code = byte(r)
			pressed = true
		}
	}
	if len(bound) > 0 {
		code = bound[len(bound)-1]
		pressed = true
	}

	return code, pressed
}

// RunFrame executes up to n instructions, stopping early when the CPU halts.
// If rnd is not nil a fresh byte from it is stored at RandomAddr before each
// instruction. It returns the number of instructions executed.
func (e *Emulator) RunFrame(n int, rnd func() byte) (int, error) {
	for i := 0; i < n; i++ {
		if e.Halted() {
			return i, nil
		}
		if rnd != nil {
			e.Bus.SetByte(RandomAddr, rnd())
		}
		if err := e.Step(); err != nil {
			return i + 1, err
		}
	}

	return n, nil
}
