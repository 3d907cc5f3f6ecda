package cpu

import "fmt"

// ErrIllegalOpcode reports a fetch of a byte with no isa.Entry, the
// same condition the disassembler reports as asm.ErrIllegalOpcode.
type ErrIllegalOpcode struct {
	Opcode byte
	PC     uint16
}

func (e *ErrIllegalOpcode) Error() string {
	return fmt.Sprintf("illegal opcode 0x%02X at $%04X", e.Opcode, e.PC)
}
