package asm

import (
	"fmt"

	"github.com/tskaggs/six502/isa"
)

// DisassembleOne decodes the single instruction starting at data[0],
// returning its mnemonic-and-operand text and the number of bytes it
// occupies (1, 2, or 3).
func DisassembleOne(data []byte) (string, int, error) {
	if len(data) == 0 {
		return "", 0, fmt.Errorf("asm: empty input")
	}
	opcode := data[0]
	e := isa.ByOpcode[opcode]
	if e == nil {
		return "", 0, &ErrIllegalOpcode{Opcode: opcode}
	}
	n := int(e.Mode.OperandLen())
	if len(data) < 1+n {
		return "", 0, fmt.Errorf("asm: truncated operand for %s at opcode 0x%02X", e.Mnemonic, opcode)
	}
	operand := formatOperand(e.Mode, data[1:1+n])
	if operand == "" {
		return e.Mnemonic, 1 + n, nil
	}
	return e.Mnemonic + " " + operand, 1 + n, nil
}

// Disassemble decodes a full byte stream into one line of text per
// instruction.
func Disassemble(data []byte) ([]string, error) {
	var lines []string
	for i := 0; i < len(data); {
		text, n, err := DisassembleOne(data[i:])
		if err != nil {
			return lines, err
		}
		lines = append(lines, text)
		i += n
	}
	return lines, nil
}

func formatOperand(mode isa.AddressingMode, operand []byte) string {
	switch mode {
	case isa.Implicit:
		return ""
	case isa.Accumulator:
		return "A"
	case isa.Immediate:
		return fmt.Sprintf("#%02X", operand[0])
	case isa.ZeroPage:
		return fmt.Sprintf("$%02X", operand[0])
	case isa.ZeroPageX:
		return fmt.Sprintf("$%02X,X", operand[0])
	case isa.ZeroPageY:
		return fmt.Sprintf("$%02X,Y", operand[0])
	case isa.Relative:
		return fmt.Sprintf("%02X", operand[0])
	case isa.Absolute:
		return fmt.Sprintf("$%04X", word(operand))
	case isa.AbsoluteX:
		return fmt.Sprintf("$%04X,X", word(operand))
	case isa.AbsoluteY:
		return fmt.Sprintf("$%04X,Y", word(operand))
	case isa.Indirect:
		return fmt.Sprintf("($%04X)", word(operand))
	case isa.IndexedIndirectX:
		return fmt.Sprintf("($%02X,X)", operand[0])
	case isa.IndirectIndexedY:
		return fmt.Sprintf("($%02X),Y", operand[0])
	default:
		return ""
	}
}

// word reconstructs a little-endian (lo, hi) pair into a 16-bit value.
func word(operand []byte) uint16 {
	return uint16(operand[1])<<8 | uint16(operand[0])
}
