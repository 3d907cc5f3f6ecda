package asm

import (
	"strings"

	"github.com/tskaggs/six502/isa"
)

// Assemble converts source lines of the form "MNEMONIC[ OPERAND]" into
// their machine-code bytes. It does not resolve labels or expressions:
// Relative operands must already be a pre-computed signed displacement
// encoded as a hex byte (see isa.AddressingMode.Pattern for the grammar).
func Assemble(lines []string) ([]byte, error) {
	var out []byte
	for _, line := range lines {
		b, err := assembleLine(line)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

func assembleLine(line string) ([]byte, error) {
	mnemonic, operand := splitLine(line)
	candidates, ok := isa.ByName[mnemonic]
	if !ok {
		return nil, &ErrUnknownMnemonic{Mnemonic: mnemonic}
	}
	for _, e := range candidates {
		if !Matches(e.Mode.Pattern(), operand) {
			continue
		}
		return encode(e, operand), nil
	}
	return nil, &ErrNoMatchingAddressingMode{Mnemonic: mnemonic, Operand: operand}
}

// splitLine splits on the first run of whitespace; a missing operand is
// the empty string.
func splitLine(line string) (mnemonic, operand string) {
	line = strings.TrimSpace(line)
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i+1:])
}

func encode(e *isa.Entry, operand string) []byte {
	out := []byte{e.Opcode}
	switch e.Mode.OperandLen() {
	case 0:
		return out
	case 1:
		return append(out, byte(ExtractNumber(operand)))
	default: // 2
		v := ExtractNumber(operand)
		return append(out, byte(v&0xFF), byte(v>>8))
	}
}
