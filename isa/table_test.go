package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByOpcodeReachableFromByName(t *testing.T) {
	for opcode, e := range ByOpcode {
		if e == nil {
			continue
		}
		found := false
		for _, candidate := range ByName[e.Mnemonic] {
			if candidate.Opcode == byte(opcode) {
				found = true
				break
			}
		}
		assert.True(t, found, "opcode 0x%02X not reachable from ByName[%q]", opcode, e.Mnemonic)
	}
}

func TestOperandLengths(t *testing.T) {
	assert.Equal(t, uint16(0), Implicit.OperandLen())
	assert.Equal(t, uint16(0), Accumulator.OperandLen())
	assert.Equal(t, uint16(1), Immediate.OperandLen())
	assert.Equal(t, uint16(1), ZeroPage.OperandLen())
	assert.Equal(t, uint16(1), Relative.OperandLen())
	assert.Equal(t, uint16(2), Absolute.OperandLen())
	assert.Equal(t, uint16(2), AbsoluteX.OperandLen())
	assert.Equal(t, uint16(2), Indirect.OperandLen())
	assert.Equal(t, uint16(1), IndexedIndirectX.OperandLen())
	assert.Equal(t, uint16(1), IndirectIndexedY.OperandLen())
}

func TestNoDuplicateOpcodes(t *testing.T) {
	seen := map[byte]string{}
	for _, e := range Entries {
		if other, ok := seen[e.Opcode]; ok {
			t.Fatalf("opcode 0x%02X assigned to both %s and %s", e.Opcode, other, e.Mnemonic)
		}
		seen[e.Opcode] = e.Mnemonic
	}
	assert.Len(t, seen, len(Entries))
}

func TestCanonicalOpcodesNotDuplicatedAcrossIndexedModes(t *testing.T) {
	// Several historical transcriptions duplicate an opcode between
	// IndexedIndirectX and IndirectIndexedY on AND/LDX/LDY; confirm the
	// canonical table keeps them distinct.
	and := ByName["AND"]
	var izx, izy *Entry
	for _, e := range and {
		switch e.Mode {
		case IndexedIndirectX:
			izx = e
		case IndirectIndexedY:
			izy = e
		}
	}
	assert.NotNil(t, izx)
	assert.NotNil(t, izy)
	assert.NotEqual(t, izx.Opcode, izy.Opcode)
}
