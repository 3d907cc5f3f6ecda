package asm

import "testing"

func TestDisassembleOneLiteralScenarios(t *testing.T) {
	cases := []struct {
		data []byte
		want string
	}{
		{[]byte{0x69, 0x02}, "ADC #02"},
		{[]byte{0x6D, 0xAB, 0xCD}, "ADC $CDAB"},
		{[]byte{0x00}, "BRK"},
		{[]byte{0x0A}, "ASL A"},
	}
	for _, c := range cases {
		got, _, err := DisassembleOne(c.data)
		if err != nil {
			t.Fatalf("DisassembleOne(% X) returned error: %v", c.data, err)
		}
		if got != c.want {
			t.Errorf("DisassembleOne(% X) = %q, want %q", c.data, got, c.want)
		}
	}
}

func TestDisassembleIllegalOpcode(t *testing.T) {
	_, _, err := DisassembleOne([]byte{0x02})
	if _, ok := err.(*ErrIllegalOpcode); !ok {
		t.Fatalf("DisassembleOne(0x02) error = %v (%T), want *ErrIllegalOpcode", err, err)
	}
}

// TestRoundTrip checks that every assigned opcode byte, once
// disassembled, reassembles to the same first byte.
func TestRoundTrip(t *testing.T) {
	for opcode := 0; opcode < 256; opcode++ {
		data := []byte{byte(opcode), 0x12, 0x34}
		text, _, err := DisassembleOne(data)
		if err != nil {
			continue // unassigned opcode
		}
		reassembled, err := Assemble([]string{text})
		if err != nil {
			t.Fatalf("opcode 0x%02X: reassembling %q failed: %v", opcode, text, err)
		}
		if len(reassembled) == 0 || reassembled[0] != byte(opcode) {
			t.Errorf("opcode 0x%02X: disassembled to %q, reassembled to % X", opcode, text, reassembled)
		}
	}
}
