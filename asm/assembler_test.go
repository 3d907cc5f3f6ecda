package asm

import (
	"reflect"
	"testing"
)

func TestAssembleLiteralScenarios(t *testing.T) {
	cases := []struct {
		lines []string
		want  []byte
	}{
		{[]string{"ADC #12"}, []byte{0x69, 0x12}},
		{[]string{"ADC $1234"}, []byte{0x6D, 0x34, 0x12}},
		{[]string{"ADC ($FA,X)"}, []byte{0x61, 0xFA}},
		{[]string{"BRK"}, []byte{0x00}},
		{[]string{"ASL A"}, []byte{0x0A}},
	}
	for _, c := range cases {
		got, err := Assemble(c.lines)
		if err != nil {
			t.Fatalf("Assemble(%v) returned error: %v", c.lines, err)
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Assemble(%v) = % X, want % X", c.lines, got, c.want)
		}
	}
}

func TestAssembleUnknownMnemonic(t *testing.T) {
	_, err := Assemble([]string{"FOO"})
	if _, ok := err.(*ErrUnknownMnemonic); !ok {
		t.Fatalf("Assemble(FOO) error = %v (%T), want *ErrUnknownMnemonic", err, err)
	}
}

func TestAssembleNoMatchingAddressingMode(t *testing.T) {
	_, err := Assemble([]string{"ADC ZZZ"})
	if _, ok := err.(*ErrNoMatchingAddressingMode); !ok {
		t.Fatalf("Assemble error = %v (%T), want *ErrNoMatchingAddressingMode", err, err)
	}
}

func TestAssembleAmbiguityIsFirstMatch(t *testing.T) {
	// "$05" matches both ZeroPage ("$@byte") and Absolute
	// ("$@byte@byte", which accepts one to four digits); ADC's candidate
	// list tries ZeroPage first, so the two-byte ZeroPage form wins.
	got, err := Assemble([]string{"ADC $05"})
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}
	if !reflect.DeepEqual(got, []byte{0x65, 0x05}) {
		t.Errorf("Assemble(ADC $05) = % X, want 65 05", got)
	}
}
