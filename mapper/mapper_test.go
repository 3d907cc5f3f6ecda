package mapper

import (
	"testing"

	"github.com/tskaggs/six502/ines"
)

func TestNROMReadWrapsSingleBank(t *testing.T) {
	prg := make([]byte, prgBankSize)
	prg[0] = 0xAA
	prg[1] = 0xBB
	rom := &ines.ROM{Mapper: 0, PRGROM: prg}
	m := New(rom)

	if got := m.Load(0x8000); got != 0xAA {
		t.Errorf("Load($8000) = 0x%02X, want 0xAA", got)
	}
	// NROM-128: $C000 mirrors $8000.
	if got := m.Load(0xC000); got != 0xAA {
		t.Errorf("Load($C000) = 0x%02X, want 0xAA (mirrored)", got)
	}
}

func TestNROMWritesIgnored(t *testing.T) {
	prg := make([]byte, prgBankSize)
	prg[0] = 0x42
	rom := &ines.ROM{Mapper: 0, PRGROM: prg}
	m := New(rom)
	m.Store(0x8000, 0xFF)
	if got := m.Load(0x8000); got != 0x42 {
		t.Errorf("PRG-ROM mutated by a store: got 0x%02X, want 0x42", got)
	}
}

func TestNROMPRGRAM(t *testing.T) {
	rom := &ines.ROM{Mapper: 0, PRGROM: make([]byte, prgBankSize)}
	m := New(rom)
	m.Store(0x6000, 0x7E)
	if got := m.Load(0x6000); got != 0x7E {
		t.Errorf("PRG-RAM round trip: got 0x%02X, want 0x7E", got)
	}
}

const prgBankSize = 0x4000

func writeMMC1(m *mmc1, addr uint16, value byte) {
	// Five single-bit writes commit the shift register's current
	// contents (low bit first) to the register addr selects.
	for i := 0; i < 5; i++ {
		m.Store(addr, (value>>uint(i))&1)
	}
}

func TestMMC1ControlReset(t *testing.T) {
	prg := make([]byte, 4*prgBankSize)
	rom := &ines.ROM{Mapper: 1, PRGROM: prg}
	m := newMMC1(rom)

	m.Store(0x8000, 0x80) // reset bit
	if m.control&0x0C != 0x0C {
		t.Errorf("control = 0x%02X, want PRG mode bits set", m.control)
	}
}

func TestMMC1PRGBankSwitch32K(t *testing.T) {
	prg := make([]byte, 4*prgBankSize)
	prg[0*prgBankSizeMMC1] = 0x01
	prg[2*prgBankSizeMMC1] = 0x02
	rom := &ines.ROM{Mapper: 1, PRGROM: prg}
	m := newMMC1(rom)

	// control = 0x00 selects PRG mode 0 (32 KiB switch).
	writeMMC1(m, 0x8000, 0x00)
	// PRG bank register = 2 (even, selects the 3rd/4th 16 KiB banks).
	writeMMC1(m, 0xE000, 0x02)

	if got := m.Load(0x8000); got != 0x02 {
		t.Errorf("Load($8000) = 0x%02X, want 0x02", got)
	}
}

func TestMMC1PRGMode3FixesLastBank(t *testing.T) {
	prg := make([]byte, 4*prgBankSize)
	prg[3*prgBankSizeMMC1] = 0x99
	rom := &ines.ROM{Mapper: 1, PRGROM: prg}
	m := newMMC1(rom)

	writeMMC1(m, 0x8000, 0x0C) // mode 3
	writeMMC1(m, 0xE000, 0x00)

	if got := m.Load(0xC000); got != 0x99 {
		t.Errorf("Load($C000) = 0x%02X, want 0x99 (last bank fixed)", got)
	}
}
