package mapper

import "github.com/tskaggs/six502/ines"

// nrom is Mapper 0 (NROM): no bank switching. PRG-ROM is exposed
// directly at $8000-$FFFF, wrapped to 16 KiB when the cartridge has
// only one bank (NROM-128) rather than two (NROM-256).
type nrom struct {
	prgROM []byte
	prgRAM []byte
}

func newNROM(rom *ines.ROM) *nrom {
	ramSize := rom.PRGRAMSize
	if ramSize == 0 {
		ramSize = 0x2000
	}
	return &nrom{prgROM: rom.PRGROM, prgRAM: make([]byte, ramSize)}
}

func (m *nrom) Load(addr uint16) byte {
	switch {
	case addr >= 0x8000:
		mod := uint16(len(m.prgROM))
		return m.prgROM[(addr-0x8000)%mod]
	case addr >= 0x6000:
		return m.prgRAM[(addr-0x6000)%uint16(len(m.prgRAM))]
	default:
		return 0
	}
}

func (m *nrom) Store(addr uint16, data byte) {
	if addr >= 0x6000 && addr < 0x8000 {
		m.prgRAM[(addr-0x6000)%uint16(len(m.prgRAM))] = data
	}
	// writes to $8000-$FFFF (PRG-ROM) are ignored.
}
