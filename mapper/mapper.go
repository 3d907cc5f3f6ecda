// Package mapper implements cartridge-side address translation: the
// bank-select logic that turns a CPU address in $4020-$FFFF into an
// offset into PRG-ROM or PRG-RAM. CHR data is not served.
package mapper

import "github.com/tskaggs/six502/ines"

// Mapper is the cartridge-side half of the CPU memory map, addressed at
// $4020-$FFFF; it has no PPU-side access path for CHR data.
type Mapper interface {
	Load(addr uint16) byte
	Store(addr uint16, data byte)
}

// New builds the Mapper for rom's header-declared mapper number. Only
// mapper 0 (NROM) and mapper 1 (MMC1) are implemented; any other
// number returns nil.
func New(rom *ines.ROM) Mapper {
	switch rom.Mapper {
	case 0:
		return newNROM(rom)
	case 1:
		return newMMC1(rom)
	default:
		return nil
	}
}
