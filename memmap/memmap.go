// Package memmap assembles the NES CPU address space: 2 KiB of mirrored
// internal RAM, PPU and APU/IO register stubs, and a cartridge mapper,
// behind the single mem.Memory interface the cpu package consumes.
package memmap

import (
	"github.com/tskaggs/six502/mapper"
	"github.com/tskaggs/six502/mem"
)

const ramSize = 0x0800 // 2 KiB, mirrored through $0000-$1FFF

// Bus routes CPU loads and stores across the NES address space:
// $0000-$1FFF mirrored RAM, $2000-$3FFF PPU registers (stub),
// $4000-$401F APU/IO (stub), $4020-$FFFF the cartridge mapper.
type Bus struct {
	ram    [ramSize]byte
	mapper mapper.Mapper
}

// New wires a Bus to m, which may be nil to model a cartridge-less
// test harness (mapper-range accesses then read/ignore as 0).
func New(m mapper.Mapper) *Bus {
	return &Bus{mapper: m}
}

var _ mem.Memory = (*Bus)(nil)

func (b *Bus) Load(addr uint16) byte {
	switch {
	case addr < 0x2000:
		return b.ram[addr&0x07FF]
	case addr < 0x4000:
		return 0 // PPU registers: not modelled
	case addr < 0x4020:
		return 0 // APU/IO registers: not modelled
	default:
		if b.mapper == nil {
			return 0
		}
		return b.mapper.Load(addr)
	}
}

func (b *Bus) Store(addr uint16, data byte) {
	switch {
	case addr < 0x2000:
		b.ram[addr&0x07FF] = data
	case addr < 0x4000:
		// PPU registers: not modelled, store ignored.
	case addr < 0x4020:
		// APU/IO registers: not modelled, store ignored.
	default:
		if b.mapper != nil {
			b.mapper.Store(addr, data)
		}
	}
}
