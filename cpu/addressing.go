package cpu

import (
	"github.com/tskaggs/six502/isa"
	"github.com/tskaggs/six502/mem"
)

// evaluate fetches the operand bytes for mode via m (the instruction's
// opcode is assumed to sit at pc, unread by this call), and reports the
// operand: for a Load action it is the data byte already fetched from
// the effective address, cast to uint16; for a Store action it is the
// effective address itself, left for the operation to read, write, or
// jump to. The second return is the addressing-mode's page-crossing
// cycle penalty; branch-taken penalties are not part of it, since only
// the operation knows whether the branch was taken.
func evaluate(m mem.Memory, pc uint16, x, y byte, mode isa.AddressingMode, action isa.MemoryAction) (operand uint16, penalty int) {
	switch mode {
	case isa.Implicit, isa.Accumulator:
		return 0, 0

	case isa.Immediate:
		addr := pc + 1
		if action == isa.Load {
			return uint16(m.Load(addr)), 0
		}
		return addr, 0

	case isa.ZeroPage:
		addr := uint16(m.Load(pc + 1))
		return loadOrAddr(m, addr, action), 0

	case isa.ZeroPageX:
		addr := uint16(m.Load(pc+1) + x)
		return loadOrAddr(m, addr, action), 0

	case isa.ZeroPageY:
		addr := uint16(m.Load(pc+1) + y)
		return loadOrAddr(m, addr, action), 0

	case isa.Relative:
		offset := m.Load(pc + 1)
		target := pc + 2 + uint16(offset)
		if offset >= 0x80 {
			target -= 0x100
		}
		return target, 0

	case isa.Absolute:
		addr := mem.Load16(m, pc+1)
		return loadOrAddr(m, addr, action), 0

	case isa.AbsoluteX:
		base := mem.Load16(m, pc+1)
		eff := base + uint16(x)
		return loadWithPageCross(m, base, eff, action)

	case isa.AbsoluteY:
		base := mem.Load16(m, pc+1)
		eff := base + uint16(y)
		return loadWithPageCross(m, base, eff, action)

	case isa.Indirect: // JMP only
		ptr := mem.Load16(m, pc+1)
		return mem.Load16(m, ptr), 0

	case isa.IndexedIndirectX:
		zp := m.Load(pc+1) + x
		ptr := zeroPageWord(m, zp)
		return loadOrAddr(m, ptr, action), 0

	case isa.IndirectIndexedY:
		zp := m.Load(pc + 1)
		base := zeroPageWord(m, zp)
		eff := base + uint16(y)
		return loadWithPageCross(m, base, eff, action)

	default:
		return 0, 0
	}
}

func loadOrAddr(m mem.Memory, addr uint16, action isa.MemoryAction) uint16 {
	if action == isa.Load {
		return uint16(m.Load(addr))
	}
	return addr
}

func loadWithPageCross(m mem.Memory, base, eff uint16, action isa.MemoryAction) (uint16, int) {
	if action != isa.Load {
		return eff, 0
	}
	penalty := 0
	if pageCrossed(base, eff) {
		penalty = 1
	}
	return uint16(m.Load(eff)), penalty
}

func pageCrossed(base, eff uint16) bool {
	return base&0xFF00 != eff&0xFF00
}

// zeroPageWord reads a little-endian pointer stored entirely within
// zero page: the high byte's address wraps modulo 256 rather than
// spilling into page 1, the classic 6502 zero-page-indirect behavior.
func zeroPageWord(m mem.Memory, zp byte) uint16 {
	lo := uint16(m.Load(uint16(zp)))
	hi := uint16(m.Load(uint16(zp + 1)))
	return hi<<8 | lo
}

// baseCycles returns an opcode's cycle cost before page-cross or
// branch-taken penalties, per the addressing-mode table. The base
// varies by mnemonic for Implicit (stack and subroutine instructions),
// Absolute (JMP, JSR), and the memory forms of read-modify-write
// instructions, which cost two cycles more than a load in the same mode.
func baseCycles(e *isa.Entry) int {
	switch e.Mnemonic {
	case "ASL", "LSR", "ROL", "ROR", "INC", "DEC":
		switch e.Mode {
		case isa.ZeroPage:
			return 5
		case isa.ZeroPageX, isa.Absolute:
			return 6
		case isa.AbsoluteX:
			return 7
		}
	}
	switch e.Mode {
	case isa.Implicit:
		switch e.Mnemonic {
		case "PHA", "PHP":
			return 3
		case "PLA", "PLP":
			return 4
		case "RTS", "RTI":
			return 6
		case "BRK":
			return 7
		default:
			return 2
		}
	case isa.Accumulator, isa.Immediate, isa.Relative:
		return 2
	case isa.ZeroPage:
		return 3
	case isa.ZeroPageX, isa.ZeroPageY:
		return 4
	case isa.Absolute:
		switch e.Mnemonic {
		case "JMP":
			return 3
		case "JSR":
			return 6
		default:
			return 4
		}
	case isa.AbsoluteX, isa.AbsoluteY:
		if e.Action == isa.Store {
			return 5
		}
		return 4
	case isa.Indirect:
		return 5
	case isa.IndexedIndirectX:
		return 6
	case isa.IndirectIndexedY:
		if e.Action == isa.Store {
			return 6
		}
		return 5
	default:
		return 2
	}
}
