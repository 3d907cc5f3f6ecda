package cpu

import (
	"github.com/tskaggs/six502/isa"
	"github.com/tskaggs/six502/mem"
)

// BRKVector is the fixed address of the IRQ/BRK vector; RESET and NMI
// vectoring are not modeled.
const BRKVector = 0xFFFE

// CPU is a cycle-counting MOS 6502 core bound to a single Memory. It
// carries no PPU/APU/bus awareness of its own -- m is whatever the
// caller wires up, console-wide bus or a bare test RAM alike.
type CPU struct {
	PC    uint16
	A, X, Y, SP byte
	Flags Flags

	mem mem.Memory

	// Halted is set by illegal-opcode fetches; Step refuses to advance
	// further once set rather than panicking.
	Halted bool
}

// op is the signature every mnemonic implementation shares. operand is
// the value evaluate produced (a loaded byte widened to uint16 for
// Load actions, an effective address for Store actions); extraCycles
// lets an operation report a branch-taken penalty the addressing mode
// could not have known about.
type op func(c *CPU, e *isa.Entry, operand uint16) (extraCycles int)

var dispatch [256]op

// NewCPU wires a CPU to the given memory, with all registers and flags
// at their reset state.
func NewCPU(m mem.Memory) *CPU {
	c := &CPU{mem: m}
	c.Reset()
	return c
}

// Reset zeros every register and flag -- this core does not model a
// RESET vector fetch.
func (c *CPU) Reset() {
	c.PC = 0
	c.A, c.X, c.Y, c.SP = 0, 0, 0, 0
	c.Flags = Flags{}
	c.Halted = false
}

// Step fetches, decodes, and executes one instruction, returning the
// number of cycles it cost (base cost plus any page-cross or
// branch-taken penalty). It returns *ErrIllegalOpcode, without
// advancing PC or mutating any register, when the opcode at PC has no
// isa.Entry.
func (c *CPU) Step() (int, error) {
	if c.Halted {
		return 0, &ErrIllegalOpcode{Opcode: c.mem.Load(c.PC), PC: c.PC}
	}

	opcode := c.mem.Load(c.PC)
	entry := isa.ByOpcode[opcode]
	if entry == nil {
		c.Halted = true
		return 0, &ErrIllegalOpcode{Opcode: opcode, PC: c.PC}
	}

	operand, penalty := evaluate(c.mem, c.PC, c.X, c.Y, entry.Mode, entry.Action)

	pc := c.PC
	c.PC = pc + 1 + uint16(entry.Mode.OperandLen())

	fn := dispatch[opcode]
	if fn == nil {
		c.Halted = true
		return 0, &ErrIllegalOpcode{Opcode: opcode, PC: pc}
	}
	extra := fn(c, entry, operand)

	return baseCycles(entry) + penalty + extra, nil
}

func (c *CPU) push(b byte) {
	c.mem.Store(0x0100+uint16(c.SP), b)
	c.SP--
}

func (c *CPU) pop() byte {
	c.SP++
	return c.mem.Load(0x0100 + uint16(c.SP))
}

func (c *CPU) push16(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *CPU) pop16() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}
