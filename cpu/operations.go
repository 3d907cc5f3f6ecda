package cpu

import "github.com/tskaggs/six502/isa"

// ops maps a mnemonic to its implementation. init builds the opcode-keyed
// dispatch table from isa.Entries plus this map, so adding an addressing
// mode to the table automatically wires every existing opcode of that
// mnemonic without touching this file.
var ops = map[string]op{
	"ADC": adc, "SBC": sbc,
	"AND": and, "ORA": ora, "EOR": eor, "BIT": bit,
	"ASL": asl, "LSR": lsr, "ROL": rol, "ROR": ror,
	"INC": inc, "DEC": dec, "INX": inx, "INY": iny, "DEX": dex, "DEY": dey,
	"CMP": cmp, "CPX": cpx, "CPY": cpy,
	"LDA": lda, "LDX": ldx, "LDY": ldy,
	"STA": sta, "STX": stx, "STY": sty,
	"TAX": tax, "TAY": tay, "TSX": tsx, "TXA": txa, "TXS": txs, "TYA": tya,
	"PHA": pha, "PHP": php, "PLA": pla, "PLP": plp,
	"JMP": jmp, "JSR": jsr, "RTS": rts, "RTI": rti, "BRK": brk,
	"BCC": bcc, "BCS": bcs, "BEQ": beq, "BNE": bne,
	"BMI": bmi, "BPL": bpl, "BVC": bvc, "BVS": bvs,
	"CLC": clc, "CLD": cld, "CLI": cli, "CLV": clv,
	"SEC": sec, "SED": sed, "SEI": sei,
	"NOP": nop,
}

func init() {
	for i := range isa.Entries {
		e := &isa.Entries[i]
		fn, ok := ops[e.Mnemonic]
		if !ok {
			panic("cpu: no operation implementation for " + e.Mnemonic)
		}
		dispatch[e.Opcode] = fn
	}
}

// --- arithmetic -------------------------------------------------------

func adc(c *CPU, e *isa.Entry, operand uint16) int {
	c.addWithCarry(byte(operand))
	return 0
}

func sbc(c *CPU, e *isa.Entry, operand uint16) int {
	c.addWithCarry(^byte(operand))
	return 0
}

// addWithCarry is the shared ADC/SBC core; SBC calls it with the
// operand's one's complement, which is arithmetically identical to
// subtraction with borrow when combined with the carry-in.
func (c *CPU) addWithCarry(value byte) {
	carryIn := uint16(0)
	if c.Flags.C {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(value) + carryIn
	result := byte(sum)
	c.Flags.C = sum > 0xFF
	c.Flags.V = (c.A^result)&(value^result)&0x80 != 0
	c.A = result
	c.setZN(c.A)
}

func and(c *CPU, e *isa.Entry, operand uint16) int {
	c.A &= byte(operand)
	c.setZN(c.A)
	return 0
}

func ora(c *CPU, e *isa.Entry, operand uint16) int {
	c.A |= byte(operand)
	c.setZN(c.A)
	return 0
}

func eor(c *CPU, e *isa.Entry, operand uint16) int {
	c.A ^= byte(operand)
	c.setZN(c.A)
	return 0
}

func bit(c *CPU, e *isa.Entry, operand uint16) int {
	v := byte(operand)
	c.Flags.Z = c.A&v == 0
	c.Flags.V = v&0x40 != 0
	c.Flags.N = v&0x80 != 0
	return 0
}

// --- shifts/rotates (Store action: operand is an address, or 0 for
// Accumulator mode, in which case e.Mode distinguishes the target) ----

func (c *CPU) readShiftTarget(e *isa.Entry, operand uint16) byte {
	if e.Mode == isa.Accumulator {
		return c.A
	}
	return c.mem.Load(operand)
}

func (c *CPU) writeShiftTarget(e *isa.Entry, operand uint16, v byte) {
	if e.Mode == isa.Accumulator {
		c.A = v
		return
	}
	c.mem.Store(operand, v)
}

func asl(c *CPU, e *isa.Entry, operand uint16) int {
	v := c.readShiftTarget(e, operand)
	c.Flags.C = v&0x80 != 0
	v <<= 1
	c.writeShiftTarget(e, operand, v)
	c.setZN(v)
	return 0
}

func lsr(c *CPU, e *isa.Entry, operand uint16) int {
	v := c.readShiftTarget(e, operand)
	c.Flags.C = v&0x01 != 0
	v >>= 1
	c.writeShiftTarget(e, operand, v)
	c.setZN(v)
	return 0
}

func rol(c *CPU, e *isa.Entry, operand uint16) int {
	v := c.readShiftTarget(e, operand)
	carryIn := byte(0)
	if c.Flags.C {
		carryIn = 1
	}
	c.Flags.C = v&0x80 != 0
	v = v<<1 | carryIn
	c.writeShiftTarget(e, operand, v)
	c.setZN(v)
	return 0
}

func ror(c *CPU, e *isa.Entry, operand uint16) int {
	v := c.readShiftTarget(e, operand)
	carryIn := byte(0)
	if c.Flags.C {
		carryIn = 0x80
	}
	c.Flags.C = v&0x01 != 0
	v = v>>1 | carryIn
	c.writeShiftTarget(e, operand, v)
	c.setZN(v)
	return 0
}

// --- increment/decrement ----------------------------------------------

func inc(c *CPU, e *isa.Entry, operand uint16) int {
	v := c.mem.Load(operand) + 1
	c.mem.Store(operand, v)
	c.setZN(v)
	return 0
}

func dec(c *CPU, e *isa.Entry, operand uint16) int {
	v := c.mem.Load(operand) - 1
	c.mem.Store(operand, v)
	c.setZN(v)
	return 0
}

func inx(c *CPU, e *isa.Entry, operand uint16) int { c.X++; c.setZN(c.X); return 0 }
func iny(c *CPU, e *isa.Entry, operand uint16) int { c.Y++; c.setZN(c.Y); return 0 }
func dex(c *CPU, e *isa.Entry, operand uint16) int { c.X--; c.setZN(c.X); return 0 }
func dey(c *CPU, e *isa.Entry, operand uint16) int { c.Y--; c.setZN(c.Y); return 0 }

// --- compares ------------------------------------------------------

func compare(c *CPU, reg byte, value byte) {
	result := reg - value
	c.Flags.C = reg >= value
	c.setZN(result)
}

func cmp(c *CPU, e *isa.Entry, operand uint16) int { compare(c, c.A, byte(operand)); return 0 }
func cpx(c *CPU, e *isa.Entry, operand uint16) int { compare(c, c.X, byte(operand)); return 0 }
func cpy(c *CPU, e *isa.Entry, operand uint16) int { compare(c, c.Y, byte(operand)); return 0 }

// --- loads/stores -------------------------------------------------

func lda(c *CPU, e *isa.Entry, operand uint16) int { c.A = byte(operand); c.setZN(c.A); return 0 }
func ldx(c *CPU, e *isa.Entry, operand uint16) int { c.X = byte(operand); c.setZN(c.X); return 0 }
func ldy(c *CPU, e *isa.Entry, operand uint16) int { c.Y = byte(operand); c.setZN(c.Y); return 0 }

func sta(c *CPU, e *isa.Entry, operand uint16) int { c.mem.Store(operand, c.A); return 0 }
func stx(c *CPU, e *isa.Entry, operand uint16) int { c.mem.Store(operand, c.X); return 0 }
func sty(c *CPU, e *isa.Entry, operand uint16) int { c.mem.Store(operand, c.Y); return 0 }

// --- transfers ------------------------------------------------------

func tax(c *CPU, e *isa.Entry, operand uint16) int { c.X = c.A; c.setZN(c.X); return 0 }
func tay(c *CPU, e *isa.Entry, operand uint16) int { c.Y = c.A; c.setZN(c.Y); return 0 }
func tsx(c *CPU, e *isa.Entry, operand uint16) int { c.X = c.SP; c.setZN(c.X); return 0 }
func txa(c *CPU, e *isa.Entry, operand uint16) int { c.A = c.X; c.setZN(c.A); return 0 }
func txs(c *CPU, e *isa.Entry, operand uint16) int { c.SP = c.X; return 0 }
func tya(c *CPU, e *isa.Entry, operand uint16) int { c.A = c.Y; c.setZN(c.A); return 0 }

// --- stack ----------------------------------------------------------

func pha(c *CPU, e *isa.Entry, operand uint16) int { c.push(c.A); return 0 }

func php(c *CPU, e *isa.Entry, operand uint16) int {
	f := c.Flags
	f.B = true
	c.push(f.Encode())
	return 0
}

func pla(c *CPU, e *isa.Entry, operand uint16) int {
	c.A = c.pop()
	c.setZN(c.A)
	return 0
}

func plp(c *CPU, e *isa.Entry, operand uint16) int {
	b := c.pop()
	c.Flags.Decode(b)
	c.Flags.B = false
	return 0
}

// --- jumps/calls ------------------------------------------------------

// jmp and jsr receive operand as the jump target directly: the
// evaluator has already resolved Absolute/Indirect addressing to the
// destination address, and Step has already advanced PC past the whole
// instruction, so there is no post-increment left to account for.
func jmp(c *CPU, e *isa.Entry, operand uint16) int {
	c.PC = operand
	return 0
}

func jsr(c *CPU, e *isa.Entry, operand uint16) int {
	c.push16(c.PC - 1)
	c.PC = operand
	return 0
}

func rts(c *CPU, e *isa.Entry, operand uint16) int {
	c.PC = c.pop16() + 1
	return 0
}

func rti(c *CPU, e *isa.Entry, operand uint16) int {
	b := c.pop()
	c.Flags.Decode(b)
	c.Flags.B = false
	c.PC = c.pop16()
	return 0
}

func brk(c *CPU, e *isa.Entry, operand uint16) int {
	c.push16(c.PC + 1)
	f := c.Flags
	f.B = true
	c.push(f.Encode())
	c.Flags.I = true
	c.PC = mem16(c, BRKVector)
	return 0
}

func mem16(c *CPU, addr uint16) uint16 {
	lo := uint16(c.mem.Load(addr))
	hi := uint16(c.mem.Load(addr + 1))
	return hi<<8 | lo
}

// --- branches -------------------------------------------------------

func branch(c *CPU, target uint16, taken bool) int {
	if !taken {
		return 0
	}
	cycles := 1
	if pageCrossed(c.PC, target) {
		cycles++
	}
	c.PC = target
	return cycles
}

func bcc(c *CPU, e *isa.Entry, operand uint16) int { return branch(c, operand, !c.Flags.C) }
func bcs(c *CPU, e *isa.Entry, operand uint16) int { return branch(c, operand, c.Flags.C) }
func beq(c *CPU, e *isa.Entry, operand uint16) int { return branch(c, operand, c.Flags.Z) }
func bne(c *CPU, e *isa.Entry, operand uint16) int { return branch(c, operand, !c.Flags.Z) }
func bmi(c *CPU, e *isa.Entry, operand uint16) int { return branch(c, operand, c.Flags.N) }
func bpl(c *CPU, e *isa.Entry, operand uint16) int { return branch(c, operand, !c.Flags.N) }
func bvc(c *CPU, e *isa.Entry, operand uint16) int { return branch(c, operand, !c.Flags.V) }
func bvs(c *CPU, e *isa.Entry, operand uint16) int { return branch(c, operand, c.Flags.V) }

// --- flag ops ---------------------------------------------------------

func clc(c *CPU, e *isa.Entry, operand uint16) int { c.Flags.C = false; return 0 }
func sec(c *CPU, e *isa.Entry, operand uint16) int { c.Flags.C = true; return 0 }
func cli(c *CPU, e *isa.Entry, operand uint16) int { c.Flags.I = false; return 0 }
func sei(c *CPU, e *isa.Entry, operand uint16) int { c.Flags.I = true; return 0 }
func clv(c *CPU, e *isa.Entry, operand uint16) int { c.Flags.V = false; return 0 }

// cld/sed genuinely toggle D, unlike cores that model it as a no-op:
// the Decimal flag is settable even though BCD arithmetic itself is
// not implemented.
func cld(c *CPU, e *isa.Entry, operand uint16) int { c.Flags.D = false; return 0 }
func sed(c *CPU, e *isa.Entry, operand uint16) int { c.Flags.D = true; return 0 }

func nop(c *CPU, e *isa.Entry, operand uint16) int { return 0 }
