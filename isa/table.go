package isa

// Entry is one row of the canonical instruction table: a mnemonic paired
// with the addressing mode and opcode byte it encodes to, plus the memory
// action its operation needs from the addressing-mode evaluator.
//
// This is the single source of truth: the dispatch table that drives
// CPU execution and the assembler's by-name table are both built from
// the same Entries slice.
type Entry struct {
	Mnemonic string
	Mode     AddressingMode
	Opcode   byte
	Action   MemoryAction
}

// Entries is the declarative instruction list. It intentionally matches
// the documented NMOS 6502 opcode map rather than any particular source's
// transcription of it -- a handful of historical 6502 cores duplicate
// opcodes between IndexedIndirectX and IndirectIndexedY on AND/LDX/LDY;
// those are transcription bugs and are not reproduced here.
var Entries = []Entry{
	{"ADC", Immediate, 0x69, Load}, {"ADC", ZeroPage, 0x65, Load}, {"ADC", ZeroPageX, 0x75, Load},
	{"ADC", Absolute, 0x6D, Load}, {"ADC", AbsoluteX, 0x7D, Load}, {"ADC", AbsoluteY, 0x79, Load},
	{"ADC", IndexedIndirectX, 0x61, Load}, {"ADC", IndirectIndexedY, 0x71, Load},

	{"AND", Immediate, 0x29, Load}, {"AND", ZeroPage, 0x25, Load}, {"AND", ZeroPageX, 0x35, Load},
	{"AND", Absolute, 0x2D, Load}, {"AND", AbsoluteX, 0x3D, Load}, {"AND", AbsoluteY, 0x39, Load},
	{"AND", IndexedIndirectX, 0x21, Load}, {"AND", IndirectIndexedY, 0x31, Load},

	{"ASL", Accumulator, 0x0A, Store}, {"ASL", ZeroPage, 0x06, Store}, {"ASL", ZeroPageX, 0x16, Store},
	{"ASL", Absolute, 0x0E, Store}, {"ASL", AbsoluteX, 0x1E, Store},

	{"BCC", Relative, 0x90, Store},
	{"BCS", Relative, 0xB0, Store},
	{"BEQ", Relative, 0xF0, Store},

	{"BIT", ZeroPage, 0x24, Load}, {"BIT", Absolute, 0x2C, Load},

	{"BMI", Relative, 0x30, Store},
	{"BNE", Relative, 0xD0, Store},
	{"BPL", Relative, 0x10, Store},

	{"BRK", Implicit, 0x00, Store},

	{"BVC", Relative, 0x50, Store},
	{"BVS", Relative, 0x70, Store},

	{"CLC", Implicit, 0x18, Store},
	{"CLD", Implicit, 0xD8, Store},
	{"CLI", Implicit, 0x58, Store},
	{"CLV", Implicit, 0xB8, Store},

	{"CMP", Immediate, 0xC9, Load}, {"CMP", ZeroPage, 0xC5, Load}, {"CMP", ZeroPageX, 0xD5, Load},
	{"CMP", Absolute, 0xCD, Load}, {"CMP", AbsoluteX, 0xDD, Load}, {"CMP", AbsoluteY, 0xD9, Load},
	{"CMP", IndexedIndirectX, 0xC1, Load}, {"CMP", IndirectIndexedY, 0xD1, Load},

	{"CPX", Immediate, 0xE0, Load}, {"CPX", ZeroPage, 0xE4, Load}, {"CPX", Absolute, 0xEC, Load},
	{"CPY", Immediate, 0xC0, Load}, {"CPY", ZeroPage, 0xC4, Load}, {"CPY", Absolute, 0xCC, Load},

	{"DEC", ZeroPage, 0xC6, Store}, {"DEC", ZeroPageX, 0xD6, Store},
	{"DEC", Absolute, 0xCE, Store}, {"DEC", AbsoluteX, 0xDE, Store},

	{"DEX", Implicit, 0xCA, Store},
	{"DEY", Implicit, 0x88, Store},

	{"EOR", Immediate, 0x49, Load}, {"EOR", ZeroPage, 0x45, Load}, {"EOR", ZeroPageX, 0x55, Load},
	{"EOR", Absolute, 0x4D, Load}, {"EOR", AbsoluteX, 0x5D, Load}, {"EOR", AbsoluteY, 0x59, Load},
	{"EOR", IndexedIndirectX, 0x41, Load}, {"EOR", IndirectIndexedY, 0x51, Load},

	{"INC", ZeroPage, 0xE6, Store}, {"INC", ZeroPageX, 0xF6, Store},
	{"INC", Absolute, 0xEE, Store}, {"INC", AbsoluteX, 0xFE, Store},

	{"INX", Implicit, 0xE8, Store},
	{"INY", Implicit, 0xC8, Store},

	{"JMP", Absolute, 0x4C, Store}, {"JMP", Indirect, 0x6C, Store},
	{"JSR", Absolute, 0x20, Store},

	{"LDA", Immediate, 0xA9, Load}, {"LDA", ZeroPage, 0xA5, Load}, {"LDA", ZeroPageX, 0xB5, Load},
	{"LDA", Absolute, 0xAD, Load}, {"LDA", AbsoluteX, 0xBD, Load}, {"LDA", AbsoluteY, 0xB9, Load},
	{"LDA", IndexedIndirectX, 0xA1, Load}, {"LDA", IndirectIndexedY, 0xB1, Load},

	{"LDX", Immediate, 0xA2, Load}, {"LDX", ZeroPage, 0xA6, Load}, {"LDX", ZeroPageY, 0xB6, Load},
	{"LDX", Absolute, 0xAE, Load}, {"LDX", AbsoluteY, 0xBE, Load},

	{"LDY", Immediate, 0xA0, Load}, {"LDY", ZeroPage, 0xA4, Load}, {"LDY", ZeroPageX, 0xB4, Load},
	{"LDY", Absolute, 0xAC, Load}, {"LDY", AbsoluteX, 0xBC, Load},

	{"LSR", Accumulator, 0x4A, Store}, {"LSR", ZeroPage, 0x46, Store}, {"LSR", ZeroPageX, 0x56, Store},
	{"LSR", Absolute, 0x4E, Store}, {"LSR", AbsoluteX, 0x5E, Store},

	{"NOP", Implicit, 0xEA, Store},

	{"ORA", Immediate, 0x09, Load}, {"ORA", ZeroPage, 0x05, Load}, {"ORA", ZeroPageX, 0x15, Load},
	{"ORA", Absolute, 0x0D, Load}, {"ORA", AbsoluteX, 0x1D, Load}, {"ORA", AbsoluteY, 0x19, Load},
	{"ORA", IndexedIndirectX, 0x01, Load}, {"ORA", IndirectIndexedY, 0x11, Load},

	{"PHA", Implicit, 0x48, Store},
	{"PHP", Implicit, 0x08, Store},
	{"PLA", Implicit, 0x68, Store},
	{"PLP", Implicit, 0x28, Store},

	{"ROL", Accumulator, 0x2A, Store}, {"ROL", ZeroPage, 0x26, Store}, {"ROL", ZeroPageX, 0x36, Store},
	{"ROL", Absolute, 0x2E, Store}, {"ROL", AbsoluteX, 0x3E, Store},

	{"ROR", Accumulator, 0x6A, Store}, {"ROR", ZeroPage, 0x66, Store}, {"ROR", ZeroPageX, 0x76, Store},
	{"ROR", Absolute, 0x6E, Store}, {"ROR", AbsoluteX, 0x7E, Store},

	{"RTI", Implicit, 0x40, Store},
	{"RTS", Implicit, 0x60, Store},

	{"SBC", Immediate, 0xE9, Load}, {"SBC", ZeroPage, 0xE5, Load}, {"SBC", ZeroPageX, 0xF5, Load},
	{"SBC", Absolute, 0xED, Load}, {"SBC", AbsoluteX, 0xFD, Load}, {"SBC", AbsoluteY, 0xF9, Load},
	{"SBC", IndexedIndirectX, 0xE1, Load}, {"SBC", IndirectIndexedY, 0xF1, Load},

	{"SEC", Implicit, 0x38, Store},
	{"SED", Implicit, 0xF8, Store},
	{"SEI", Implicit, 0x78, Store},

	{"STA", ZeroPage, 0x85, Store}, {"STA", ZeroPageX, 0x95, Store}, {"STA", Absolute, 0x8D, Store},
	{"STA", AbsoluteX, 0x9D, Store}, {"STA", AbsoluteY, 0x99, Store},
	{"STA", IndexedIndirectX, 0x81, Store}, {"STA", IndirectIndexedY, 0x91, Store},

	{"STX", ZeroPage, 0x86, Store}, {"STX", ZeroPageY, 0x96, Store}, {"STX", Absolute, 0x8E, Store},

	{"STY", ZeroPage, 0x84, Store}, {"STY", ZeroPageX, 0x94, Store}, {"STY", Absolute, 0x8C, Store},

	{"TAX", Implicit, 0xAA, Store},
	{"TAY", Implicit, 0xA8, Store},
	{"TSX", Implicit, 0xBA, Store},
	{"TXA", Implicit, 0x8A, Store},
	{"TXS", Implicit, 0x9A, Store},
	{"TYA", Implicit, 0x98, Store},
}

// ByOpcode and ByName are derived once from Entries: ByOpcode is nil at
// an opcode byte that no instruction occupies, ByName groups an
// mnemonic's addressing-mode variants in the canonical order assembly
// disambiguation relies on.
var (
	ByOpcode [256]*Entry
	ByName   = map[string][]*Entry{}
)

func init() {
	for i := range Entries {
		e := &Entries[i]
		if ByOpcode[e.Opcode] != nil {
			panic("isa: duplicate opcode " + string(rune(e.Opcode)))
		}
		ByOpcode[e.Opcode] = e
		ByName[e.Mnemonic] = append(ByName[e.Mnemonic], e)
	}
}
