package isa

// CycleRange is the static (min, max) cycle count for an opcode, used for
// validation and display tooling -- not by the execution engine, which
// derives its cycle count additively from the addressing-mode evaluator
// (base cycles, operation cycles, page-cross and branch-taken penalties).
type CycleRange struct {
	Min, Max int
}

// cycles maps opcode to its static cycle range. Entries with Min == Max
// never vary; the rest account for a page-crossing load or, for
// branches, a taken-and-crossing worst case (+2 over the untaken base).
var cycles = map[byte]CycleRange{
	0x00: {7, 7}, 0x01: {6, 6}, 0x05: {3, 3}, 0x06: {5, 5}, 0x08: {3, 3},
	0x09: {2, 2}, 0x0A: {2, 2}, 0x0D: {4, 4}, 0x0E: {6, 6},
	0x10: {2, 4}, 0x11: {5, 6}, 0x15: {4, 4}, 0x16: {6, 6}, 0x18: {2, 2},
	0x19: {4, 5}, 0x1D: {4, 5}, 0x1E: {7, 7},
	0x20: {6, 6}, 0x21: {6, 6}, 0x24: {3, 3}, 0x25: {3, 3}, 0x26: {5, 5},
	0x28: {4, 4}, 0x29: {2, 2}, 0x2A: {2, 2}, 0x2C: {4, 4}, 0x2D: {4, 4}, 0x2E: {6, 6},
	0x30: {2, 4}, 0x31: {5, 6}, 0x35: {4, 4}, 0x36: {6, 6}, 0x38: {2, 2},
	0x39: {4, 5}, 0x3D: {4, 5}, 0x3E: {7, 7},
	0x40: {6, 6}, 0x41: {6, 6}, 0x45: {3, 3}, 0x46: {5, 5}, 0x48: {3, 3},
	0x49: {2, 2}, 0x4A: {2, 2}, 0x4C: {3, 3}, 0x4D: {4, 4}, 0x4E: {6, 6},
	0x50: {2, 4}, 0x51: {5, 6}, 0x55: {4, 4}, 0x56: {6, 6}, 0x58: {2, 2},
	0x59: {4, 5}, 0x5D: {4, 5}, 0x5E: {7, 7},
	0x60: {6, 6}, 0x61: {6, 6}, 0x65: {3, 3}, 0x66: {5, 5}, 0x68: {4, 4},
	0x69: {2, 2}, 0x6A: {2, 2}, 0x6C: {5, 5}, 0x6D: {4, 4}, 0x6E: {6, 6},
	0x70: {2, 4}, 0x71: {5, 6}, 0x75: {4, 4}, 0x76: {6, 6}, 0x78: {2, 2},
	0x79: {4, 5}, 0x7D: {4, 5}, 0x7E: {7, 7},
	0x81: {6, 6}, 0x84: {3, 3}, 0x85: {3, 3}, 0x86: {3, 3}, 0x88: {2, 2}, 0x8A: {2, 2},
	0x8C: {4, 4}, 0x8D: {4, 4}, 0x8E: {4, 4},
	0x90: {2, 4}, 0x91: {6, 6}, 0x94: {4, 4}, 0x95: {4, 4}, 0x96: {4, 4},
	0x98: {2, 2}, 0x99: {5, 5}, 0x9A: {2, 2}, 0x9D: {5, 5},
	0xA0: {2, 2}, 0xA1: {6, 6}, 0xA2: {2, 2}, 0xA4: {3, 3}, 0xA5: {3, 3}, 0xA6: {3, 3},
	0xA8: {2, 2}, 0xA9: {2, 2}, 0xAA: {2, 2}, 0xAC: {4, 4}, 0xAD: {4, 4}, 0xAE: {4, 4},
	0xB0: {2, 4}, 0xB1: {5, 6}, 0xB4: {4, 4}, 0xB5: {4, 4}, 0xB6: {4, 4},
	0xB8: {2, 2}, 0xB9: {4, 5}, 0xBA: {2, 2}, 0xBC: {4, 5}, 0xBD: {4, 5}, 0xBE: {4, 5},
	0xC0: {2, 2}, 0xC1: {6, 6}, 0xC4: {3, 3}, 0xC5: {3, 3}, 0xC6: {5, 5},
	0xC8: {2, 2}, 0xC9: {2, 2}, 0xCA: {2, 2}, 0xCC: {4, 4}, 0xCD: {4, 4}, 0xCE: {6, 6},
	0xD0: {2, 4}, 0xD1: {5, 6}, 0xD5: {4, 4}, 0xD6: {6, 6}, 0xD8: {2, 2},
	0xD9: {4, 5}, 0xDD: {4, 5}, 0xDE: {7, 7},
	0xE0: {2, 2}, 0xE1: {6, 6}, 0xE4: {3, 3}, 0xE5: {3, 3}, 0xE6: {5, 5},
	0xE8: {2, 2}, 0xE9: {2, 2}, 0xEA: {2, 2}, 0xEC: {4, 4}, 0xED: {4, 4}, 0xEE: {6, 6},
	0xF0: {2, 4}, 0xF1: {5, 6}, 0xF5: {4, 4}, 0xF6: {6, 6}, 0xF8: {2, 2},
	0xF9: {4, 5}, 0xFD: {4, 5}, 0xFE: {7, 7},
}

// Cycles returns the static cycle range for opcode and whether an entry
// exists for it.
func Cycles(opcode byte) (CycleRange, bool) {
	r, ok := cycles[opcode]
	return r, ok
}
