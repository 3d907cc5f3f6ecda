package mapper

import "github.com/tskaggs/six502/ines"

// mmc1 is Mapper 1: a 5-bit serial shift register feeding four target
// registers (control, CHR0, CHR1, PRG bank), written one bit per CPU
// write to $8000-$FFFF. A write with the high bit set resets the shift
// register and forces 16 KiB PRG-banking mode (control |= 0x0C) rather
// than committing a bit.
type mmc1 struct {
	prgROM []byte
	prgRAM []byte

	shift byte
	count int

	control byte
	chr0    byte
	chr1    byte
	prgBank byte

	prgLowBank, prgHighBank int
}

func newMMC1(rom *ines.ROM) *mmc1 {
	ramSize := rom.PRGRAMSize
	if ramSize == 0 {
		ramSize = 0x2000
	}
	m := &mmc1{
		prgROM:  rom.PRGROM,
		prgRAM:  make([]byte, ramSize),
		control: 0x0C, // power-on default: PRG mode 3 (fix last bank high)
	}
	m.recomputeBanks()
	return m
}

func (m *mmc1) bankCount() int {
	return len(m.prgROM) / prgBankSizeMMC1
}

const prgBankSizeMMC1 = 0x4000

func (m *mmc1) Load(addr uint16) byte {
	switch {
	case addr >= 0xC000:
		return m.prgROM[m.prgHighBank*prgBankSizeMMC1+int(addr-0xC000)]
	case addr >= 0x8000:
		return m.prgROM[m.prgLowBank*prgBankSizeMMC1+int(addr-0x8000)]
	case addr >= 0x6000:
		return m.prgRAM[(addr-0x6000)%uint16(len(m.prgRAM))]
	default:
		return 0
	}
}

func (m *mmc1) Store(addr uint16, data byte) {
	switch {
	case addr >= 0x8000:
		m.write(addr, data)
	case addr >= 0x6000:
		m.prgRAM[(addr-0x6000)%uint16(len(m.prgRAM))] = data
	}
}

func (m *mmc1) write(addr uint16, data byte) {
	if data&0x80 != 0 {
		m.shift = 0
		m.count = 0
		m.control |= 0x0C
		m.recomputeBanks()
		return
	}

	m.shift = m.shift>>1 | (data&1)<<4
	m.count++
	if m.count < 5 {
		return
	}

	committed := m.shift
	switch {
	case addr <= 0x9FFF:
		m.control = committed
	case addr <= 0xBFFF:
		m.chr0 = committed
	case addr <= 0xDFFF:
		m.chr1 = committed
	default:
		m.prgBank = committed & 0x0F
	}
	m.shift = 0
	m.count = 0
	m.recomputeBanks()
}

// recomputeBanks derives (prgLowBank, prgHighBank) from the control
// register's PRG mode (bits 2-3): modes 0/1 switch a 32 KiB window two
// banks at a time; mode 2 fixes the first bank and switches the high
// half; mode 3 switches the low half and fixes the last bank.
func (m *mmc1) recomputeBanks() {
	mode := (m.control >> 2) & 0x03
	bank := int(m.prgBank)
	switch mode {
	case 0, 1:
		base := bank &^ 1
		m.prgLowBank, m.prgHighBank = base, base+1
	case 2:
		m.prgLowBank, m.prgHighBank = 0, bank
	case 3:
		m.prgLowBank, m.prgHighBank = bank, m.bankCount()-1
	}
}
