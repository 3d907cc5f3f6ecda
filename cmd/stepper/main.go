// Command stepper is an interactive single-step debugger for the 6502
// core: load a raw program at an offset, then press space to execute
// one instruction at a time while watching registers, flags, and
// memory around the program counter.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/golang/glog"

	"github.com/tskaggs/six502/cpu"
	"github.com/tskaggs/six502/isa"
	"github.com/tskaggs/six502/mem"
)

type model struct {
	c      *cpu.CPU
	ram    *mem.RAM
	prevPC uint16
	err    error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "j":
		m.prevPC = m.c.PC
		if _, err := m.c.Step(); err != nil {
			m.err = err
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04X | ", start)
	for i := 0; i < 16; i++ {
		addr := start + uint16(i)
		b := m.ram.Load(addr)
		if addr == m.c.PC {
			s += fmt.Sprintf("[%02X] ", b)
		} else {
			s += fmt.Sprintf(" %02X  ", b)
		}
	}
	return s
}

func (m model) status() string {
	f := m.c.Flags
	var flags string
	for _, set := range []bool{f.N, f.V, true, f.B, f.D, f.I, f.Z, f.C} {
		if set {
			flags += "1 "
		} else {
			flags += "0 "
		}
	}
	return fmt.Sprintf(`
PC: %04X (was %04X)
 A: %02X
 X: %02X
 Y: %02X
SP: %02X
N V - B D I Z C
%s`, m.c.PC, m.prevPC, m.c.A, m.c.X, m.c.Y, m.c.SP, flags)
}

func (m model) pageTable() string {
	var rows []string
	base := m.c.PC &^ 0x000F
	for page := 0; page < 4; page++ {
		rows = append(rows, m.renderPage(base+uint16(page*16)))
	}
	return strings.Join(rows, "\n")
}

func (m model) View() string {
	opcode := m.ram.Load(m.c.PC)
	entry := isa.ByOpcode[opcode]
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		spew.Sdump(entry),
		"space/j: step  q: quit",
	)
}

func main() {
	offset := flag.Int("offset", 0, "address to load the program at")
	flag.Parse()
	if flag.NArg() != 1 {
		glog.Fatalln("usage: stepper [-offset N] <program-file>")
	}

	program, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		glog.Fatalln(err)
	}

	ram := mem.NewRAM(0x10000)
	for i, b := range program {
		ram.Store(uint16(*offset+i), b)
	}
	c := cpu.NewCPU(ram)
	c.PC = uint16(*offset)

	result, err := tea.NewProgram(model{c: c, ram: ram}).Run()
	if err != nil {
		glog.Fatalln(err)
	}
	if m, ok := result.(model); ok && m.err != nil {
		fmt.Println("halted:", m.err)
	}
}
