// Command disasm disassembles an iNES ROM's PRG banks, or a raw binary
// blob, to 6502 assembly text on stdout.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/tskaggs/six502/asm"
	"github.com/tskaggs/six502/ines"
)

func main() {
	raw := flag.Bool("raw", false, "treat the input file as a headerless binary blob instead of an iNES ROM")
	flag.Parse()

	if flag.NArg() != 1 {
		glog.Fatalln("usage: disasm [-raw] <rom-file>")
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		glog.Fatalln(err)
	}

	prg := data
	if !*raw {
		rom, err := ines.Parse(data)
		if err != nil {
			glog.Fatalln(err)
		}
		prg = rom.PRGROM
	}

	lines, err := asm.Disassemble(prg)
	if err != nil {
		glog.Fatalln(err)
	}
	for _, line := range lines {
		os.Stdout.WriteString(line + "\n")
	}
}
