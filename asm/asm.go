// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"fmt"
	"io"
)

// Option is a bitmask of optional behaviors for Assemble.
type Option uint32

// Options controlling diagnostic verbosity. They have no effect on the
// emitted bytes, only on what is written to the log writer.
const (
	Verbose Option = 1 << iota // log each classified line as it is processed
	Trace                      // log symbol bindings and address assignment in detail
)

// Assembly holds the output of a successful assembly run.
type Assembly struct {
	Code []byte

	// Symbols holds every label bound during assembly, mapped to its
	// resolved address. It is provided for tools built on top of the
	// assembler (a symbol browser, a REPL); the core pipeline itself
	// never reads it back.
	Symbols map[string]uint16
}

// Assemble assembles source, the complete text of a 6502 assembly
// program, into a flat byte stream. On failure it returns a nil Assembly
// and the first diagnostic encountered; no partial output is returned.
func Assemble(source string) (*Assembly, error) {
	return AssembleVerbose(source, io.Discard, 0)
}

// AssembleVerbose behaves like Assemble but additionally logs progress to
// out according to opt.
func AssembleVerbose(source string, out io.Writer, opt Option) (*Assembly, error) {
	a := &assembler{out: out, opt: opt}
	return a.run(source)
}

// assembler owns the state of a single, in-progress assembly run. It is
// never reused across calls.
type assembler struct {
	out io.Writer
	opt Option
}

func (a *assembler) run(source string) (*Assembly, error) {
	rawLines := normalize(source)

	lines, err := parseLines(rawLines)
	if err != nil {
		return nil, err
	}
	a.logParsed(lines)

	symtab := newSymbolTable()
	if err := layout(lines, symtab); err != nil {
		return nil, err
	}
	a.logSymbols(symtab)

	code, err := generateBytes(lines, symtab)
	if err != nil {
		return nil, err
	}

	return &Assembly{Code: code, Symbols: symtab.addr}, nil
}

func (a *assembler) logParsed(lines []parsedLine) {
	if a.opt&Verbose == 0 {
		return
	}
	for _, pl := range lines {
		fmt.Fprintf(a.out, "%4d: %s\n", pl.raw.number, pl.raw.text)
	}
}

func (a *assembler) logSymbols(symtab *symbolTable) {
	if a.opt&Trace == 0 {
		return
	}
	for name, addr := range symtab.addr {
		fmt.Fprintf(a.out, "  %-20s $%04X\n", name, addr)
	}
}
