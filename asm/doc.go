// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asm implements a two-pass assembler for the documented MOS 6502
// instruction set. It turns 6502 assembly source text into a flat sequence
// of machine-code bytes suitable for loading at a starting address.
//
// The assembler makes two passes over the source. The first pass classifies
// each line, builds the symbol table, and assigns every instruction and
// data directive a fixed address and size. The second pass resolves
// operands against the completed symbol table, range-checks every value,
// and emits the final byte stream. There is no back-patching step: once
// Pass 1 finishes, every line's size is fixed.
package asm
