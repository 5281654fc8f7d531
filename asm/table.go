// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// Mode describes a 6502 memory addressing mode.
type Mode byte

// The addressing modes recognized by the documented instruction set.
const (
	IMM Mode = iota // Immediate: #$nn
	IMP             // Implied: no operand
	ACC             // Accumulator: no operand, or explicit "A"
	REL             // Relative: branch target
	ZPG             // Zero Page: $nn
	ZPX             // Zero Page,X: $nn,X
	ZPY             // Zero Page,Y: $nn,Y
	ABS             // Absolute: $nnnn
	ABX             // Absolute,X: $nnnn,X
	ABY             // Absolute,Y: $nnnn,Y
	IND             // Indirect: ($nnnn)
	IDX             // Indexed Indirect: ($nn,X)
	IDY             // Indirect Indexed: ($nn),Y
)

func (m Mode) String() string {
	switch m {
	case IMM:
		return "immediate"
	case IMP:
		return "implied"
	case ACC:
		return "accumulator"
	case REL:
		return "relative"
	case ZPG:
		return "zero page"
	case ZPX:
		return "zero page,X"
	case ZPY:
		return "zero page,Y"
	case ABS:
		return "absolute"
	case ABX:
		return "absolute,X"
	case ABY:
		return "absolute,Y"
	case IND:
		return "indirect"
	case IDX:
		return "indexed indirect"
	case IDY:
		return "indirect indexed"
	default:
		return "unknown"
	}
}

// A variant is a single (mnemonic, mode) encoding: one opcode byte and the
// total instruction length including operand bytes.
type variant struct {
	mode   Mode
	opcode byte
	length byte
}

// instructionTable maps each mnemonic to every addressing-mode variant it
// supports. It holds only the opcodes of the documented (NMOS) 6502
// instruction set; there is no notion of an alternate architecture.
var instructionTable = map[string][]variant{
	"ADC": {
		{IMM, 0x69, 2}, {ZPG, 0x65, 2}, {ZPX, 0x75, 2}, {ABS, 0x6d, 3},
		{ABX, 0x7d, 3}, {ABY, 0x79, 3}, {IDX, 0x61, 2}, {IDY, 0x71, 2},
	},
	"AND": {
		{IMM, 0x29, 2}, {ZPG, 0x25, 2}, {ZPX, 0x35, 2}, {ABS, 0x2d, 3},
		{ABX, 0x3d, 3}, {ABY, 0x39, 3}, {IDX, 0x21, 2}, {IDY, 0x31, 2},
	},
	"ASL": {
		{ACC, 0x0a, 1}, {ZPG, 0x06, 2}, {ZPX, 0x16, 2}, {ABS, 0x0e, 3}, {ABX, 0x1e, 3},
	},
	"BCC": {{REL, 0x90, 2}},
	"BCS": {{REL, 0xb0, 2}},
	"BEQ": {{REL, 0xf0, 2}},
	"BIT": {
		{ZPG, 0x24, 2}, {ABS, 0x2c, 3},
	},
	"BMI": {{REL, 0x30, 2}},
	"BNE": {{REL, 0xd0, 2}},
	"BPL": {{REL, 0x10, 2}},
	"BRK": {{IMP, 0x00, 1}},
	"BVC": {{REL, 0x50, 2}},
	"BVS": {{REL, 0x70, 2}},
	"CLC": {{IMP, 0x18, 1}},
	"CLD": {{IMP, 0xd8, 1}},
	"CLI": {{IMP, 0x58, 1}},
	"CLV": {{IMP, 0xb8, 1}},
	"CMP": {
		{IMM, 0xc9, 2}, {ZPG, 0xc5, 2}, {ZPX, 0xd5, 2}, {ABS, 0xcd, 3},
		{ABX, 0xdd, 3}, {ABY, 0xd9, 3}, {IDX, 0xc1, 2}, {IDY, 0xd1, 2},
	},
	"CPX": {{IMM, 0xe0, 2}, {ZPG, 0xe4, 2}, {ABS, 0xec, 3}},
	"CPY": {{IMM, 0xc0, 2}, {ZPG, 0xc4, 2}, {ABS, 0xcc, 3}},
	"DEC": {{ZPG, 0xc6, 2}, {ZPX, 0xd6, 2}, {ABS, 0xce, 3}, {ABX, 0xde, 3}},
	"DEX": {{IMP, 0xca, 1}},
	"DEY": {{IMP, 0x88, 1}},
	"EOR": {
		{IMM, 0x49, 2}, {ZPG, 0x45, 2}, {ZPX, 0x55, 2}, {ABS, 0x4d, 3},
		{ABX, 0x5d, 3}, {ABY, 0x59, 3}, {IDX, 0x41, 2}, {IDY, 0x51, 2},
	},
	"INC": {{ZPG, 0xe6, 2}, {ZPX, 0xf6, 2}, {ABS, 0xee, 3}, {ABX, 0xfe, 3}},
	"INX": {{IMP, 0xe8, 1}},
	"INY": {{IMP, 0xc8, 1}},
	"JMP": {{ABS, 0x4c, 3}, {IND, 0x6c, 3}},
	"JSR": {{ABS, 0x20, 3}},
	"LDA": {
		{IMM, 0xa9, 2}, {ZPG, 0xa5, 2}, {ZPX, 0xb5, 2}, {ABS, 0xad, 3},
		{ABX, 0xbd, 3}, {ABY, 0xb9, 3}, {IDX, 0xa1, 2}, {IDY, 0xb1, 2},
	},
	"LDX": {
		{IMM, 0xa2, 2}, {ZPG, 0xa6, 2}, {ZPY, 0xb6, 2}, {ABS, 0xae, 3}, {ABY, 0xbe, 3},
	},
	"LDY": {
		{IMM, 0xa0, 2}, {ZPG, 0xa4, 2}, {ZPX, 0xb4, 2}, {ABS, 0xac, 3}, {ABX, 0xbc, 3},
	},
	"LSR": {
		{ACC, 0x4a, 1}, {ZPG, 0x46, 2}, {ZPX, 0x56, 2}, {ABS, 0x4e, 3}, {ABX, 0x5e, 3},
	},
	"NOP": {{IMP, 0xea, 1}},
	"ORA": {
		{IMM, 0x09, 2}, {ZPG, 0x05, 2}, {ZPX, 0x15, 2}, {ABS, 0x0d, 3},
		{ABX, 0x1d, 3}, {ABY, 0x19, 3}, {IDX, 0x01, 2}, {IDY, 0x11, 2},
	},
	"PHA": {{IMP, 0x48, 1}},
	"PHP": {{IMP, 0x08, 1}},
	"PLA": {{IMP, 0x68, 1}},
	"PLP": {{IMP, 0x28, 1}},
	"ROL": {
		{ACC, 0x2a, 1}, {ZPG, 0x26, 2}, {ZPX, 0x36, 2}, {ABS, 0x2e, 3}, {ABX, 0x3e, 3},
	},
	"ROR": {
		{ACC, 0x6a, 1}, {ZPG, 0x66, 2}, {ZPX, 0x76, 2}, {ABS, 0x6e, 3}, {ABX, 0x7e, 3},
	},
	"RTI": {{IMP, 0x40, 1}},
	"RTS": {{IMP, 0x60, 1}},
	"SBC": {
		{IMM, 0xe9, 2}, {ZPG, 0xe5, 2}, {ZPX, 0xf5, 2}, {ABS, 0xed, 3},
		{ABX, 0xfd, 3}, {ABY, 0xf9, 3}, {IDX, 0xe1, 2}, {IDY, 0xf1, 2},
	},
	"SEC": {{IMP, 0x38, 1}},
	"SED": {{IMP, 0xf8, 1}},
	"SEI": {{IMP, 0x78, 1}},
	"STA": {
		{ZPG, 0x85, 2}, {ZPX, 0x95, 2}, {ABS, 0x8d, 3}, {ABX, 0x9d, 3},
		{ABY, 0x99, 3}, {IDX, 0x81, 2}, {IDY, 0x91, 2},
	},
	"STX": {{ZPG, 0x86, 2}, {ZPY, 0x96, 2}, {ABS, 0x8e, 3}},
	"STY": {{ZPG, 0x84, 2}, {ZPX, 0x94, 2}, {ABS, 0x8c, 3}},
	"TAX": {{IMP, 0xaa, 1}},
	"TAY": {{IMP, 0xa8, 1}},
	"TSX": {{IMP, 0xba, 1}},
	"TXA": {{IMP, 0x8a, 1}},
	"TXS": {{IMP, 0x9a, 1}},
	"TYA": {{IMP, 0x98, 1}},
}

// lookupVariant returns the variant of mnemonic matching mode, if any.
func lookupVariant(mnemonic string, mode Mode) (variant, bool) {
	for _, v := range instructionTable[mnemonic] {
		if v.mode == mode {
			return v, true
		}
	}
	return variant{}, false
}

// isMnemonic reports whether name names an instruction in the table.
func isMnemonic(name string) bool {
	_, ok := instructionTable[name]
	return ok
}
