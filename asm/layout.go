// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// relBranchMnemonics are the instructions whose only addressing mode is
// relative. Their operand syntax is restricted to a bare label; a numeric
// branch target is a mode error, not a computed offset.
var relBranchMnemonics = map[string]bool{
	"BCC": true, "BCS": true, "BEQ": true, "BNE": true,
	"BMI": true, "BPL": true, "BVC": true, "BVS": true,
}

// layout runs the Pass 1 back end: it walks the parsed lines once in
// source order, binds labels, advances the location counter, resolves
// whatever each directive requires resolved immediately, and picks a
// provisional (but final, for ambiguous bare operands) addressing mode
// and size for every instruction.
func layout(lines []parsedLine, symtab *symbolTable) *Error {
	var lc uint16

	for i := range lines {
		pl := &lines[i]

		if pl.label != "" && pl.kind != kindOrigin {
			if !symtab.bind(pl.label, lc) {
				return newError(ErrSymbol, pl.raw, "duplicate label '%s'", pl.label)
			}
		}

		switch pl.kind {
		case kindEmpty, kindLabelOnly:
			pl.address = lc

		case kindOrigin:
			// A label preceding an origin binds to the address before the
			// origin takes effect.
			if pl.label != "" {
				if !symtab.bind(pl.label, lc) {
					return newError(ErrSymbol, pl.raw, "duplicate label '%s'", pl.label)
				}
			}
			pl.address = lc
			lc = pl.originAddr

		case kindReserve:
			pl.address = lc
			count, err := resolveCount(pl.countText, symtab, pl.raw)
			if err != nil {
				return err
			}
			pl.reserveCount = count
			lc += uint16(count)

		case kindByteData:
			pl.address = lc
			values := make([]byte, 0, len(pl.elements))
			for _, elem := range pl.elements {
				v, err := resolveByteValue(elem, symtab, pl.raw)
				if err != nil {
					return err
				}
				values = append(values, v)
			}
			pl.byteValues = values
			pl.size = len(values)
			lc += uint16(pl.size)

		case kindWordData, kindDwordData:
			pl.address = lc
			pl.size = len(pl.elements) * pl.elemWidth
			lc += uint16(pl.size)

		case kindAsciiData:
			pl.address = lc
			size := 0
			for _, tok := range pl.asciiTokens {
				if tok.isString {
					size += len(tok.bytes)
				} else {
					size++
				}
			}
			if pl.asciiZ {
				size++
			}
			pl.size = size
			lc += uint16(pl.size)

		case kindInstruction:
			pl.address = lc
			mode, err := chooseMode(pl, symtab)
			if err != nil {
				return err
			}
			v, ok := lookupVariant(pl.mnemonic, mode)
			if !ok {
				return newError(ErrMode, pl.raw, "%s does not support %s addressing", pl.mnemonic, mode)
			}
			pl.mode = mode
			pl.variant = v
			pl.size = int(v.length)
			lc += uint16(pl.size)
		}
	}
	return nil
}

// chooseMode picks the instruction's final addressing mode from its
// parsed operand shape. For a bare identifier operand admitting both
// zero-page and absolute encodings, this is the one place the choice is
// made; Pass 2 reuses it verbatim.
func chooseMode(pl *parsedLine, symtab *symbolTable) (Mode, *Error) {
	mnemonic := pl.mnemonic
	opnd := pl.opnd

	if relBranchMnemonics[mnemonic] {
		if opnd.kind != opBare || opnd.index != 0 {
			return 0, newError(ErrMode, pl.raw, "%s requires a label operand", mnemonic)
		}
		if !isIdentifier(opnd.expr) {
			return 0, newError(ErrMode, pl.raw, "%s branch target must be a label, not a literal", mnemonic)
		}
		return REL, nil
	}

	switch opnd.kind {
	case opNone:
		if _, ok := lookupVariant(mnemonic, IMP); ok {
			return IMP, nil
		}
		if _, ok := lookupVariant(mnemonic, ACC); ok {
			return ACC, nil
		}
		return 0, newError(ErrMode, pl.raw, "%s requires an operand", mnemonic)

	case opAccumulator:
		return ACC, nil

	case opImmediate:
		return IMM, nil

	case opIndirect:
		return IND, nil

	case opIndexedIndirect:
		return IDX, nil

	case opIndirectIndexed:
		return IDY, nil

	case opBare:
		var zpMode, absMode Mode
		switch opnd.index {
		case 0:
			zpMode, absMode = ZPG, ABS
		case 'X':
			zpMode, absMode = ZPX, ABX
		case 'Y':
			zpMode, absMode = ZPY, ABY
		}
		_, hasZP := lookupVariant(mnemonic, zpMode)
		_, hasABS := lookupVariant(mnemonic, absMode)
		switch {
		case hasZP && hasABS:
			// Genuinely ambiguous: apply the provisional sizing rule.
			if bareOperandIsZeroPage(opnd.expr, symtab) {
				return zpMode, nil
			}
			return absMode, nil
		case hasZP:
			return zpMode, nil
		default:
			// Includes the case where neither exists; the subsequent
			// lookupVariant call in layout reports the mode error.
			return absMode, nil
		}
	}
	return 0, newError(ErrSyntax, pl.raw, "malformed operand '%s'", pl.opText)
}

// bareOperandIsZeroPage decides whether a bare-operand expression should
// be sized as zero page. A hex literal decides by its digit count (one or
// two digits), a decimal or character literal by its own value, and a
// binary literal always sizes as absolute. An identifier decides on the
// provisional rule: zero page only if it is already bound, at this point
// in the walk, to an address <= 0xFF.
func bareOperandIsZeroPage(expr string, symtab *symbolTable) bool {
	if v, kind, ok := parseLiteral(expr); ok {
		switch kind {
		case litHex:
			return hexDigits(expr) <= 2
		case litDecimal, litChar:
			return v <= 0xff
		}
	}
	if addr, ok := symtab.lookup(expr); ok {
		return addr <= 0xff
	}
	return false
}

// resolveCount resolves a .res count: a non-negative integer literal or a
// previously bound label. Forward references are a symbol error.
func resolveCount(expr string, symtab *symbolTable, line rawLine) (int, *Error) {
	if v, _, ok := parseLiteral(expr); ok {
		if v < 0 {
			return 0, newError(ErrRange, line, "count %d must be non-negative", v)
		}
		return int(v), nil
	}
	if !isIdentifier(expr) {
		return 0, newError(ErrSyntax, line, "invalid .res count '%s'", expr)
	}
	addr, ok := symtab.lookup(expr)
	if !ok {
		return 0, newError(ErrSymbol, line, "label '%s' not found (forward references are not permitted in .res)", expr)
	}
	return int(addr), nil
}

// resolveByteValue resolves a single .byte element immediately, per the
// Pass-1 resolution timing that distinguishes .byte from .word/.dword.
// A forward-referenced label is a symbol error at this point.
func resolveByteValue(expr string, symtab *symbolTable, line rawLine) (byte, *Error) {
	if v, _, ok := parseLiteral(expr); ok {
		if !fitsByte(v) {
			return 0, newError(ErrRange, line, "value %d out of range 0..255", v)
		}
		return byte(v), nil
	}
	if !isIdentifier(expr) {
		return 0, newError(ErrSyntax, line, "invalid .byte element '%s'", expr)
	}
	addr, ok := symtab.lookup(expr)
	if !ok {
		return 0, newError(ErrSymbol, line, "label '%s' not found (forward references are not permitted in .byte)", expr)
	}
	if !fitsByte(int64(addr)) {
		return 0, newError(ErrRange, line, "label '%s' value %d out of range 0..255", expr, addr)
	}
	return byte(addr), nil
}
