// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// generateBytes runs the Pass 2 front end: it resolves every value left
// deferred by layout (.word/.dword elements, .ascii/.asciiz value tokens,
// and instruction operands) against the completed symbol table, range
// checks each one, and concatenates the emitted bytes in source order.
func generateBytes(lines []parsedLine, symtab *symbolTable) ([]byte, *Error) {
	var out []byte

	for i := range lines {
		pl := &lines[i]

		switch pl.kind {
		case kindEmpty, kindLabelOnly, kindOrigin, kindReserve:
			// no bytes

		case kindByteData:
			out = append(out, pl.byteValues...)

		case kindWordData:
			for _, elem := range pl.elements {
				v, err := resolveExprValue(elem, symtab, pl.raw)
				if err != nil {
					return nil, err
				}
				if !fitsWord(v) {
					return nil, newError(ErrRange, pl.raw, "value %d out of range 0..65535", v)
				}
				out = append(out, byte(v), byte(v>>8))
			}

		case kindDwordData:
			for _, elem := range pl.elements {
				v, err := resolveExprValue(elem, symtab, pl.raw)
				if err != nil {
					return nil, err
				}
				if !fitsDword(v) {
					return nil, newError(ErrRange, pl.raw, "value %d out of range 0..4294967295", v)
				}
				out = append(out, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
			}

		case kindAsciiData:
			for _, tok := range pl.asciiTokens {
				if tok.isString {
					out = append(out, tok.bytes...)
					continue
				}
				v, err := resolveExprValue(tok.text, symtab, pl.raw)
				if err != nil {
					return nil, err
				}
				if !fitsByte(v) {
					return nil, newError(ErrRange, pl.raw, "value %d out of range 0..255", v)
				}
				out = append(out, byte(v))
			}
			if pl.asciiZ {
				out = append(out, 0)
			}

		case kindInstruction:
			operandBytes, err := encodeOperand(pl, symtab)
			if err != nil {
				return nil, err
			}
			if 1+len(operandBytes) != int(pl.variant.length) {
				return nil, newError(ErrInternal, pl.raw, "encoded length %d does not match declared size %d", 1+len(operandBytes), pl.variant.length)
			}
			out = append(out, pl.variant.opcode)
			out = append(out, operandBytes...)
		}
	}
	return out, nil
}

// encodeOperand produces the operand bytes for an instruction, given the
// addressing mode layout already chose for it.
func encodeOperand(pl *parsedLine, symtab *symbolTable) ([]byte, *Error) {
	switch pl.mode {
	case IMP, ACC:
		return nil, nil

	case IMM:
		v, err := resolveImmediate(pl.opnd.expr, symtab, pl.raw)
		if err != nil {
			return nil, err
		}
		return []byte{byte(v)}, nil

	case ZPG, ZPX, ZPY:
		v, err := resolveExprValue(pl.opnd.expr, symtab, pl.raw)
		if err != nil {
			return nil, err
		}
		if !fitsByte(v) {
			return nil, newError(ErrRange, pl.raw, "zero-page address %d out of range 0..255", v)
		}
		return []byte{byte(v)}, nil

	case ABS, ABX, ABY, IND:
		v, err := resolveExprValue(pl.opnd.expr, symtab, pl.raw)
		if err != nil {
			return nil, err
		}
		if !fitsWord(v) {
			return nil, newError(ErrRange, pl.raw, "address %d out of range 0..65535", v)
		}
		return []byte{byte(v), byte(v >> 8)}, nil

	case IDX, IDY:
		v, err := resolveExprValue(pl.opnd.expr, symtab, pl.raw)
		if err != nil {
			return nil, err
		}
		if !fitsByte(v) {
			return nil, newError(ErrRange, pl.raw, "zero-page address %d out of range 0..255", v)
		}
		return []byte{byte(v)}, nil

	case REL:
		target, ok := symtab.lookup(pl.opnd.expr)
		if !ok {
			return nil, newError(ErrSymbol, pl.raw, "label '%s' not found", pl.opnd.expr)
		}
		offset := int64(target) - (int64(pl.address) + 2)
		if !fitsSignedByte(offset) {
			return nil, newError(ErrRange, pl.raw, "branch to '%s' has offset %d out of range -128..127", pl.opnd.expr, offset)
		}
		return []byte{byte(int8(offset))}, nil
	}
	return nil, newError(ErrInternal, pl.raw, "unhandled addressing mode %s", pl.mode)
}

// resolveImmediate handles the plain, '<', and '>' forms of an immediate
// operand's expression.
func resolveImmediate(expr string, symtab *symbolTable, line rawLine) (byte, *Error) {
	switch {
	case len(expr) > 0 && expr[0] == '<':
		v, err := resolveExprValue(expr[1:], symtab, line)
		if err != nil {
			return 0, err
		}
		return byte(v & 0xff), nil
	case len(expr) > 0 && expr[0] == '>':
		v, err := resolveExprValue(expr[1:], symtab, line)
		if err != nil {
			return 0, err
		}
		return byte((v >> 8) & 0xff), nil
	default:
		v, err := resolveExprValue(expr, symtab, line)
		if err != nil {
			return 0, err
		}
		if !fitsByte(v) {
			return 0, newError(ErrRange, line, "immediate value %d out of range 0..255", v)
		}
		return byte(v), nil
	}
}

// resolveExprValue resolves a literal or identifier against the symbol
// table. By Pass 2 the symbol table is complete, so an unbound
// identifier is a genuine "not found" rather than a forward reference.
func resolveExprValue(expr string, symtab *symbolTable, line rawLine) (int64, *Error) {
	if v, _, ok := parseLiteral(expr); ok {
		return v, nil
	}
	if !isIdentifier(expr) {
		return 0, newError(ErrSyntax, line, "invalid value '%s'", expr)
	}
	addr, ok := symtab.lookup(expr)
	if !ok {
		return 0, newError(ErrSymbol, line, "label '%s' not found", expr)
	}
	return int64(addr), nil
}
