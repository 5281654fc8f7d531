// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "strings"

// operandKind classifies the syntactic shape of an operand, independent
// of what its expression resolves to.
type operandKind int

const (
	opNone            operandKind = iota // no operand text: implied
	opAccumulator                        // the literal "A"
	opImmediate                          // #expr
	opIndirect                           // (expr)
	opIndexedIndirect                    // (expr,X)
	opIndirectIndexed                    // (expr),Y
	opBare                               // expr, optionally suffixed ,X or ,Y
)

// An operand is the parsed shape of an instruction's operand text. expr
// holds the un-evaluated inner expression (a literal or identifier);
// index is 'X', 'Y', or 0.
type operand struct {
	kind  operandKind
	expr  string
	index byte
}

// parseOperand classifies the syntactic shape of operand text s. It does
// not evaluate or validate expr; that happens once the addressing mode is
// known. ok is false if s is not a recognized operand shape.
func parseOperand(s string) (operand, bool) {
	if s == "" {
		return operand{kind: opNone}, true
	}
	if s == "A" {
		return operand{kind: opAccumulator}, true
	}
	if strings.HasPrefix(s, "#") {
		expr := strings.TrimSpace(s[1:])
		if expr == "" {
			return operand{}, false
		}
		return operand{kind: opImmediate, expr: expr}, true
	}
	if strings.HasPrefix(s, "(") {
		if strings.HasSuffix(s, "),Y") {
			inner := strings.TrimSpace(s[1 : len(s)-3])
			if inner == "" {
				return operand{}, false
			}
			return operand{kind: opIndirectIndexed, expr: inner, index: 'Y'}, true
		}
		if !strings.HasSuffix(s, ")") {
			return operand{}, false
		}
		inner := strings.TrimSpace(s[1 : len(s)-1])
		if strings.HasSuffix(inner, ",X") {
			expr := strings.TrimSpace(inner[:len(inner)-2])
			if expr == "" {
				return operand{}, false
			}
			return operand{kind: opIndexedIndirect, expr: expr, index: 'X'}, true
		}
		if inner == "" {
			return operand{}, false
		}
		return operand{kind: opIndirect, expr: inner}, true
	}

	index := byte(0)
	expr := s
	if strings.HasSuffix(s, ",X") {
		index = 'X'
		expr = strings.TrimSpace(s[:len(s)-2])
	} else if strings.HasSuffix(s, ",Y") {
		index = 'Y'
		expr = strings.TrimSpace(s[:len(s)-2])
	}
	if expr == "" {
		return operand{}, false
	}
	return operand{kind: opBare, expr: expr, index: index}, true
}
