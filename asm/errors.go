// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "fmt"

// ErrorKind classifies the reason an assembly run failed.
type ErrorKind int

// The closed set of failure kinds the assembler can report.
const (
	ErrSyntax   ErrorKind = iota // unrecognized line, malformed argument, bad operand grammar
	ErrSymbol                    // duplicate label, or label not found when resolving an operand
	ErrRange                     // literal or resolved value exceeds its field width
	ErrMode                      // mnemonic does not admit the observed operand shape
	ErrInternal                  // post-encoding size disagreement; indicates a table bug
)

func (k ErrorKind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax error"
	case ErrSymbol:
		return "symbol error"
	case ErrRange:
		return "range error"
	case ErrMode:
		return "addressing mode error"
	case ErrInternal:
		return "internal error"
	default:
		return "error"
	}
}

// Error is the diagnostic returned when an assembly run fails. Assembly
// aborts on the first Error encountered; no partial output is returned.
type Error struct {
	Kind     ErrorKind
	Line     int    // 1-based source line number
	Original string // the original (unmodified) source line text
	Message  string // human-readable description of the failure
}

func (e *Error) Error() string {
	return fmt.Sprintf("Line %d: %s. Original line: '%s'", e.Line, e.Message, e.Original)
}

func newError(kind ErrorKind, line rawLine, format string, args ...any) *Error {
	return &Error{
		Kind:     kind,
		Line:     line.number,
		Original: line.original,
		Message:  fmt.Sprintf(format, args...),
	}
}
