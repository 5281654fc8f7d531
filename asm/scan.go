// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "strings"

// character helper functions, grounded on the teacher's fstring.go classifiers.

func whitespace(c byte) bool {
	return c == ' ' || c == '\t'
}

func alpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func decimal(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexadecimal(c byte) bool {
	return decimal(c) || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}

func identStartChar(c byte) bool {
	return alpha(c) || c == '_'
}

func identChar(c byte) bool {
	return alpha(c) || decimal(c) || c == '_'
}

func stringQuote(c byte) bool {
	return c == '"' || c == '\''
}

// isIdentifier reports whether s is a legal identifier:
// [A-Za-z_][A-Za-z0-9_]*
func isIdentifier(s string) bool {
	if s == "" || !identStartChar(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !identChar(s[i]) {
			return false
		}
	}
	return true
}

// splitWord consumes the leading whitespace-delimited word from s and
// returns it along with the (whitespace-trimmed) remainder.
func splitWord(s string) (word, remain string) {
	i := 0
	for i < len(s) && !whitespace(s[i]) {
		i++
	}
	return s[:i], strings.TrimSpace(s[i:])
}

// splitList splits s on top-level commas into trimmed fields. When
// respectQuotes is true, commas inside a single- or double-quoted run are
// not treated as separators, mirroring the teacher's
// consumeUntilUnquotedChar.
func splitList(s string, respectQuotes bool) []string {
	var fields []string
	var quote byte
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if respectQuotes && quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch {
		case respectQuotes && stringQuote(c):
			quote = c
		case c == ',':
			fields = append(fields, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
	}
	fields = append(fields, strings.TrimSpace(s[start:]))
	return fields
}
