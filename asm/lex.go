// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "strings"

// A rawLine is a single source line after lexical normalization: its
// 1-based line number, its original text (kept for diagnostics), and its
// comment-stripped, trimmed text (used for classification).
type rawLine struct {
	number   int
	original string
	text     string
}

// normalize splits source into logical lines and strips comments and
// surrounding whitespace from each one. Comment stripping happens before
// any string-directive tokenization and does not track quoting: a literal
// ';' inside a .ascii string is treated as a comment delimiter, exactly as
// described in the design notes.
func normalize(source string) []rawLine {
	rawLines := strings.Split(source, "\n")
	lines := make([]rawLine, 0, len(rawLines))
	for i, text := range rawLines {
		text = strings.TrimRight(text, "\r")
		lines = append(lines, rawLine{
			number:   i + 1,
			original: text,
			text:     strings.TrimSpace(stripComment(text)),
		})
	}
	return lines
}

// stripComment removes everything from the first ';' onward.
// Quoting is not tracked: the first ';' anywhere on the line ends it.
func stripComment(s string) string {
	if i := strings.IndexByte(s, ';'); i >= 0 {
		return s[:i]
	}
	return s
}
