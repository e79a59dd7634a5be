// Copyright 2025 Yauheni Bialkou
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import "strings"

// LineBuffer accumulates received characters into a single input line with
// backspace editing. The storage is fixed at construction; one slot is
// always kept free so the buffered text stays shorter than the capacity.
//
// A LineBuffer is owned by the session task alone and needs no locking.
type LineBuffer struct {
	buf      []byte
	cursor   int
	complete bool
}

// NewLineBuffer returns a LineBuffer holding at most capacity-1 characters.
func NewLineBuffer(capacity int) *LineBuffer {
	return &LineBuffer{buf: make([]byte, capacity)}
}

// Append stores b at the cursor. Once only the reserved slot is left,
// further bytes are silently discarded and Append reports false.
func (l *LineBuffer) Append(b byte) bool {
	if l.cursor >= len(l.buf)-1 {
		return false
	}

	l.buf[l.cursor] = b
	l.cursor++

	return true
}

// Backspace removes the last buffered character. It reports false on an
// empty line.
func (l *LineBuffer) Backspace() bool {
	if l.cursor == 0 {
		return false
	}

	l.cursor--
	l.buf[l.cursor] = 0

	return true
}

// EndLine marks the buffered text as a completed input line.
func (l *LineBuffer) EndLine() {
	l.complete = true
}

// Complete reports whether a line terminator has been seen since the last
// Reset.
func (l *LineBuffer) Complete() bool {
	return l.complete
}

// Len returns the number of buffered characters.
func (l *LineBuffer) Len() int {
	return l.cursor
}

// String returns the buffered text.
func (l *LineBuffer) String() string {
	return string(l.buf[:l.cursor])
}

// Text returns the buffered text with trailing carriage-return and newline
// characters stripped.
func (l *LineBuffer) Text() string {
	return strings.TrimRight(l.String(), "\r\n")
}

// Reset zeroes the storage, moves the cursor to the start and clears the
// completion mark.
func (l *LineBuffer) Reset() {
	clear(l.buf)
	l.cursor = 0
	l.complete = false
}
