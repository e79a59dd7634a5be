// Copyright 2025 Yauheni Bialkou
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package cli

import (
	"strings"
	"testing"
)

func TestLineBuffer_AppendAndBackspace(t *testing.T) {
	tests := []struct {
		name       string
		appended   string
		backspaces int
		wantText   string
		wantLen    int
	}{
		{
			name:     "plain append",
			appended: "hello",
			wantText: "hello",
			wantLen:  5,
		},
		{
			name:       "single backspace removes last character",
			appended:   "hello",
			backspaces: 1,
			wantText:   "hell",
			wantLen:    4,
		},
		{
			name:       "backspaces remove the last N characters",
			appended:   "password",
			backspaces: 3,
			wantText:   "passw",
			wantLen:    5,
		},
		{
			name:       "backspace down to empty",
			appended:   "ab",
			backspaces: 2,
			wantText:   "",
			wantLen:    0,
		},
		{
			name:       "backspace on empty line is a no-op",
			appended:   "",
			backspaces: 3,
			wantText:   "",
			wantLen:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLineBuffer(16)

			for _, b := range []byte(tt.appended) {
				l.Append(b)
			}

			for i := 0; i < tt.backspaces; i++ {
				l.Backspace()
			}

			if got := l.String(); got != tt.wantText {
				t.Errorf("text = %q, want %q", got, tt.wantText)
			}

			if got := l.Len(); got != tt.wantLen {
				t.Errorf("len = %d, want %d", got, tt.wantLen)
			}
		})
	}
}

// TestLineBuffer_FullIsIdempotent checks that once the buffer holds
// capacity-1 characters, further appends change nothing.
func TestLineBuffer_FullIsIdempotent(t *testing.T) {
	const capacity = 8

	l := NewLineBuffer(capacity)

	for _, b := range []byte(strings.Repeat("x", capacity-1)) {
		if !l.Append(b) {
			t.Fatal("append rejected below capacity")
		}
	}

	want := l.String()

	for _, b := range []byte("overflow") {
		if l.Append(b) {
			t.Error("append accepted at capacity")
		}
	}

	if got := l.String(); got != want {
		t.Errorf("text changed at capacity: %q -> %q", want, got)
	}

	if got := l.Len(); got != capacity-1 {
		t.Errorf("len = %d, want %d", got, capacity-1)
	}
}

func TestLineBuffer_Text_StripsLineEndings(t *testing.T) {
	l := NewLineBuffer(16)

	for _, b := range []byte("1234\r\n") {
		l.Append(b)
	}

	if got := l.Text(); got != "1234" {
		t.Errorf("Text() = %q, want %q", got, "1234")
	}

	if got := l.String(); got != "1234\r\n" {
		t.Errorf("String() = %q, want %q", got, "1234\r\n")
	}
}

func TestLineBuffer_Reset(t *testing.T) {
	l := NewLineBuffer(16)

	for _, b := range []byte("stale") {
		l.Append(b)
	}

	l.EndLine()

	if !l.Complete() {
		t.Fatal("expected line to be complete")
	}

	l.Reset()

	if l.Complete() || l.Len() != 0 || l.String() != "" {
		t.Errorf("reset left state behind: complete=%v len=%d text=%q",
			l.Complete(), l.Len(), l.String())
	}
}
