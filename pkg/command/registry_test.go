// Copyright 2025 Yauheni Bialkou
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package command

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegister_Panics(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{
			name: "empty name",
			rec:  Record{Run: StaticReply("x")},
		},
		{
			name: "missing handler",
			rec:  Record{Name: "broken"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected a panic")
				}
			}()

			NewRegistry().Register(tt.rec)
		})
	}
}

func TestRegister_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(Record{Name: "twice", Run: StaticReply("x")})

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on duplicate registration")
		}
	}()

	r.Register(Record{Name: "twice", Run: StaticReply("y")})
}

func TestNames_Sorted(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		r.Register(Record{Name: name, Run: StaticReply("x")})
	}

	want := []string{"alpha", "mid", "zeta"}
	if diff := cmp.Diff(want, r.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestProcess(t *testing.T) {
	echo := func(args []string, out []byte) (int, bool) {
		return copy(out, strings.Join(args, "|")), false
	}

	r := NewRegistry()
	r.Register(Record{Name: "greet", Params: 0, Run: StaticReply("hi\r\n")})
	r.Register(Record{Name: "echo", Params: -1, Run: echo})
	r.Register(Record{Name: "pair", Params: 2, Run: echo})

	tests := []struct {
		name     string
		line     string
		want     string
		wantMore bool
	}{
		{
			name: "simple command",
			line: "greet",
			want: "hi\r\n",
		},
		{
			name: "empty line yields empty chunk",
			line: "",
			want: "",
		},
		{
			name: "blank line yields empty chunk",
			line: "   ",
			want: "",
		},
		{
			name: "unknown command",
			line: "bogus",
			want: unknownCommandReply,
		},
		{
			name: "arguments forwarded in order",
			line: "echo one two three",
			want: "one|two|three",
		},
		{
			name: "surplus whitespace between tokens",
			line: "  echo   a   b  ",
			want: "a|b",
		},
		{
			name: "argument count enforced",
			line: "pair only-one",
			want: badParametersReply,
		},
		{
			name: "exact argument count accepted",
			line: "pair a b",
			want: "a|b",
		},
		{
			name: "surplus arguments rejected for fixed arity",
			line: "greet extra",
			want: badParametersReply,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make([]byte, 256)

			n, more := r.Process(tt.line, out)
			if got := string(out[:n]); got != tt.want {
				t.Errorf("reply = %q, want %q", got, tt.want)
			}

			if more != tt.wantMore {
				t.Errorf("more = %v, want %v", more, tt.wantMore)
			}
		})
	}
}

// TestProcess_TruncatesToBuffer checks that a handler reply is cut at the
// output buffer's capacity.
func TestProcess_TruncatesToBuffer(t *testing.T) {
	r := NewRegistry()
	r.Register(Record{Name: "long", Params: 0, Run: StaticReply(strings.Repeat("y", 64))})

	out := make([]byte, 8)

	n, _ := r.Process("long", out)
	if n != len(out) {
		t.Fatalf("reply length = %d, want %d", n, len(out))
	}
}

// TestHelp_Pagination walks the help command through its chunked listing
// twice, verifying the iteration state resets after the final chunk.
func TestHelp_Pagination(t *testing.T) {
	r := Builtins()

	collect := func() []string {
		var chunks []string

		out := make([]byte, 256)

		for {
			n, more := r.Process("help", out)
			chunks = append(chunks, string(out[:n]))

			if !more {
				return chunks
			}
		}
	}

	want := []string{
		"hello - prints Hello \r\n",
		"help - lists all registered commands \r\n",
		"version - prints CLI version \r\n",
	}

	for round := 0; round < 2; round++ {
		if diff := cmp.Diff(want, collect()); diff != "" {
			t.Errorf("round %d help listing mismatch (-want +got):\n%s", round, diff)
		}
	}
}

func TestBuiltins(t *testing.T) {
	r := Builtins()

	out := make([]byte, 256)

	n, more := r.Process("hello", out)
	if got := string(out[:n]); got != "Hello world \r\n" || more {
		t.Errorf("hello reply = %q more=%v", got, more)
	}

	n, more = r.Process("version", out)
	if got := string(out[:n]); !strings.HasPrefix(got, "CLI Version") || more {
		t.Errorf("version reply = %q more=%v", got, more)
	}
}
