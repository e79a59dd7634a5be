// Copyright 2025 Yauheni Bialkou
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

// Replies of the stock commands.
const (
	helloReply   = "Hello world \r\n"
	versionReply = "CLI Version 1.0.0 \r\n"
)

// Builtins returns a registry preloaded with the stock command set.
func Builtins() *Registry {
	r := NewRegistry()

	r.Register(Record{
		Name:   "hello",
		Help:   "hello - prints Hello \r\n",
		Params: 0,
		Run:    StaticReply(helloReply),
	})

	r.Register(Record{
		Name:   "version",
		Help:   "version - prints CLI version \r\n",
		Params: 0,
		Run:    StaticReply(versionReply),
	})

	r.Register(Record{
		Name:   "help",
		Help:   "help - lists all registered commands \r\n",
		Params: 0,
		Run:    r.helpHandler(),
	})

	return r
}

// StaticReply returns a Handler that answers every invocation with the same
// single chunk of text.
func StaticReply(text string) Handler {
	return func(_ []string, out []byte) (int, bool) {
		return copy(out, text), false
	}
}

// helpHandler emits the help line of one registered command per invocation
// and reports more output until the listing is exhausted. The iteration
// state resets with the final chunk, ready for the next help request.
func (r *Registry) helpHandler() Handler {
	var next int

	return func(_ []string, out []byte) (int, bool) {
		names := r.Names()
		if next >= len(names) {
			next = 0

			return 0, false
		}

		rec, _ := r.Lookup(names[next])
		n := copy(out, rec.Help)
		next++

		if next >= len(names) {
			next = 0

			return n, false
		}

		return n, true
	}
}
