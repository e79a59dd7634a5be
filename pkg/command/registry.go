// Copyright 2025 Yauheni Bialkou
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package command implements the line-oriented command registry of the
// shell. The session hands a completed input line and a fixed-capacity
// output buffer to Process; registered handlers write one reply chunk at a
// time and report whether more output is pending.
package command

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Replies for lines the registry cannot dispatch.
const (
	unknownCommandReply = "Command not recognised. Enter 'help' to view a list of available commands.\r\n"
	badParametersReply  = "Incorrect command parameters. Enter 'help' to view usage information.\r\n"
)

// Handler produces one chunk of reply text for an invocation of a command.
// It writes at most len(out) bytes into out and returns the number of bytes
// written together with a flag telling the caller to invoke the handler
// again for further output.
//
// Handlers producing multi-chunk output keep their own iteration state and
// must reset it when they report the final chunk.
type Handler func(args []string, out []byte) (n int, more bool)

// Record holds the information required to register a command.
type Record struct {
	// Name is the word the command is invoked by.
	Name string
	// Help is a one-line usage text, shown by the help command.
	Help string
	// Params is the expected number of arguments. A negative value accepts
	// any number.
	Params int
	// Run produces the command's reply.
	Run Handler
}

// Registry maps command names to their handlers.
type Registry struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{records: make(map[string]Record)}
}

// Register adds a command to the registry. It panics on an empty name, a
// missing handler or a duplicate registration, as any of these is a
// programming error in the command set.
func (r *Registry) Register(rec Record) {
	if rec.Name == "" {
		panic("command name missing")
	}

	if rec.Run == nil {
		panic(fmt.Sprintf("command %q has no handler", rec.Name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[rec.Name]; ok {
		panic(fmt.Sprintf("command already registered: %s", rec.Name))
	}

	r.records[rec.Name] = rec
}

// Lookup returns the record registered under name.
func (r *Registry) Lookup(name string) (Record, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[name]

	return rec, ok
}

// Names returns the registered command names, sorted alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.records))
	for name := range r.records {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Process tokenizes the completed input line, looks up the named command
// and invokes its handler with the output buffer. Unknown commands and
// wrong argument counts produce a diagnostic chunk with no further output;
// an empty line produces an empty chunk.
//
// For a multi-chunk reply the caller re-invokes Process with the same line
// until it reports no more pending output.
func (r *Registry) Process(line string, out []byte) (int, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, false
	}

	rec, ok := r.Lookup(fields[0])
	if !ok {
		return copy(out, unknownCommandReply), false
	}

	args := fields[1:]
	if rec.Params >= 0 && len(args) != rec.Params {
		return copy(out, badParametersReply), false
	}

	return rec.Run(args, out)
}
