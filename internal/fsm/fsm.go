// Copyright 2025 Yauheni Bialkou
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsm provides a small finite state machine built from state
// functions, following the pattern of Rob Pike's talk
// "Lexical Scanning in Go".
package fsm

import "context"

// State is a single state of the machine. It receives the machine's data,
// performs the work associated with the state and returns the updated data
// together with the next State to run.
//
// Returning a nil next State ends the machine successfully.
type State[T any] func(ctx context.Context, data T) (T, State[T], error)

// Run drives the machine beginning with start until a state returns a nil
// next State or fails with an error. Cancelling ctx stops the machine before
// the next transition and returns the context's error.
func Run[T any](ctx context.Context, data T, start State[T]) (T, error) {
	var err error

	current := start

	for {
		if ctx.Err() != nil {
			return data, ctx.Err()
		}

		data, current, err = current(ctx, data)
		if err != nil {
			return data, err
		}

		if current == nil {
			return data, nil
		}
	}
}
