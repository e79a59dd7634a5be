// Copyright 2025 Yauheni Bialkou
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"

	"github.com/ZenyaBelkov/FreeRTOS-CLI/internal/fsm"
)

// The authentication gate is a finite state machine with one function per
// state:
//
//	promptPassword -> collectInput -> verifyPassword -> authenticated (nil)
//	                       ^                               |
//	                       +---------- rejectPassword <----+
//
// Retries are unlimited; the machine ends only on a successful match or on
// context cancellation.

// login runs the authentication gate to completion. It returns nil once the
// operator presented the configured credential.
func (s *Session) login(ctx context.Context) error {
	_, err := fsm.Run(ctx, s, promptPassword)

	return err
}

// promptPassword clears any stale input and issues the password prompt.
func promptPassword(ctx context.Context, s *Session) (*Session, fsm.State[*Session], error) {
	s.line.Reset()

	if err := s.send(ctx, s.cfg.Prompt); err != nil {
		return s, nil, err
	}

	return s, collectInput, nil
}

// collectInput buffers operator keystrokes, one per transition, until the
// line is complete. Keystrokes pass through the same per-character dispatch
// as command input, so backspace editing works for the credential too.
func collectInput(ctx context.Context, s *Session) (*Session, fsm.State[*Session], error) {
	if s.line.Complete() {
		return s, verifyPassword, nil
	}

	b, err := s.rx.Get(ctx)
	if err != nil {
		return s, nil, err
	}

	s.dispatch(b)

	return s, collectInput, nil
}

// verifyPassword compares the captured line, stripped of trailing CR/LF,
// against the configured credential.
func verifyPassword(ctx context.Context, s *Session) (*Session, fsm.State[*Session], error) {
	if s.line.Text() == s.cfg.Password {
		s.line.Reset()

		if err := s.send(ctx, s.cfg.SuccessMessage); err != nil {
			return s, nil, err
		}

		return s, nil, nil
	}

	return s, rejectPassword, nil
}

// rejectPassword reports the failed attempt, discards the input and
// restarts the gate.
func rejectPassword(ctx context.Context, s *Session) (*Session, fsm.State[*Session], error) {
	if err := s.send(ctx, s.cfg.FailureMessage); err != nil {
		return s, nil, err
	}

	s.line.Reset()

	return s, promptPassword, nil
}
