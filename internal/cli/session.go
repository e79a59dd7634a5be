// Copyright 2025 Yauheni Bialkou
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the serial command shell's core: the session task
// that consumes bytes from the transport callbacks, the line editing state,
// the authentication gate and the half-duplex reply loop.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ZenyaBelkov/FreeRTOS-CLI/internal/mailbox"
	"github.com/ZenyaBelkov/FreeRTOS-CLI/pkg/command"
	"github.com/ZenyaBelkov/FreeRTOS-CLI/pkg/uart"
)

// Startup stage errors. Each stage of Startup fails with its own sentinel
// so callers can tell the stages apart.
var (
	ErrNoTransport = errors.New("no transport attached")
	ErrNoRegistry  = errors.New("no command registry attached")
	ErrConfig      = errors.New("invalid session configuration")
	ErrQueues      = errors.New("mailbox allocation failed")
	ErrCallbacks   = errors.New("callback registration failed")
	ErrEnable      = errors.New("transport enable failed")
)

// Session is the single consumer of the serial line. It owns the line and
// reply buffers, the half-duplex direction and the authentication state;
// transport callbacks reach it only through the two mailboxes.
type Session struct {
	cfg       Config
	transport uart.Transport
	registry  *command.Registry

	rx     *mailbox.Box[byte]
	status *mailbox.Box[TxStatus]
	line   *LineBuffer
	reply  []byte
}

// Startup wires a Session to the given transport and command registry:
// queues are allocated, callbacks registered and the hardware enabled in
// receive direction. The session task itself is started with Serve or Run.
func Startup(t uart.Transport, reg *command.Registry, cfg Config) (*Session, error) {
	if t == nil {
		return nil, ErrNoTransport
	}

	if reg == nil {
		return nil, ErrNoRegistry
	}

	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	// Park the line in receive direction before anything is running on it.
	if err := t.SetDirection(uart.Receiving); err != nil {
		log.Printf("Session: initial direction switch failed: %v", err)
	}

	rx, err := mailbox.New[byte](cfg.QueueLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueues, err)
	}

	status, err := mailbox.New[TxStatus](cfg.QueueLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueues, err)
	}

	s := &Session{
		cfg:       cfg,
		transport: t,
		registry:  reg,
		rx:        rx,
		status:    status,
		line:      NewLineBuffer(cfg.LineBufferSize),
		reply:     make([]byte, cfg.ReplyBufferSize),
	}

	in := Intake{rx: rx, status: status}
	if err := t.RegisterCallbacks(newCallbacks(t, in)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCallbacks, err)
	}

	if err := t.Enable(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnable, err)
	}

	if err := t.SetDirection(uart.Receiving); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnable, err)
	}

	log.Print("Session: startup complete")

	return s, nil
}

// Serve is the session task. It first runs the authentication gate, then
// treats every completed line as a command. Serve returns the context's
// error on cancellation; under normal operation it does not return.
func (s *Session) Serve(ctx context.Context) error {
	log.Print("Session: task running")

	if err := s.login(ctx); err != nil {
		return err
	}

	log.Print("Session: operator authenticated")

	for {
		b, err := s.rx.Get(ctx)
		if err != nil {
			return err
		}

		s.dispatch(b)

		if s.line.Complete() {
			s.processLine(ctx)
		}
	}
}

// Run spawns the session task on its own goroutine and returns a channel
// carrying the task's terminal error.
func (s *Session) Run(ctx context.Context) <-chan error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- s.Serve(ctx)
	}()

	return errCh
}

// dispatch routes one received byte into the line buffer.
func (s *Session) dispatch(b byte) {
	switch b {
	case endOfLine:
		s.line.EndLine()
	case backspace:
		s.line.Backspace()
	default:
		// Append drops the byte silently once the buffer is full.
		s.line.Append(b)
	}
}

// processLine runs the completed line through the command registry and
// transmits the reply chunk by chunk. Between chunks the status mailbox is
// polled with a bounded timeout; a missing or faulty status token stops the
// reply early. The line is switched back to receive direction and the
// buffer reset regardless of the outcome.
func (s *Session) processLine(ctx context.Context) {
	input := s.line.String()

	for {
		n, more := s.registry.Process(input, s.reply)

		if err := s.transport.SetDirection(uart.Transmitting); err != nil {
			log.Printf("Session: direction switch failed: %v", err)

			break
		}

		if _, err := s.transport.Write(s.reply[:n]); err != nil {
			log.Printf("Session: reply write failed: %v", err)

			break
		}

		tok, err := s.status.GetTimeout(ctx, s.cfg.ReplyTimeout)
		if err != nil {
			// Timed out or cancelled: stop sending further chunks.
			log.Printf("Session: no transmit status: %v", err)

			break
		}

		if tok == TxError {
			log.Print("Session: transmit fault, reply truncated")

			break
		}

		if !more {
			break
		}
	}

	if err := s.transport.SetDirection(uart.Receiving); err != nil {
		log.Printf("Session: direction switch failed: %v", err)
	}

	s.line.Reset()
}

// send transmits msg and returns once the transport reported the request
// finished. The line is held in transmit direction for the duration of the
// write and switched back to receive afterwards. Cancelling ctx abandons
// the wait.
func (s *Session) send(ctx context.Context, msg string) error {
	if err := s.transport.SetDirection(uart.Transmitting); err != nil {
		return err
	}

	defer func() {
		if err := s.transport.SetDirection(uart.Receiving); err != nil {
			log.Printf("Session: direction switch failed: %v", err)
		}
	}()

	if _, err := s.transport.Write([]byte(msg)); err != nil {
		return err
	}

	tok, err := s.status.Get(ctx)
	if err != nil {
		return err
	}

	if tok == TxError {
		log.Print("Session: message transmission reported a fault")
	}

	return nil
}
