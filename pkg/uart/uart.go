// Copyright 2025 Yauheni Bialkou
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uart provides the byte channel the command shell runs on: a serial
// port with asynchronous receive/transmit/error callbacks and half-duplex
// direction control over a pair of GPIO enable lines.
package uart

import "errors"

// Direction is the current half-duplex mode of the serial line.
type Direction int

const (
	// Receiving enables the receive side of the line.
	Receiving Direction = iota
	// Transmitting enables the transmit side of the line.
	Transmitting
)

func (d Direction) String() string {
	switch d {
	case Receiving:
		return "receiving"
	case Transmitting:
		return "transmitting"
	default:
		return "unknown"
	}
}

// Callbacks are the hooks a Transport fires from its I/O goroutines.
//
// The hooks run outside the session task and must not block. They are
// limited to non-blocking mailbox pushes; see cli.Intake.
type Callbacks struct {
	// OnReceive fires once per arrived byte. The byte is collected with a
	// single non-blocking Read from within the hook.
	OnReceive func()
	// OnTxComplete fires once per completed write request.
	OnTxComplete func()
	// OnError fires on framing, overrun or other I/O faults.
	OnError func(err error)
}

// Transport is a half-duplex serial byte channel.
//
// Read never blocks. Write queues bytes for transmission and reports
// completion through OnTxComplete or OnError. Enable starts delivery of
// callbacks; RegisterCallbacks must be called exactly once before Enable.
type Transport interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	SetDirection(d Direction) error
	RegisterCallbacks(cb Callbacks) error
	Enable() error
	Close() error
}

var (
	// ErrClosed is returned for operations on a closed transport.
	ErrClosed = errors.New("uart: transport closed")

	// ErrNoCallbacks is returned by Enable when no callbacks are registered.
	ErrNoCallbacks = errors.New("uart: no callbacks registered")

	// ErrCallbacksRegistered is returned when callbacks are registered twice.
	ErrCallbacksRegistered = errors.New("uart: callbacks already registered")
)
