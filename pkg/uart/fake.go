// Copyright 2025 Yauheni Bialkou
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uart

import (
	"errors"
	"sync"
)

// Fake is an in-memory Transport for tests.
//
// Behavior:
//   - Feed queues input bytes and fires OnReceive once per byte, from the
//     caller's goroutine, the way a receive interrupt would.
//   - Write records the request and fires OnTxComplete synchronously, unless
//     MuteTxComplete suppresses the completion or FailTx reports the request
//     through OnError instead.
//   - SetDirection keeps a log of every switch and samples the direction at
//     the instant of each write.
//
// Errors can be injected via the exported error fields.
type Fake struct {
	mu      sync.Mutex
	cb      Callbacks
	cbSet   bool
	enabled bool
	pending []byte

	dir        Direction
	dirLog     []Direction
	sent       [][]byte
	dirAtWrite []Direction

	ReadErr        error
	WriteErr       error
	RegisterErr    error
	EnableErr      error
	MuteTxComplete bool
	FailTx         bool
}

var _ Transport = &Fake{}

func (f *Fake) RegisterCallbacks(cb Callbacks) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.RegisterErr != nil {
		return f.RegisterErr
	}

	if f.cbSet {
		return ErrCallbacksRegistered
	}

	f.cb = cb
	f.cbSet = true

	return nil
}

func (f *Fake) Enable() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.EnableErr != nil {
		return f.EnableErr
	}

	if !f.cbSet {
		return ErrNoCallbacks
	}

	f.enabled = true

	return nil
}

func (f *Fake) Read(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ReadErr != nil {
		return 0, f.ReadErr
	}

	n := copy(p, f.pending)
	f.pending = f.pending[n:]

	return n, nil
}

func (f *Fake) Write(p []byte) (int, error) {
	f.mu.Lock()

	if f.WriteErr != nil {
		err := f.WriteErr
		f.mu.Unlock()

		return 0, err
	}

	chunk := make([]byte, len(p))
	copy(chunk, p)
	f.sent = append(f.sent, chunk)
	f.dirAtWrite = append(f.dirAtWrite, f.dir)

	cb := f.cb
	failTx := f.FailTx
	mute := f.MuteTxComplete
	f.mu.Unlock()

	switch {
	case mute:
	case failTx:
		if cb.OnError != nil {
			cb.OnError(errors.New("injected transmit fault"))
		}
	default:
		if cb.OnTxComplete != nil {
			cb.OnTxComplete()
		}
	}

	return len(p), nil
}

func (f *Fake) SetDirection(d Direction) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.dir = d
	f.dirLog = append(f.dirLog, d)

	return nil
}

func (f *Fake) Close() error {
	return nil
}

// Feed queues the given bytes and fires OnReceive once per byte.
func (f *Fake) Feed(bytes ...byte) {
	for _, b := range bytes {
		f.mu.Lock()
		f.pending = append(f.pending, b)
		cb := f.cb
		f.mu.Unlock()

		if cb.OnReceive != nil {
			cb.OnReceive()
		}
	}
}

// FeedString is Feed for string input.
func (f *Fake) FeedString(s string) {
	f.Feed([]byte(s)...)
}

// Direction returns the current half-duplex mode.
func (f *Fake) Direction() Direction {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.dir
}

// Writes returns the recorded write requests in order.
func (f *Fake) Writes() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([][]byte, len(f.sent))
	copy(out, f.sent)

	return out
}

// Output returns all written bytes concatenated.
func (f *Fake) Output() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []byte
	for _, chunk := range f.sent {
		out = append(out, chunk...)
	}

	return string(out)
}

// DirectionsAtWrite returns the direction sampled at the instant of each
// recorded write.
func (f *Fake) DirectionsAtWrite() []Direction {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Direction, len(f.dirAtWrite))
	copy(out, f.dirAtWrite)

	return out
}

// DirectionLog returns every direction switch in order.
func (f *Fake) DirectionLog() []Direction {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Direction, len(f.dirLog))
	copy(out, f.dirLog)

	return out
}
