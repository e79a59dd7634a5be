// Copyright 2025 Yauheni Bialkou
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/ZenyaBelkov/FreeRTOS-CLI/internal/mailbox"
	"github.com/ZenyaBelkov/FreeRTOS-CLI/pkg/uart"
)

// TxStatus is the token a transport callback hands back after a write
// request finished.
type TxStatus int

const (
	// TxComplete reports a successfully completed transmission.
	TxComplete TxStatus = iota + 1
	// TxError reports a transmission or reception fault.
	TxError
)

// Intake is the restricted handle given to transport callbacks. It permits
// only non-blocking pushes into the session's mailboxes, so callback code
// cannot reach the session's buffers or block on its queues.
type Intake struct {
	rx     *mailbox.Box[byte]
	status *mailbox.Box[TxStatus]
}

// PutByte queues a received byte for the session task. The byte is dropped
// when the receive mailbox is full.
func (i Intake) PutByte(b byte) bool {
	return i.rx.TryPut(b)
}

// PutStatus queues a transmit-status token for the session task.
func (i Intake) PutStatus(s TxStatus) bool {
	return i.status.TryPut(s)
}

// newCallbacks wires the transport hooks to an Intake. The closures capture
// only the transport and the Intake; the rest of the session stays out of
// reach of callback context.
func newCallbacks(t uart.Transport, in Intake) uart.Callbacks {
	return uart.Callbacks{
		OnReceive: func() {
			var b [1]byte

			n, err := t.Read(b[:])
			if err != nil || n < 1 {
				// Read fault inside the callback is a skip.
				return
			}

			// Drop-on-full: the consumer is expected to drain promptly,
			// forward progress of the callback wins over buffering.
			_ = in.PutByte(b[0])
		},
		OnTxComplete: func() {
			in.PutStatus(TxComplete)
		},
		OnError: func(error) {
			in.PutStatus(TxError)
		},
	}
}
