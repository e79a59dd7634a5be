// Copyright 2025 Yauheni Bialkou
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uart

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"
)

// pinDriver drives the half-duplex enable lines.
type pinDriver interface {
	set(d Direction) error
}

// devmemPins switches the transceiver's enable lines through the memory
// mapped GPIO registers. Receiving pulls both lines low, Transmitting pulls
// both high.
type devmemPins struct {
	rxEnable uint8
	txEnable uint8
}

var _ pinDriver = &devmemPins{}

func (g *devmemPins) set(d Direction) error {
	return memmapDo(func() {
		rxPin := rpio.Pin(g.rxEnable)
		txPin := rpio.Pin(g.txEnable)

		rxPin.Output()
		txPin.Output()

		switch d {
		case Receiving:
			rxPin.Low()
			txPin.Low()
		case Transmitting:
			rxPin.High()
			txPin.High()
		}
	})
}

func memmapDo(op func()) error {
	if err := rpio.Open(); err != nil {
		return fmt.Errorf("memory map GPIO via /dev/mem is not supported: %v", err)
	}
	defer rpio.Close()

	op()

	return nil
}
