// Copyright 2025 Yauheni Bialkou
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uart

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/go-playground/validator/v10"
)

// DefaultBaudRate is the default baud rate for the serial connection.
const DefaultBaudRate = 115200

// rxBacklog is the number of received bytes the port keeps between the
// driver and Read. It stands in for the hardware FIFO; an overflowing
// backlog is reported as an overrun through OnError.
const rxBacklog = 64

// DirectionPins names the two GPIO enable lines of a half-duplex
// transceiver. Raw BCM2835/BCM2711 pin numbers.
type DirectionPins struct {
	RxEnable uint8 `yaml:"rx_enable"`
	TxEnable uint8 `yaml:"tx_enable"`
}

// PortConfig describes the serial device a Port attaches to.
type PortConfig struct {
	// Device is the path to the serial device, e.g. /dev/ttyAMA0.
	Device string `yaml:"device" validate:"required"`
	// Baud is the baud rate. If unset, DefaultBaudRate is used.
	Baud int `yaml:"baud" validate:"omitempty,gt=0"`
	// Backend selects the serial driver. Default is "tarm".
	Backend string `yaml:"backend" validate:"omitempty,oneof=tarm bugst"`
	// Pins are the direction enable lines. A port without pins treats
	// direction switches as no-ops (full-duplex wiring).
	Pins *DirectionPins `yaml:"pins"`
}

func (c *PortConfig) setDefaults() {
	if c.Baud == 0 {
		c.Baud = DefaultBaudRate
	}

	if c.Backend == "" {
		c.Backend = "tarm"
	}
}

// Validate checks the configuration for structural errors.
func (c *PortConfig) Validate() error {
	return validator.New().Struct(c)
}

// backend is the serial driver behind a Port. Read is expected to block
// until data arrives or a driver-specific timeout tick elapses; a tick is
// reported as (0, nil) or io.EOF.
type backend interface {
	io.ReadWriteCloser
}

// Port is a Transport backed by a real serial device.
type Port struct {
	cfg  PortConfig
	dev  backend
	pins pinDriver

	mu      sync.Mutex
	cb      Callbacks
	cbSet   bool
	enabled bool
	closed  bool

	rxCh chan byte
	done chan struct{}
}

var _ Transport = &Port{}

// Open attaches to the configured serial device. The returned Port is not
// yet delivering callbacks; call RegisterCallbacks and Enable.
func Open(cfg PortConfig) (*Port, error) {
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("port configuration: %w", err)
	}

	var (
		dev backend
		err error
	)

	switch cfg.Backend {
	case "tarm":
		dev, err = openTarm(cfg)
	case "bugst":
		dev, err = openBugst(cfg)
	}

	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Device, err)
	}

	var pins pinDriver
	if cfg.Pins != nil {
		pins = &devmemPins{
			rxEnable: cfg.Pins.RxEnable,
			txEnable: cfg.Pins.TxEnable,
		}
	}

	log.Printf("uart: attached to %s at %d baud (%s backend)", cfg.Device, cfg.Baud, cfg.Backend)

	return &Port{
		cfg:  cfg,
		dev:  dev,
		pins: pins,
		rxCh: make(chan byte, rxBacklog),
		done: make(chan struct{}),
	}, nil
}

// RegisterCallbacks installs the receive/transmit/error hooks. It must be
// called exactly once, before Enable.
func (p *Port) RegisterCallbacks(cb Callbacks) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cbSet {
		return ErrCallbacksRegistered
	}

	p.cb = cb
	p.cbSet = true

	return nil
}

// Enable starts the reader goroutine that drives OnReceive.
func (p *Port) Enable() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	if !p.cbSet {
		return ErrNoCallbacks
	}

	if p.enabled {
		return nil
	}

	p.enabled = true

	go p.readLoop()

	return nil
}

// readLoop performs blocking single-byte reads on the device and fires
// OnReceive once per arrived byte.
func (p *Port) readLoop() {
	buf := make([]byte, 1)

	for {
		select {
		case <-p.done:
			return
		default:
		}

		n, err := p.dev.Read(buf)
		if err != nil {
			select {
			case <-p.done:
				return
			default:
			}

			if errors.Is(err, io.EOF) {
				// Driver read-timeout tick, nothing arrived.
				continue
			}

			if p.cb.OnError != nil {
				p.cb.OnError(err)
			}

			continue
		}

		if n == 0 {
			continue
		}

		select {
		case p.rxCh <- buf[0]:
		default:
			// Backlog overrun. The byte is lost, like a missed
			// hardware FIFO slot.
			if p.cb.OnError != nil {
				p.cb.OnError(fmt.Errorf("uart: receive overrun on %s", p.cfg.Device))
			}

			continue
		}

		if p.cb.OnReceive != nil {
			p.cb.OnReceive()
		}
	}
}

// Read copies up to len(q) pending bytes into q without blocking.
func (p *Port) Read(q []byte) (int, error) {
	n := 0

	for n < len(q) {
		select {
		case b := <-p.rxCh:
			q[n] = b
			n++
		default:
			return n, nil
		}
	}

	return n, nil
}

// Write hands q to the serial driver and fires OnTxComplete once the driver
// accepted the whole request.
func (p *Port) Write(q []byte) (int, error) {
	p.mu.Lock()

	if p.closed {
		p.mu.Unlock()

		return 0, ErrClosed
	}
	p.mu.Unlock()

	n, err := p.dev.Write(q)
	if err != nil {
		return n, err
	}

	// Completion is signalled from outside the caller's goroutine, the way
	// a transmit interrupt would.
	go func() {
		if p.cb.OnTxComplete != nil {
			p.cb.OnTxComplete()
		}
	}()

	return n, nil
}

// SetDirection drives the enable lines for the requested half-duplex mode.
// Ports without direction pins accept any direction silently.
func (p *Port) SetDirection(d Direction) error {
	if p.pins == nil {
		return nil
	}

	return p.pins.set(d)
}

// Close stops the reader goroutine and releases the serial device.
func (p *Port) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	p.closed = true
	close(p.done)

	return p.dev.Close()
}
