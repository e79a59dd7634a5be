// Copyright 2025 Yauheni Bialkou
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uart

import (
	"time"

	serialdrv "go.bug.st/serial"
)

const bugstReadTimeout = 250 * time.Millisecond

func openBugst(cfg PortConfig) (backend, error) {
	mode := &serialdrv.Mode{
		BaudRate: cfg.Baud,
		DataBits: 8,
		Parity:   serialdrv.NoParity,
		StopBits: serialdrv.OneStopBit,
	}

	port, err := serialdrv.Open(cfg.Device, mode)
	if err != nil {
		return nil, err
	}

	if err := port.SetReadTimeout(bugstReadTimeout); err != nil {
		_ = port.Close()

		return nil, err
	}

	return port, nil
}

// List enumerates the serial devices available on this host.
func List() ([]string, error) {
	return serialdrv.GetPortsList()
}
