// Copyright 2025 Yauheni Bialkou
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uart

import (
	"time"

	"github.com/tarm/serial"
)

// tarmReadTimeout bounds the blocking reads of the reader goroutine so that
// Close is noticed promptly.
const tarmReadTimeout = 250 * time.Millisecond

func openTarm(cfg PortConfig) (backend, error) {
	return serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: tarmReadTimeout,
	})
}
