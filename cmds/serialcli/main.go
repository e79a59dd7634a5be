// Copyright 2025 Yauheni Bialkou
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// serialcli runs a password-gated command shell on a half-duplex serial
// line. It is designed for single board computers wired to an RS-485 style
// transceiver whose direction is switched over two GPIO enable lines.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "serialcli",
		Short:         "Password-gated command shell over a half-duplex serial line",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newServeCmd(), newPortsCmd(), newVersionCmd())

	return root
}
