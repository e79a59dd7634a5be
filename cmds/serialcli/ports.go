// Copyright 2025 Yauheni Bialkou
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZenyaBelkov/FreeRTOS-CLI/pkg/uart"
)

func newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List the serial devices available on this host",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ports, err := uart.List()
			if err != nil {
				return err
			}

			if len(ports) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no serial devices found")

				return nil
			}

			for _, port := range ports {
				fmt.Fprintln(cmd.OutOrStdout(), port)
			}

			return nil
		},
	}
}
