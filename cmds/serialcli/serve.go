// Copyright 2025 Yauheni Bialkou
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ZenyaBelkov/FreeRTOS-CLI/internal/cli"
	"github.com/ZenyaBelkov/FreeRTOS-CLI/pkg/command"
	"github.com/ZenyaBelkov/FreeRTOS-CLI/pkg/uart"
)

// config is the on-disk YAML layout of a serialcli deployment.
type config struct {
	Serial  uart.PortConfig `yaml:"serial"`
	Session cli.Config      `yaml:"session"`
}

func newServeCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Attach to the serial device and run the shell",
		RunE: func(_ *cobra.Command, _ []string) error {
			return serve(cfgPath)
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "./contrib/serialcli.yaml",
		"path to the YAML configuration")

	return cmd
}

func serve(cfgPath string) error {
	raw, err := os.ReadFile(cfgPath)
	if err != nil {
		return err
	}

	var cfg config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parse %s: %w", cfgPath, err)
	}

	port, err := uart.Open(cfg.Serial)
	if err != nil {
		return err
	}

	defer func() {
		if err := port.Close(); err != nil && !errors.Is(err, uart.ErrClosed) {
			log.Printf("closing serial port: %v", err)
		}
	}()

	session, err := cli.Startup(port, command.Builtins(), cfg.Session)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = <-session.Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Print("Session: shut down on signal")

		return nil
	}

	return err
}
