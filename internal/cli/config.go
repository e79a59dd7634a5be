// Copyright 2025 Yauheni Bialkou
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Wire framing bytes. A carriage return completes a line, DEL removes the
// last buffered character.
const (
	endOfLine = 0x0D
	backspace = 0x7F
)

// Defaults for the session configuration.
const (
	DefaultLineBufferSize  = 256
	DefaultReplyBufferSize = 256
	DefaultQueueLength     = 10
	DefaultReplyTimeout    = time.Second

	DefaultPrompt         = "Enter password:"
	DefaultSuccessMessage = "Authentication is successfull!\n"
	DefaultFailureMessage = "Authentication error. Try again.\n"
)

// Config holds the tunables of a Session.
type Config struct {
	// Password is the shared secret gating command execution. Compared
	// case-sensitively, no hashing.
	Password string `yaml:"password" validate:"required"`

	// Prompt, SuccessMessage and FailureMessage are the authentication
	// texts. Each is sent atomically as one blocking transmission.
	Prompt         string `yaml:"prompt"`
	SuccessMessage string `yaml:"success_message"`
	FailureMessage string `yaml:"failure_message"`

	// LineBufferSize and ReplyBufferSize are the fixed capacities of the
	// input line and of the command reply staging buffer.
	LineBufferSize  int `yaml:"line_buffer_size" validate:"omitempty,gte=2"`
	ReplyBufferSize int `yaml:"reply_buffer_size" validate:"omitempty,gte=1"`

	// QueueLength is the capacity of the receive and transmit-status
	// mailboxes.
	QueueLength int `yaml:"queue_length" validate:"omitempty,gte=1"`

	// ReplyTimeout bounds the wait for a transmit-status token between the
	// chunks of a command reply.
	ReplyTimeout time.Duration `yaml:"reply_timeout"`
}

// SetDefaults fills unset fields with the package defaults. The password has
// no default.
func (c *Config) SetDefaults() {
	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}

	if c.SuccessMessage == "" {
		c.SuccessMessage = DefaultSuccessMessage
	}

	if c.FailureMessage == "" {
		c.FailureMessage = DefaultFailureMessage
	}

	if c.LineBufferSize == 0 {
		c.LineBufferSize = DefaultLineBufferSize
	}

	if c.ReplyBufferSize == 0 {
		c.ReplyBufferSize = DefaultReplyBufferSize
	}

	if c.QueueLength == 0 {
		c.QueueLength = DefaultQueueLength
	}

	if c.ReplyTimeout == 0 {
		c.ReplyTimeout = DefaultReplyTimeout
	}
}

// Validate checks the configuration for structural errors.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
