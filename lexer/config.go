// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the Lexer's operations.
	Config struct {
		Logger logrus.FieldLogger
		Debug  bool

		// BufferSize is the capacity of the Item channel used by [Lexer.Items].
		BufferSize int
	}
)

const (
	defBufferSize = 10

	// EmptyRune is returned by [Lexer.Peek] at the end of the source.
	EmptyRune rune = 0
)

var defLogger logrus.FieldLogger = logrus.New()

// DefaultConfig configures the lexer's Config.
func DefaultConfig() *Config {
	return &Config{
		BufferSize: defBufferSize,
		Logger:     defLogger,
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.BufferSize < 1 {
		c.BufferSize = defBufferSize
	}
	if c.Logger == nil {
		c.Logger = defLogger
	}
}
