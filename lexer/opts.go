// SPDX-License-Identifier: MIT
package lexer

import "github.com/sirupsen/logrus"

// Option defines the Lexer functional option type.
type Option func(*Lexer)

// WithConfig replaces the Lexer's Config.
func WithConfig(cfg *Config) Option {
	return func(l *Lexer) {
		cfg.Validate()
		l.cfg = *cfg
	}
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.cfg.Debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(l *Lexer) {
		if logger != nil {
			l.cfg.Logger = logger
		}
	}
}

// WithBufferSize configures the capacity of the Item channel.
func WithBufferSize(size int) Option {
	return func(l *Lexer) {
		if size > 0 {
			l.cfg.BufferSize = size
		}
	}
}
