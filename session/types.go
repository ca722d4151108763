// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/enigma"
)

// DefaultGroupSize is the number of symbols per output block.
const DefaultGroupSize = 5

// ErrNoSetup indicates message input before any setup line.
var ErrNoSetup = fmt.Errorf("session: no rotors in machine: %w", enigma.ErrConfigFormat)

// Options configures Process.
//
// Logger   : receives per-group and summary records; discarded by default.
// GroupSize: symbols per output block; values < 1 disable grouping.
type Options struct {
	Logger    *slog.Logger
	GroupSize int
}

// Option represents a functional option for Process.
type Option func(*Options)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithGroupSize sets the output block size.
func WithGroupSize(n int) Option {
	return func(o *Options) {
		o.GroupSize = n
	}
}

// DefaultOptions returns blocks of DefaultGroupSize and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Logger:    slog.New(slog.DiscardHandler),
		GroupSize: DefaultGroupSize,
	}
}

// Stats summarises one Process run.
type Stats struct {
	Groups   int // setup lines applied
	Messages int // message lines converted
	Symbols  int // symbols converted
}
