// SPDX-License-Identifier: MIT

package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/enigma/machine"
	"github.com/katalvlaran/enigma/setup"
)

// Process reads setup and message lines from in, converts every message with
// m and writes the grouped results to out. ctx is checked before each line.
func Process(ctx context.Context, m *machine.Machine, in io.Reader, out io.Writer, opts ...Option) (Stats, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger

	var st Stats
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	w := bufio.NewWriter(out)
	defer w.Flush() // keep output of lines converted before an error

	lineNo := 0
	for sc.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return st, err
		}
		line := sc.Text()

		if setup.IsSetup(line) {
			l, err := setup.Configure(m, line)
			if err != nil {
				return st, fmt.Errorf("session: line %d: %w", lineNo, err)
			}
			st.Groups++
			log.Debug("setup applied", slog.Int("line", lineNo), slog.String("setup", l.String()))
			continue
		}

		if st.Groups == 0 {
			if strings.TrimSpace(line) == "" {
				continue
			}
			return st, fmt.Errorf("session: line %d: %w", lineNo, ErrNoSetup)
		}

		msg := strings.Join(strings.Fields(line), "")
		res, err := m.ConvertMessage(msg)
		if err != nil {
			return st, fmt.Errorf("session: line %d: %w", lineNo, err)
		}
		st.Messages++
		st.Symbols += len([]rune(msg))
		log.Debug("message converted", slog.Int("line", lineNo), slog.Int("symbols", len([]rune(msg))), slog.String("settings", m.Settings()))

		if _, err := w.WriteString(Group(res, cfg.GroupSize) + "\n"); err != nil {
			return st, fmt.Errorf("session: write: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("session: read: %w", err)
	}
	if err := w.Flush(); err != nil {
		return st, fmt.Errorf("session: write: %w", err)
	}

	log.Info("session complete",
		slog.Int("groups", st.Groups),
		slog.Int("messages", st.Messages),
		slog.Int("symbols", st.Symbols))
	return st, nil
}

// Group splits msg into blocks of size symbols joined by single spaces. The
// last block may be shorter. size < 1 returns msg unchanged.
func Group(msg string, size int) string {
	runes := []rune(msg)
	if size < 1 || len(runes) <= size {
		return msg
	}

	var sb strings.Builder
	sb.Grow(len(msg) + len(runes)/size)
	for i, r := range runes {
		if i > 0 && i%size == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
