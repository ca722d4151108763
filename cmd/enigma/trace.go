// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/katalvlaran/enigma/machine"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// colorEnabled resolves a --color mode for output written to w.
func colorEnabled(mode string, w io.Writer) (bool, error) {
	switch mode {
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	case colorAuto:
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("invalid --color %q: want auto, always or never", mode)
	}
}

// traceRenderer prints one line per converted symbol:
//
//	[AXLF] F -> F -> Q
//	[AXLF] F -> F -> I V J W H X Z J H -> Q   (with path)
type traceRenderer struct {
	w        io.Writer
	withPath bool
	settings *color.Color
	symbol   *color.Color
	path     *color.Color
	output   *color.Color
}

func newTraceRenderer(w io.Writer, useColor, withPath bool) *traceRenderer {
	r := &traceRenderer{
		w:        w,
		withPath: withPath,
		settings: color.New(color.FgCyan),
		symbol:   color.New(color.Bold),
		path:     color.New(color.FgHiBlack),
		output:   color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{r.settings, r.symbol, r.path, r.output} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Trace implements machine.Tracer.
func (r *traceRenderer) Trace(t machine.Trace) {
	var sb strings.Builder
	sb.WriteString(r.settings.Sprintf("[%s]", t.Settings))
	sb.WriteByte(' ')
	sb.WriteString(r.symbol.Sprintf("%c", t.Input))
	sb.WriteString(" -> ")
	sb.WriteString(r.symbol.Sprintf("%c", t.Plugged))
	sb.WriteString(" -> ")
	if r.withPath && len(t.Path) > 0 {
		hops := make([]string, len(t.Path))
		for i, c := range t.Path {
			hops[i] = string(c)
		}
		sb.WriteString(r.path.Sprint(strings.Join(hops, " ")))
		sb.WriteString(" -> ")
	}
	sb.WriteString(r.output.Sprintf("%c", t.Output))
	sb.WriteByte('\n')
	_, _ = io.WriteString(r.w, sb.String())
}
