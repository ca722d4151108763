// SPDX-License-Identifier: MIT
package session_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/enigma"
	"github.com/katalvlaran/enigma/config"
	"github.com/katalvlaran/enigma/machine"
	"github.com/katalvlaran/enigma/session"
	"github.com/katalvlaran/enigma/setup"
)

const hiawatha = `* B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)
FROM HIS SHOULDER HIAWATHA
TOOK THE CAMERA OF ROSEWOOD
MADE OF SLIDING FOLDING ROSEWOOD
`

func newMachine(t *testing.T) *machine.Machine {
	t.Helper()
	m, err := config.NavalA().Build()
	require.NoError(t, err)
	return m
}

func run(t *testing.T, input string, opts ...session.Option) (string, session.Stats, error) {
	t.Helper()
	var out bytes.Buffer
	st, err := session.Process(context.Background(), newMachine(t), strings.NewReader(input), &out, opts...)
	return out.String(), st, err
}

func TestProcess_Hiawatha(t *testing.T) {
	out, st, err := run(t, hiawatha)
	require.NoError(t, err)
	assert.Equal(t, "QVPQS OKOIL PUBKJ ZPISF XDW\n"+
		"BHCNS CXNUO AATZX SRCFY DGU\n"+
		"FLPNX GXIXT YJUJR CAUGE UNCFM KUF\n", out)
	assert.Equal(t, session.Stats{Groups: 1, Messages: 3, Symbols: 23 + 23 + 28}, st)
}

func TestProcess_Decrypts(t *testing.T) {
	const cipher = `* B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)
QVPQS OKOIL PUBKJ ZPISF XDW
`
	out, _, err := run(t, cipher)
	require.NoError(t, err)
	assert.Equal(t, "FROMH ISSHO ULDER HIAWA THA\n", out)
}

func TestProcess_MultipleGroups(t *testing.T) {
	const input = `
* B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)
FROM HIS SHOULDER HIAWATHA

* B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)
* C Gamma VI VII VIII XRAY (AM) (FI) (NV) (PS) (TU) (WZ)
HELLO WORLD
`
	out, st, err := run(t, input)
	require.NoError(t, err)
	assert.Equal(t, "QVPQS OKOIL PUBKJ ZPISF XDW\n\nKOUTN QAXVA\n", out)
	assert.Equal(t, 3, st.Groups)
	assert.Equal(t, 3, st.Messages)
}

func TestProcess_EmptyInput(t *testing.T) {
	out, st, err := run(t, "")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, session.Stats{}, st)
}

func TestProcess_GroupSize(t *testing.T) {
	out, _, err := run(t, hiawatha, session.WithGroupSize(0))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "QVPQSOKOILPUBKJZPISFXDW\n"))
}

func TestProcess_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   error
		kind   enigma.Kind
		output string
	}{
		{
			name:  "message before setup",
			input: "HELLO\n",
			want:  session.ErrNoSetup,
			kind:  enigma.KindConfigFormat,
		},
		{
			name:   "symbol outside alphabet",
			input:  "* B Beta III IV I AXLE\nHELLO\nHELLO, WORLD\n",
			want:   machine.ErrMessageSymbol,
			kind:   enigma.KindMessageSymbol,
			output: "FHVGJ\n",
		},
		{
			name:  "bad setup line",
			input: "* B Beta III IV I AXLE BCDE FGHI\nHELLO\n",
			want:  setup.ErrTrailingSettings,
			kind:  enigma.KindSetting,
		},
		{
			name:  "bad assembly",
			input: "* Beta B III IV I AXLE\nHELLO\n",
			want:  machine.ErrReflectorPosition,
			kind:  enigma.KindRotorAssembly,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.input)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.kind, enigma.KindOf(err))
			assert.Contains(t, err.Error(), "line ")
			assert.Equal(t, tt.output, out)
		})
	}
}

func TestProcess_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := session.Process(ctx, newMachine(t), strings.NewReader(hiawatha), &out)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestProcess_Logs(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, _, err := run(t, hiawatha, session.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "setup applied")
	assert.Contains(t, logs.String(), "message converted")
	assert.Contains(t, logs.String(), "messages=3")
}

func TestGroup(t *testing.T) {
	tests := []struct {
		in   string
		size int
		want string
	}{
		{"", 5, ""},
		{"ABC", 5, "ABC"},
		{"ABCDE", 5, "ABCDE"},
		{"ABCDEF", 5, "ABCDE F"},
		{"ABCDEFGHIJ", 5, "ABCDE FGHIJ"},
		{"ABCDEFG", 3, "ABC DEF G"},
		{"ABCDEFG", 0, "ABCDEFG"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, session.Group(tt.in, tt.size), "Group(%q, %d)", tt.in, tt.size)
	}
}
