// SPDX-License-Identifier: MIT

// Command enigma runs a rotor cipher machine over a file of message groups.
//
//	enigma [flags] CONFIG [INPUT [OUTPUT]]
//
// CONFIG is a machine definition (text, or YAML when it ends in .yaml/.yml)
// or "naval-a" for the built-in definition. INPUT defaults to standard input
// and OUTPUT to standard output.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/enigma/config"
	"github.com/katalvlaran/enigma/machine"
	"github.com/katalvlaran/enigma/session"
)

var version = "0.1.0"

// flags holds the parsed command-line options.
type flags struct {
	verbose     bool
	tracePath   bool
	color       string
	logLevel    string
	printConfig string
	groupSize   int
}

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "enigma [flags] CONFIG [INPUT [OUTPUT]]",
		Short: "Encrypt and decrypt messages with a rotor cipher machine",
		Long: `Enigma simulates an electromechanical rotor cipher machine.

CONFIG describes the alphabet and the available rotors; use "naval-a" for
the built-in four-rotor naval machine. INPUT holds message groups, each
opened by a setup line:

  * B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)
  FROM HIS SHOULDER HIAWATHA

Converted messages are written in blocks of five. Encryption and
decryption are the same operation.`,
		Version:       version,
		Args:          argCount,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args, stdin, stdout, stderr)
		},
	}

	fl := cmd.Flags()
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "trace every converted symbol on stderr")
	fl.BoolVar(&f.tracePath, "trace-path", false, "include the rotor-by-rotor path in traces")
	fl.StringVar(&f.color, "color", colorAuto, "colour traces: auto, always or never")
	fl.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fl.StringVar(&f.printConfig, "print-config", "", "print CONFIG as text or yaml and exit")
	fl.IntVar(&f.groupSize, "group", session.DefaultGroupSize, "symbols per output block, 0 for none")

	return cmd
}

func argCount(_ *cobra.Command, args []string) error {
	if len(args) < 1 || len(args) > 3 {
		return fmt.Errorf("only 1, 2, or 3 command-line arguments allowed, got %d", len(args))
	}
	return nil
}

func run(cmd *cobra.Command, f flags, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q", f.logLevel)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	def, err := config.Load(args[0])
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded",
		slog.String("config", args[0]),
		slog.Int("rotors", def.Rotors),
		slog.Int("pawls", def.Pawls),
		slog.Int("wheels", len(def.Wheels)))

	switch f.printConfig {
	case "":
	case "text":
		return def.WriteText(stdout)
	case "yaml":
		return def.WriteYAML(stdout)
	default:
		return fmt.Errorf("invalid --print-config %q: want text or yaml", f.printConfig)
	}

	var opts []machine.Option
	if f.verbose {
		useColor, err := colorEnabled(f.color, stderr)
		if err != nil {
			return err
		}
		tr := newTraceRenderer(stderr, useColor, f.tracePath)
		opts = append(opts, machine.WithTracer(tr.Trace))
	}
	m, err := def.Build(opts...)
	if err != nil {
		return err
	}

	in := stdin
	if len(args) > 1 {
		file, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("could not open %s", args[1])
		}
		defer file.Close()
		in = file
	}

	out := stdout
	var outFile *os.File
	if len(args) > 2 {
		outFile, err = os.Create(args[2])
		if err != nil {
			return fmt.Errorf("could not open %s", args[2])
		}
		out = outFile
	}

	_, err = session.Process(cmd.Context(), m, in, out,
		session.WithLogger(logger),
		session.WithGroupSize(f.groupSize))
	if outFile != nil {
		if cerr := outFile.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", args[2], cerr)
		}
	}
	return err
}
