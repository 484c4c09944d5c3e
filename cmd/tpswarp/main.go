// SPDX-License-Identifier: MIT

// Command tpswarp fits thin-plate splines from control pair files and warps
// coordinates with them.
//
// Usage:
//
//	tpswarp warp   -pairs FILE [-points FILE|-]
//	tpswarp params -pairs FILE -frame x0,y0,x1,y1,x2,y2
//	tpswarp swap   -pairs FILE [-o FILE | -inplace]
//	tpswarp center -pairs FILE
//
// Environment (a .env file in the working directory is honored):
//
//	TPSWARP_PAIRS      default for -pairs
//	TPSWARP_LOG_LEVEL  debug, info, warn or error (default warn)
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/tpswarp/tps"
)

const (
	envPairs    = "TPSWARP_PAIRS"
	envLogLevel = "TPSWARP_LOG_LEVEL"
)

var errUsage = errors.New("usage: tpswarp <warp|params|swap|center> [flags]")

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "tpswarp: .env:", err)
	}
	tps.SetLogger(newLogger(os.Stderr, getEnv(envLogLevel, "warn")))

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "tpswarp:", err)
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// run dispatches one subcommand. It is main without the process exit.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "warp":
		return runWarp(rest, stdin, stdout)
	case "params":
		return runParams(rest, stdout)
	case "swap":
		return runSwap(rest, stdout)
	case "center":
		return runCenter(rest, stdout)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func newFlagSet(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	pairs := fs.String("pairs", getEnv(envPairs, ""), "control pair JSON file (env "+envPairs+")")
	return fs, pairs
}

func runWarp(args []string, stdin io.Reader, stdout io.Writer) error {
	fs, pairsPath := newFlagSet("warp")
	pointsPath := fs.String("points", "-", "query points JSON array of {x,y}; - reads stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := loadSpline(*pairsPath)
	if err != nil {
		return err
	}

	var r io.Reader = stdin
	if *pointsPath != "-" {
		f, err := os.Open(*pointsPath)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	var points []tps.Coordinate
	if err = json.NewDecoder(r).Decode(&points); err != nil {
		return fmt.Errorf("points: %w", err)
	}

	out, err := s.Warp(points)
	if err != nil {
		return err
	}
	return writeJSON(stdout, out)
}

func runParams(args []string, stdout io.Writer) error {
	fs, pairsPath := newFlagSet("params")
	frameArg := fs.String("frame", "", "top-left, top-right and bottom-left corners: x0,y0,x1,y1,x2,y2")
	if err := fs.Parse(args); err != nil {
		return err
	}
	frame, err := parseFrame(*frameArg)
	if err != nil {
		return err
	}
	s, err := loadSpline(*pairsPath)
	if err != nil {
		return err
	}
	p, err := s.RenderParams(frame)
	if err != nil {
		return err
	}
	return writeJSON(stdout, p)
}

func runSwap(args []string, stdout io.Writer) error {
	fs, pairsPath := newFlagSet("swap")
	outPath := fs.String("o", "", "output file (default <input>_swapped.json)")
	inplace := fs.Bool("inplace", false, "overwrite the input file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pairsPath == "" {
		return fmt.Errorf("swap: -pairs is required: %w", errUsage)
	}

	raw, err := os.ReadFile(*pairsPath)
	if err != nil {
		return err
	}
	swapped, err := swapDocument(raw)
	if err != nil {
		return fmt.Errorf("swap %s: %w", *pairsPath, err)
	}

	dest := *outPath
	switch {
	case *inplace:
		dest = *pairsPath
	case dest == "":
		dest = strings.TrimSuffix(*pairsPath, filepath.Ext(*pairsPath)) + "_swapped.json"
	}
	if err = writeFileAtomic(dest, swapped); err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, "wrote", dest)
	return err
}

func runCenter(args []string, stdout io.Writer) error {
	fs, pairsPath := newFlagSet("center")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := loadSpline(*pairsPath)
	if err != nil {
		return err
	}
	return writeJSON(stdout, struct {
		Center tps.Coordinate `json:"center"`
		M      int            `json:"m"`
	}{s.Center(), s.M()})
}

func loadSpline(path string) (*tps.Spline, error) {
	if path == "" {
		return nil, fmt.Errorf("-pairs or %s is required: %w", envPairs, errUsage)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pairs, err := tps.DecodePairs(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tps.Fit(pairs)
}

func parseFrame(s string) (tps.Frame, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return tps.Frame{}, fmt.Errorf("frame %q: want 6 comma-separated numbers: %w", s, errUsage)
	}
	v := make([]float64, 6)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return tps.Frame{}, fmt.Errorf("frame: %w", err)
		}
		v[i] = f
	}
	return tps.Frame{
		TopLeft:    tps.Coordinate{X: v[0], Y: v[1]},
		TopRight:   tps.Coordinate{X: v[2], Y: v[3]},
		BottomLeft: tps.Coordinate{X: v[4], Y: v[5]},
	}, nil
}

// swapDocument swaps real x/y in a pairs document and keeps its outer shape:
// arrays stay arrays and objects keep every field other than "pairs".
func swapDocument(raw []byte) ([]byte, error) {
	pairs, err := tps.DecodePairs(strings.NewReader(string(raw)))
	if err != nil {
		return nil, err
	}
	swapped := tps.SwapRealXY(pairs)

	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		return marshalIndent(swapped)
	}
	var doc map[string]json.RawMessage
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc["pairs"], err = json.Marshal(swapped); err != nil {
		return nil, err
	}
	return marshalIndent(doc)
}

func marshalIndent(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeFileAtomic writes through a temp file in the destination directory and
// renames it into place.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp_swap_*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
