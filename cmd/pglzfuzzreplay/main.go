// SPDX-License-Identifier: GPL-2.0-only
// Source: original_source/tests/fuzz_pglz.c, bench/test_asan_roundtrip.c
// (adapted — Go's native testing.F fuzzer in pglz/fuzz_test.go is the
// actual fuzzing engine; this driver replays a saved corpus outside
// `go test -fuzz` and persists crash inputs as standalone artifacts,
// the way the C harness dumped a reproducer file on an ASAN abort)
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/natefinch/atomic"
	"github.com/spf13/pflag"

	"github.com/nikolays-pglz/pglz-accel/internal/corpus"
	"github.com/nikolays-pglz/pglz-accel/pglz"
)

func main() {
	var (
		seedDir  = pflag.StringP("seed-dir", "s", "", "directory of raw seed files to replay (default: built-in corpus)")
		crashDir = pflag.StringP("crash-dir", "c", "crashes", "directory to write crash artifacts into")
		strategy = pflag.StringP("strategy", "", "always", "strategy: default or always")
	)
	pflag.Parse()

	strat := pglz.Always()
	if *strategy == "default" {
		strat = pglz.Default()
	}

	seeds, err := loadSeeds(*seedDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pglzfuzzreplay: %v\n", err)
		os.Exit(2)
	}

	crashes := 0
	for _, seed := range seeds {
		if err := replay(seed, strat, *crashDir); err != nil {
			crashes++
			fmt.Fprintf(os.Stderr, "pglzfuzzreplay: %s: %v\n", seed.Name, err)
		} else {
			fmt.Printf("ok   %s (%d bytes)\n", seed.Name, len(seed.Data))
		}
	}

	if crashes > 0 {
		fmt.Fprintf(os.Stderr, "pglzfuzzreplay: %d/%d seeds crashed\n", crashes, len(seeds))
		os.Exit(1)
	}
}

func loadSeeds(dir string) ([]corpus.Entry, error) {
	if dir == "" {
		return corpus.Builtin(), nil
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading seed dir: %w", err)
	}

	var seeds []corpus.Entry
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, f.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading seed %s: %w", f.Name(), err)
		}
		seeds = append(seeds, corpus.Entry{Name: f.Name(), Data: data})
	}
	return seeds, nil
}

// replay exercises one seed through an encode/decode round trip,
// panic-recovering the way the original ASAN harness caught a crash:
// a recovered panic here is dumped as a crash artifact instead of
// taking the whole driver down.
func replay(seed corpus.Entry, strat *pglz.Strategy, crashDir string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			dumpCrash(seed, strat, r, crashDir)
		}
	}()

	out := make([]byte, pglz.MaxOutputSize(len(seed.Data)))
	n, encErr := pglz.Encode(seed.Data, out, strat)
	if encErr != nil {
		// Ineffective compression and out-of-range inputs are expected
		// rejections, not crashes.
		return nil
	}

	roundTrip := make([]byte, len(seed.Data))
	dn, decErr := pglz.Decode(out[:n], roundTrip, len(seed.Data), true)
	if decErr != nil {
		dumpCrash(seed, strat, decErr, crashDir)
		return fmt.Errorf("decode: %w", decErr)
	}
	if dn != len(seed.Data) || string(roundTrip) != string(seed.Data) {
		dumpCrash(seed, strat, "round trip mismatch", crashDir)
		return fmt.Errorf("round trip produced %d bytes, want %d", dn, len(seed.Data))
	}
	return nil
}

func dumpCrash(seed corpus.Entry, strat *pglz.Strategy, cause any, crashDir string) {
	if err := os.MkdirAll(crashDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "pglzfuzzreplay: mkdir crash dir: %v\n", err)
		return
	}

	id := uuid.New()
	report := spew.Sdump(struct {
		Seed     string
		Strategy *pglz.Strategy
		Cause    any
		Input    []byte
	}{seed.Name, strat, cause, seed.Data})

	path := filepath.Join(crashDir, fmt.Sprintf("crash-%s.txt", id))
	if err := atomic.WriteFile(path, strings.NewReader(report)); err != nil {
		fmt.Fprintf(os.Stderr, "pglzfuzzreplay: writing crash artifact: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "pglzfuzzreplay: crash artifact written to %s\n", path)
}
