// SPDX-License-Identifier: GPL-2.0-only
// Source: original_source/tests/test_pglz_regression.c (adapted)

// Command pglzregress runs pglz.Encode against a named JSONC corpus
// manifest and fails any entry whose compressed size regresses past
// its recorded upper bound, or whose round trip doesn't reproduce the
// original bytes.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/natefinch/atomic"
	"github.com/spf13/pflag"

	"github.com/nikolays-pglz/pglz-accel/internal/corpus"
	"github.com/nikolays-pglz/pglz-accel/pglz"
)

func main() {
	var (
		manifestPath = pflag.StringP("manifest", "m", "testdata/corpus.jsonc", "JSONC corpus manifest")
		reportPath   = pflag.StringP("report", "r", "", "write a report file atomically (optional)")
	)
	pflag.Parse()

	runID := uuid.New()

	entries, err := corpus.LoadManifest(*manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pglzregress: %v\n", err)
		os.Exit(2)
	}

	var report bytes.Buffer
	fmt.Fprintf(&report, "pglzregress run %s against %s\n", runID, *manifestPath)

	failures := 0
	for _, entry := range entries {
		ok, msg := checkEntry(entry)
		fmt.Fprintln(&report, msg)
		if !ok {
			failures++
		}
	}

	fmt.Print(report.String())

	if *reportPath != "" {
		if err := atomic.WriteFile(*reportPath, &report); err != nil {
			fmt.Fprintf(os.Stderr, "pglzregress: writing report: %v\n", err)
		}
	}

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "pglzregress: %d/%d entries failed\n", failures, len(entries))
		os.Exit(1)
	}
}

func checkEntry(entry corpus.ManifestEntry) (bool, string) {
	data, err := entry.Materialize()
	if err != nil {
		return false, fmt.Sprintf("FAIL %-24s materialize: %v", entry.Name, err)
	}

	strategy := pglz.Default()
	if entry.Strategy == "always" {
		strategy = pglz.Always()
	}

	out := make([]byte, pglz.MaxOutputSize(len(data)))
	n, err := pglz.Encode(data, out, strategy)
	if err != nil {
		if errors.Is(err, pglz.ErrCompressionIneffective) && entry.ExpectedMaxSize == 0 {
			return true, fmt.Sprintf("PASS %-24s (ineffective, as expected)", entry.Name)
		}
		return false, fmt.Sprintf("FAIL %-24s encode: %v", entry.Name, err)
	}

	if entry.ExpectedMaxSize > 0 && n > entry.ExpectedMaxSize {
		return false, fmt.Sprintf("FAIL %-24s compressed size %d exceeds recorded bound %d",
			entry.Name, n, entry.ExpectedMaxSize)
	}

	roundTrip := make([]byte, len(data))
	if _, err := pglz.Decode(out[:n], roundTrip, len(data), true); err != nil {
		return false, fmt.Sprintf("FAIL %-24s decode: %v", entry.Name, err)
	}
	if diff := cmp.Diff(data, roundTrip); diff != "" {
		return false, fmt.Sprintf("FAIL %-24s round trip mismatch:\n%s", entry.Name, diff)
	}

	return true, fmt.Sprintf("PASS %-24s %d -> %d bytes", entry.Name, len(data), n)
}
