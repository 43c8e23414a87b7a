// SPDX-License-Identifier: GPL-2.0-only
// Source: original_source/tests/test_cross_version.c,
// bench/test_bitidentical.c (adapted)

// Command pglzcompat checks that choices which must never affect the
// wire format — which HashKind found a match, whether SkipAfterMatch
// was set — really don't: it encodes each corpus entry under every
// combination and diffs the outputs against the first one produced.
//
// A controlled, expected difference (HashKind changing WHICH matches
// get found, not just how fast) is reported as an informational diff
// rather than a failure; an encode error (including an input that does
// not compress under Always) or a decode round-trip break fails the entry
// and makes the command exit with status 1.
package main

import (
	"fmt"
	"os"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"

	"github.com/nikolays-pglz/pglz-accel/internal/corpus"
	"github.com/nikolays-pglz/pglz-accel/pglz"
)

type variant struct {
	name           string
	hashKind       pglz.HashKind
	skipAfterMatch bool
}

var variants = []variant{
	{"fibonacci", pglz.HashFibonacci, false},
	{"fibonacci+skip", pglz.HashFibonacci, true},
	{"polynomial", pglz.HashPolynomial, false},
	{"polynomial+skip", pglz.HashPolynomial, true},
}

func main() {
	var name = pflag.StringP("entry", "e", "", "corpus entry name (default: all)")
	pflag.Parse()

	exitCode := 0
	for _, entry := range corpus.Builtin() {
		if *name != "" && entry.Name != *name {
			continue
		}
		if !checkEntry(entry) {
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func checkEntry(entry corpus.Entry) bool {
	ok := true
	var baseline []byte

	for i, v := range variants {
		strategy := pglz.Always()
		strategy.HashKind = v.hashKind
		strategy.SkipAfterMatch = v.skipAfterMatch

		out := make([]byte, pglz.MaxOutputSize(len(entry.Data)))
		n, err := pglz.Encode(entry.Data, out, strategy)
		if err != nil {
			fmt.Printf("%-20s %-16s encode error: %v\n", entry.Name, v.name, err)
			ok = false
			continue
		}
		out = out[:n]

		roundTrip := make([]byte, len(entry.Data))
		if _, err := pglz.Decode(out, roundTrip, len(entry.Data), true); err != nil {
			fmt.Printf("%-20s %-16s FATAL decode error: %v\n", entry.Name, v.name, err)
			ok = false
			continue
		}
		if diff := cmp.Diff(entry.Data, roundTrip); diff != "" {
			fmt.Printf("%-20s %-16s FATAL round trip mismatch:\n%s\n", entry.Name, v.name, diff)
			ok = false
			continue
		}

		if i == 0 {
			baseline = out
			continue
		}
		if diff := cmp.Diff(baseline, out); diff != "" {
			fmt.Printf("%-20s %-16s differs from %s (expected when hash/skip changes which matches are found): %d vs %d bytes\n",
				entry.Name, v.name, variants[0].name, len(baseline), len(out))
		}
	}

	if ok {
		fmt.Printf("%-20s all variants round-trip correctly\n", entry.Name)
	}
	return ok
}
