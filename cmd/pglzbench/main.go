// SPDX-License-Identifier: GPL-2.0-only
// Source: original_source/bench/bench_pglz.c, bench_hash_speed.c, bench_hash_speed2.c,
// bench_skip_threshold.c (adapted)

// Command pglzbench measures pglz Encode/Decode throughput across the
// built-in corpus for one hash kind and one skip-after-match setting per
// run, chosen by the --hash and --skip-after-match flags.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/nikolays-pglz/pglz-accel/internal/corpus"
	"github.com/nikolays-pglz/pglz-accel/pglz"
)

func main() {
	var (
		iterations = pflag.IntP("iterations", "n", 20, "iterations per corpus entry")
		hashKind   = pflag.String("hash", "fibonacci", "hash function: fibonacci or polynomial")
		skip       = pflag.Bool("skip-after-match", false, "enable SkipAfterMatch")
	)
	pflag.Parse()

	kind := pglz.HashFibonacci
	if *hashKind == "polynomial" {
		kind = pglz.HashPolynomial
	}

	strategy := pglz.Always()
	strategy.HashKind = kind
	strategy.SkipAfterMatch = *skip

	for _, entry := range corpus.Builtin() {
		if len(entry.Data) == 0 {
			continue
		}
		runEntry(entry, strategy, *iterations)
	}
}

func runEntry(entry corpus.Entry, strategy *pglz.Strategy, iterations int) {
	out := make([]byte, pglz.MaxOutputSize(len(entry.Data)))

	start := time.Now()
	var n int
	var err error
	for i := 0; i < iterations; i++ {
		n, err = pglz.Encode(entry.Data, out, strategy)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: encode failed: %v\n", entry.Name, err)
			return
		}
	}
	encodeElapsed := time.Since(start)

	compressed := append([]byte(nil), out[:n]...)
	dst := make([]byte, len(entry.Data))

	start = time.Now()
	for i := 0; i < iterations; i++ {
		if _, err := pglz.Decode(compressed, dst, len(entry.Data), true); err != nil {
			fmt.Fprintf(os.Stderr, "%s: decode failed: %v\n", entry.Name, err)
			return
		}
	}
	decodeElapsed := time.Since(start)

	encodeRate := humanize.Bytes(uint64(float64(len(entry.Data)*iterations) / encodeElapsed.Seconds()))
	decodeRate := humanize.Bytes(uint64(float64(len(entry.Data)*iterations) / decodeElapsed.Seconds()))

	fmt.Printf("%-24s raw=%-10s ratio=%.3f encode=%s/s decode=%s/s\n",
		entry.Name,
		humanize.Bytes(uint64(len(entry.Data))),
		float64(n)/float64(len(entry.Data)),
		encodeRate, decodeRate,
	)
}
