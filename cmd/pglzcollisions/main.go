// SPDX-License-Identifier: GPL-2.0-only
// Source: original_source/bench/measure_collisions.c (adapted)

// Command pglzcollisions walks the hash-chain population pglz builds
// over a corpus entry and reports bucket load and chain-length stats,
// for both hash kinds side by side. It never participates in the wire
// format; xxhash here is strictly a reference distribution to compare
// pglz's own hash against.
package main

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/nikolays-pglz/pglz-accel/internal/corpus"
	"github.com/nikolays-pglz/pglz-accel/pglz"
)

func main() {
	var name = pflag.StringP("entry", "e", "", "corpus entry name (default: all)")
	pflag.Parse()

	for _, entry := range corpus.Builtin() {
		if *name != "" && entry.Name != *name {
			continue
		}
		if len(entry.Data) < 4 {
			continue
		}
		report(entry)
	}
}

// report mirrors what measure_collisions.c printed: per-bucket
// occupancy counts, used to derive max chain length and a reference
// xxhash-based collision count for comparison.
func report(entry corpus.Entry) {
	for _, kind := range []pglz.HashKind{pglz.HashFibonacci, pglz.HashPolynomial} {
		counts := bucketCounts(entry.Data, kind)
		maxChain, total, nonEmpty := summarize(counts)

		refCollisions := referenceCollisions(entry.Data)

		fmt.Printf("%-20s hash=%-10s positions=%-8s buckets-used=%d max-chain=%d xxhash-collisions=%d\n",
			entry.Name, hashName(kind), humanize.Comma(int64(total)), nonEmpty, maxChain, refCollisions)
	}
}

func bucketCounts(data []byte, kind pglz.HashKind) map[uint32]int {
	counts := make(map[uint32]int)
	mask := uint32(pglz.HashTableSizeFor(len(data)) - 1)
	for i := 0; i+4 <= len(data); i++ {
		b := pglz.HashIndexFor(data, i, len(data), mask, kind)
		counts[b]++
	}
	return counts
}

func summarize(counts map[uint32]int) (maxChain, total, nonEmpty int) {
	for _, c := range counts {
		total += c
		nonEmpty++
		if c > maxChain {
			maxChain = c
		}
	}
	return
}

// referenceCollisions counts how many 4-byte windows share an xxhash64
// value truncated to the same bucket space pglz would use, as an
// independent cross-check that pglz's own hash isn't pathologically
// worse than a well-distributed general-purpose hash on this input.
func referenceCollisions(data []byte) int {
	mask := uint64(pglz.HashTableSizeFor(len(data)) - 1)
	counts := make(map[uint64]int)
	for i := 0; i+4 <= len(data); i++ {
		h := xxhash.Sum64(data[i : i+4])
		counts[h&mask]++
	}
	collisions := 0
	keys := make([]uint64, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		if counts[k] > 1 {
			collisions += counts[k] - 1
		}
	}
	return collisions
}

func hashName(kind pglz.HashKind) string {
	if kind == pglz.HashPolynomial {
		return "polynomial"
	}
	return "fibonacci"
}
