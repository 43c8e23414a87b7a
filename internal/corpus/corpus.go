// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo benchmark_test.go, compress_test.go (input-set pattern, adapted)

// Package corpus generates and loads the named byte buffers the cmd/
// drivers exercise the pglz codec against: synthetic built-ins for quick
// smoke runs, and a JSONC manifest (testdata/corpus.jsonc) for the
// regression driver.
package corpus

import (
	"bytes"
	"fmt"
	"math/rand"
)

// Entry is one named input buffer.
type Entry struct {
	Name string
	Data []byte
}

// Builtin returns the synthetic corpus that pglzbench, pglzcollisions and
// pglzcompat run over, and that pglzfuzzreplay uses when no seed
// directory is given (pglzregress reads a manifest instead): a spread of
// pattern shapes mirroring
// original_source/bench/bench_pglz.c's own fixed test buffers.
func Builtin() []Entry {
	return []Entry{
		{Name: "empty", Data: nil},
		{Name: "short-text", Data: []byte("the quick brown fox jumps over the lazy dog")},
		{Name: "pattern-16-x4096", Data: bytes.Repeat([]byte("ABCDEFGHIJKLMNOP"), 4096)},
		{Name: "zeros-4096", Data: bytes.Repeat([]byte{0x00}, 4096)},
		{Name: "byte-cycle-12000", Data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{Name: "random-64k-seed1", Data: Random(1, 1<<16)},
		{Name: "random-1mb-seed7", Data: Random(7, 1<<20)},
	}
}

// Random returns n deterministic pseudo-random bytes for the given seed.
// Used in place of actual entropy so driver runs are reproducible.
func Random(seed int64, n int) []byte {
	r := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	r.Read(b)
	return b
}

// Repeat returns pattern repeated until it reaches at least n bytes,
// truncated to exactly n.
func Repeat(pattern []byte, n int) []byte {
	if len(pattern) == 0 {
		return make([]byte, n)
	}
	out := bytes.Repeat(pattern, n/len(pattern)+1)
	return out[:n]
}

// String formats an Entry for human-readable driver output.
func (e Entry) String() string {
	return fmt.Sprintf("%s (%d bytes)", e.Name, len(e.Data))
}
