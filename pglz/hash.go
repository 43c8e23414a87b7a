// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo sliding_window.go head2/head3 (adapted);
// original_source/bench/pg_lzcompress_fibonacci_hash.c pglz_hist_idx

package pglz

// fibonacciConst is Knuth's multiplicative hash constant (2654435761, the
// golden-ratio-derived 32-bit constant).
const fibonacciConst = 2654435761

// hashIndex maps the 4-byte window starting at s (within buf, ending at
// most at end) to a bucket in [0, mask]. If fewer than 4 bytes remain
// before end, it degrades to s[0]&mask — matches are already impossible
// that close to the tail.
//
// The 4-byte read is assembled byte-by-byte rather than cast through a
// native integer load, so the hash is identical on big- and
// little-endian hosts (spec.md §4.1, §9).
func hashIndex(buf []byte, s, end int, mask uint32, kind HashKind) uint32 {
	if end-s < 4 {
		return uint32(buf[s]) & mask
	}

	b0 := uint32(buf[s])
	b1 := uint32(buf[s+1])
	b2 := uint32(buf[s+2])
	b3 := uint32(buf[s+3])

	switch kind {
	case HashPolynomial:
		key := (b0 << 6) ^ (b1 << 4) ^ (b2 << 2) ^ b3
		return key & mask
	default: // HashFibonacci
		h := b0 | b1<<8 | b2<<16 | b3<<24
		return ((h * fibonacciConst) >> 19) & mask
	}
}
