// SPDX-License-Identifier: GPL-2.0-only
// Source: original_source/bench/pg_lzcompress_fibonacci_hash.c pglz_maximum_compressed_size (adapted)

package pglz

// MaxOutputSize returns a destination buffer size guaranteed to exceed
// the maximum number of bytes Encode can ever write for an input of
// length n (spec.md §6's PGLZ_MAX_OUTPUT). Encode's result_max < slen
// contract (spec.md §4.4) means a successful encode is always smaller
// than n, but Encode may still write a partial, failed attempt's worth
// of bytes before detecting budget overrun; the +4 slack covers that
// plus one worst-case 3-byte tag that starts right at the boundary.
func MaxOutputSize(n int) int {
	return n + 4
}

// MaxCompressedSize bounds the worst-case compressed size of a
// rawsize-byte prefix, given an already-known upper bound
// totalCompressedSize for the whole buffer (spec.md §4.6). It returns
// min(totalCompressedSize, ceil(rawsize*9/8)+2); the +2 slack covers a
// nearly-all-literal prefix that ends in a 2- or 3-byte tag needing up
// to two bytes beyond the naive literal-only estimate.
func MaxCompressedSize(rawsize, totalCompressedSize int) int {
	estimate := (int64(rawsize)*9+7)/8 + 2
	if estimate < int64(totalCompressedSize) {
		return int(estimate)
	}
	return totalCompressedSize
}
