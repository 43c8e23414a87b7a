// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

/*
Package pglz implements the PostgreSQL in-row "pglz" compressor: a
single-threaded LZ77 variant with a frozen 2/3-byte back-reference tag
format and a history-ring match finder.

The wire format has no trailer and no length prefix — the caller supplies
the decompressed length out of band, the way pglz is embedded in a
TOAST-style value header.

# Encode

Strategy may be nil (uses Default). Strategy controls input-size bounds,
the minimum compression ratio demanded, the early-bailout threshold, and
the match-finder's aggressiveness:

	out := make([]byte, pglz.MaxOutputSize(len(src)))
	n, err := pglz.Encode(src, out, pglz.Default())
	out = out[:n]

Always drops the input-size floor, the ratio demand and the early bailout.
Encode still fails with ErrCompressionIneffective when the output would not
be smaller than the input (empty, tiny or incompressible inputs):

	n, err := pglz.Encode(src, out, pglz.Always())

# Decode

declaredRawSize is required — the decoder has no length prefix to read it
from:

	out := make([]byte, declaredRawSize)
	n, err := pglz.Decode(compressed, out, declaredRawSize, true)
	out = out[:n]

Strict mode (the fourth argument) requires the decoder to consume all of
src and fill all of out; pass false to extract a partial prefix.
*/
package pglz
