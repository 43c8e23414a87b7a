// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted); original_source/bench/pg_lzcompress_fibonacci_hash.c

package pglz

import "math"

// HashKind selects the hash function the indexer and match finder use.
// It is a quality-of-compression knob only: the wire format never encodes
// which hash produced a given stream, and a compliant decoder needs no
// knowledge of it (spec.md §4.1).
type HashKind int

const (
	// HashFibonacci multiplies the 4-byte window by Knuth's constant and
	// takes the upper bits. This is the default: it spreads bits far
	// better than HashPolynomial and is endianness-independent.
	HashFibonacci HashKind = iota
	// HashPolynomial is the historical ((s0<<6)^(s1<<4)^(s2<<2)^s3) hash.
	// Kept as an alternate for differential testing and the collision
	// meter; never the default for new callers.
	HashPolynomial
)

// Strategy is an immutable configuration for Encode. The zero value is not
// valid; use Default, Always, or a literal built from one of those.
type Strategy struct {
	// MinInputSize and MaxInputSize bound len(src); out of range fails
	// with ErrInputSizeOutOfRange.
	MinInputSize int
	MaxInputSize int

	// MinCompRate is the percent savings demanded (0..=99). Encode fails
	// unless output < len(src)*(100-MinCompRate)/100.
	MinCompRate int

	// FirstSuccessBy: if no match has been emitted by this many output
	// bytes, Encode aborts.
	FirstSuccessBy int

	// MatchSizeGood is the chain-walk early-exit threshold, clamped to
	// [17, 273].
	MatchSizeGood int
	// MatchSizeDrop is the percent by which the good-match threshold
	// decays per additional candidate visited (0..=100).
	MatchSizeDrop int

	// SkipAfterMatch, when true, thins history additions for long matches:
	// matches shorter than skipThreshold still add every position (so
	// short-match ratio is unaffected); matches at or above the threshold
	// add only the first and last skipThresholdWindow positions and jump
	// the cursor forward by the match length. See
	// original_source/bench/pg_lzcompress_skip_after_match.c.
	SkipAfterMatch bool

	// HashKind selects the hash function the indexer and match finder use.
	HashKind HashKind
}

// skipThreshold is PGLZ_SKIP_THRESHOLD from
// original_source/bench/pg_lzcompress_skip_after_match.c: matches shorter
// than this always add every byte to history regardless of SkipAfterMatch.
const skipThreshold = 8

// skipThresholdWindow is how many leading/trailing positions of a skipped
// match still get added to history (4 + 4, per the original variant).
const skipThresholdWindow = 4

// maxInt is used in place of C's INT_MAX for MaxInputSize defaults.
const maxInt = math.MaxInt32

// Default returns the canonical strategy used for normal in-row
// compression: {32, maxInt, 25, 1024, 128, 10, false, HashFibonacci}.
func Default() *Strategy {
	return &Strategy{
		MinInputSize:   32,
		MaxInputSize:   maxInt,
		MinCompRate:    25,
		FirstSuccessBy: 1024,
		MatchSizeGood:  128,
		MatchSizeDrop:  10,
		SkipAfterMatch: false,
		HashKind:       HashFibonacci,
	}
}

// Always returns a strategy with no input-size floor, no ratio demand and
// no early bailout: {0, maxInt, 0, maxInt, 128, 6, false, HashFibonacci}.
// Encode still fails with ErrCompressionIneffective unless the output is
// smaller than the input.
func Always() *Strategy {
	return &Strategy{
		MinInputSize:   0,
		MaxInputSize:   maxInt,
		MinCompRate:    0,
		FirstSuccessBy: maxInt,
		MatchSizeGood:  128,
		MatchSizeDrop:  6,
		SkipAfterMatch: false,
		HashKind:       HashFibonacci,
	}
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
