// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

package pglz

import "errors"

// Sentinel errors surfaced at the package boundary, covering three of
// spec.md §7's four error categories: configuration, ineffective
// compression, and decoder-corrupt-input. The fourth category,
// caller-contract-violation (an undersized destination buffer), is
// explicitly debug-only per §7 — detectable by a sanitizer, not at this
// interface. Encode does not check the capacity of dst. Decode reports a
// back-reference that would run past len(dst) as ErrOutputOverrun, and a
// literal written past len(dst) panics via normal slice-bounds checking.
// Callers that need to distinguish the wired categories use errors.Is.
var (
	// ErrStrategyInvalid is returned when strategy.MatchSizeGood <= 0.
	ErrStrategyInvalid = errors.New("pglz: strategy.MatchSizeGood must be positive")
	// ErrInputSizeOutOfRange is returned when len(src) falls outside
	// [strategy.MinInputSize, strategy.MaxInputSize].
	ErrInputSizeOutOfRange = errors.New("pglz: input size outside strategy bounds")
	// ErrCompressionIneffective is returned when the encoder cannot meet
	// strategy.MinCompRate, or no match was found before FirstSuccessBy bytes.
	ErrCompressionIneffective = errors.New("pglz: compression would not be effective")

	// ErrInputOverrun is returned when the decoder would read past src.
	ErrInputOverrun = errors.New("pglz: decoder input overrun")
	// ErrOutputOverrun is returned when the decoder would write past dst.
	ErrOutputOverrun = errors.New("pglz: decoder output overrun")
	// ErrBadOffset is returned when a back-reference tag's offset is zero or
	// points before the start of the output produced so far.
	ErrBadOffset = errors.New("pglz: back-reference offset invalid")
	// ErrIncomplete is returned in strict mode when decoding ends without
	// consuming all of src and filling all of dst.
	ErrIncomplete = errors.New("pglz: decoded output incomplete")
)
