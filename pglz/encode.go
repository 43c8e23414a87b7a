// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo compress.go (adapted);
// original_source/bench/pg_lzcompress_fibonacci_hash.c pglz_compress;
// original_source/bench/pg_lzcompress_skip_after_match.c (skip-after-match threshold)

package pglz

// resultMaxInt32Threshold mirrors INT_MAX/100 from the reference C, used
// only to pick which arithmetic order to use when computing resultMax
// (spec.md §4.4: "using 64-bit arithmetic if slen > INT_MAX/100").
const resultMaxInt32Threshold = maxInt / 100

// Encode compresses src into dst using strategy (nil means Default) and
// returns the number of bytes written. dst must have at least
// MaxOutputSize(len(src)) bytes of capacity; see spec.md
// §6 — this is a caller contract, not validated here.
//
// Encode fails (returning a non-nil error and an unspecified dst prefix)
// when: strategy.MatchSizeGood <= 0; len(src) is outside
// [MinInputSize, MaxInputSize]; the output would meet or exceed the
// ratio budget derived from MinCompRate; or no match was emitted within
// FirstSuccessBy bytes.
func Encode(src, dst []byte, strategy *Strategy) (int, error) {
	if strategy == nil {
		strategy = Default()
	}
	if strategy.MatchSizeGood <= 0 {
		return 0, ErrStrategyInvalid
	}

	slen := len(src)
	if slen < strategy.MinInputSize || slen > strategy.MaxInputSize {
		return 0, ErrInputSizeOutOfRange
	}

	goodMatchInit := clamp(strategy.MatchSizeGood, 17, maxMatchLen)
	goodDrop := clamp(strategy.MatchSizeDrop, 0, 100)
	needRate := clamp(strategy.MinCompRate, 0, 99)

	var resultMax int64
	if int64(slen) > resultMaxInt32Threshold {
		resultMax = int64(slen/100) * int64(100-needRate)
	} else {
		resultMax = int64(slen) * int64(100-needRate) / 100
	}

	st := acquireEncoderState()
	defer releaseEncoderState(st)
	st.hist.reset(slen, strategy.HashKind)

	em := newEmitter(dst)
	end := slen
	ip := 0
	foundMatch := false

	for ip+4 <= end {
		if int64(em.size()) >= resultMax {
			return 0, ErrCompressionIneffective
		}
		if !foundMatch && em.size() >= strategy.FirstSuccessBy {
			return 0, ErrCompressionIneffective
		}

		length, offset, found := findMatch(src, ip, end, &st.hist, goodMatchInit, goodDrop)
		if !found {
			em.literal(src[ip])
			st.hist.add(src, ip, end)
			ip++
			continue
		}

		em.tag(length, offset)
		foundMatch = true

		if strategy.SkipAfterMatch && length >= skipThreshold {
			addSkippingMatch(&st.hist, src, ip, length, end)
		} else {
			for i := range length {
				st.hist.add(src, ip+i, end)
			}
		}
		ip += length
	}

	for ip < end {
		if int64(em.size()) >= resultMax {
			return 0, ErrCompressionIneffective
		}
		em.literal(src[ip])
		st.hist.add(src, ip, end)
		ip++
	}

	out := em.finish()
	if int64(len(out)) >= resultMax {
		return 0, ErrCompressionIneffective
	}
	return len(out), nil
}

// addSkippingMatch adds only the leading and trailing skipThresholdWindow
// positions of a long match to history, per
// original_source/bench/pg_lzcompress_skip_after_match.c: the remaining
// mid-match positions are skipped for throughput, trading a small amount
// of ratio since fewer future candidates are indexed.
func addSkippingMatch(h *history, src []byte, ip, length, end int) {
	lead := skipThresholdWindow
	if lead > length {
		lead = length
	}
	for i := 0; i < lead; i++ {
		h.add(src, ip+i, end)
	}

	tailStart := length - skipThresholdWindow
	if tailStart < lead {
		tailStart = lead
	}
	for i := tailStart; i < length; i++ {
		h.add(src, ip+i, end)
	}
}
