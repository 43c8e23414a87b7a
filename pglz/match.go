// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo match.go, sliding_window.go searchBestMatch (adapted);
// original_source/bench/pg_lzcompress_fibonacci_hash.c pglz_find_match

package pglz

// maxChainWalk is PGLZ_MAX_CHAIN from spec.md §4.3 step 2e: defense in
// depth against pathological collisions (e.g. an all-identical-byte
// input funneling every window into one bucket).
const maxChainWalk = 256

// maxMatchLen is the largest length a single back-reference tag can
// encode (spec.md §3: length range 3..=273).
const maxMatchLen = 273

// minMatchLen is the shortest length Encode will ever emit as a
// back-reference.
const minMatchLen = 3

// maxOffset is the largest offset a back-reference tag can encode
// (spec.md §3: offset range 1..=4095).
const maxOffset = 4095

// findMatch walks the hash chain for the 4-byte window at buf[ip:] and
// returns the longest match among history positions within maxOffset,
// applying the good-match decay early exit. found is false if no
// candidate reached minMatchLen.
//
// Precondition (checked by the caller, spec.md §4.3): end-ip >= 4.
func findMatch(buf []byte, ip, end int, h *history, goodMatch, goodDrop int) (length, offset int, found bool) {
	bucket := hashIndex(buf, ip, end, h.mask, h.kind)
	node := h.headOf(bucket)

	bestLen := 0
	bestOff := 0
	chainCount := 0

	for node != 0 {
		e := &h.entries[node]
		hp := int(e.pos)
		off := ip - hp
		if off > maxOffset {
			break
		}

		if buf[ip] == buf[hp] && buf[ip+1] == buf[hp+1] && buf[ip+2] == buf[hp+2] && buf[ip+3] == buf[hp+3] {
			maxExt := end - (ip + 4)
			if maxExt > maxMatchLen-4 {
				maxExt = maxMatchLen - 4
			}

			thisLen := 4
			for thisLen-4 < maxExt && buf[ip+thisLen] == buf[hp+thisLen] {
				thisLen++
			}

			if thisLen > bestLen {
				bestLen = thisLen
				bestOff = off
			}
		}

		node = e.next
		chainCount++
		if chainCount >= maxChainWalk {
			break
		}

		if node != 0 {
			if bestLen >= goodMatch {
				break
			}
			goodMatch -= (goodMatch * goodDrop) / 100
		}
	}

	if bestLen >= minMatchLen {
		return bestLen, bestOff, true
	}
	return 0, 0, false
}
