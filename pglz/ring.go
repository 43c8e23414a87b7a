// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo sliding_window.go (adapted);
// original_source/bench/pg_lzcompress_fibonacci_hash.c pglz_hist_add

package pglz

// historySize is H from spec.md §3: the fixed-capacity pool of position
// records. Entries are stored at indices [1, historySize]; index 0 is the
// sentinel "no entry" (mirrors original_source's hist_entries[0]).
const historySize = 4096

// maxHashSize is the largest hash table spec.md §3 ever selects.
const maxHashSize = 8192

// histEntry is one history-ring slot: the position it records, the bucket
// it currently occupies, and the link to the next entry in that bucket's
// chain.
type histEntry struct {
	pos    int32
	hindex uint32
	next   uint16 // 0 == end of chain
}

// history is the bounded ring of position records threaded through a
// power-of-two hash table. It is per-Encode-call scratch: reset() must be
// called before reuse (see pool.go).
type history struct {
	entries  [historySize + 1]histEntry
	head     [maxHashSize]uint16
	nextSlot uint16 // next slot to write (recycle target once wrapped)
	wrapped  bool   // true once every slot has held a real entry at least once
	hashsz   int
	mask     uint32
	kind     HashKind
}

// hashTableSize picks hashsz from the input length per spec.md §3's table.
func hashTableSize(slen int) int {
	switch {
	case slen < 128:
		return 512
	case slen < 256:
		return 1024
	case slen < 512:
		return 2048
	case slen < 1024:
		return 4096
	default:
		return 8192
	}
}

// reset initializes the ring and hash table for a new Encode call. It must
// not leak state from a prior call (spec.md §3 "Lifecycle").
func (h *history) reset(slen int, kind HashKind) {
	h.hashsz = hashTableSize(slen)
	h.mask = uint32(h.hashsz - 1)
	h.kind = kind
	h.nextSlot = 1
	h.wrapped = false

	for i := range h.head[:h.hashsz] {
		h.head[i] = 0
	}
	for i := range h.entries {
		h.entries[i] = histEntry{}
	}
}

// headOf returns the index of the first entry in bucket, or 0 ("no
// entry") if the bucket is empty.
func (h *history) headOf(bucket uint32) uint16 {
	return h.head[bucket]
}

// add records position s (computing its bucket from buf[s:end]) and links
// it at the head of its bucket's chain, recycling the oldest slot in FIFO
// order once the ring has wrapped.
//
// Invariant (spec.md §4.2): once wrapped, every recycle MUST unlink the
// victim slot from whatever bucket it currently occupies by scanning that
// bucket's chain to completion — a bounded scan would leave stale links
// into other buckets and corrupt them.
func (h *history) add(buf []byte, s, end int) {
	bucket := hashIndex(buf, s, end, h.mask, h.kind)
	slot := h.nextSlot

	if h.wrapped {
		h.unlink(slot)
	}

	e := &h.entries[slot]
	e.pos = int32(s)
	e.hindex = bucket
	e.next = h.head[bucket]
	h.head[bucket] = slot

	h.nextSlot++
	if int(h.nextSlot) > historySize {
		h.nextSlot = 1
		h.wrapped = true
	}
}

// unlink splices slot out of the bucket chain it currently occupies. The
// scan is unbounded by design — see add's doc comment.
func (h *history) unlink(slot uint16) {
	victim := &h.entries[slot]
	bucket := victim.hindex

	if h.head[bucket] == slot {
		h.head[bucket] = victim.next
		return
	}

	for cur := h.head[bucket]; cur != 0; {
		node := &h.entries[cur]
		if node.next == slot {
			node.next = victim.next
			return
		}
		cur = node.next
	}
}
