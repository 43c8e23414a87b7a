// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo sliding_window.go tests (pattern adapted);
// calvinalkan-agent-task test style (go-cmp for structural comparisons)

package pglz

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestHistory_HeadOfEmptyBucketIsSentinel(t *testing.T) {
	var h history
	h.reset(100, HashFibonacci)

	for b := uint32(0); b < uint32(h.hashsz); b++ {
		if got := h.headOf(b); got != 0 {
			t.Fatalf("bucket %d: expected sentinel 0, got %d", b, got)
		}
	}
}

func TestHistory_AddLinksHeadOfBucket(t *testing.T) {
	var h history
	h.reset(100, HashFibonacci)

	buf := []byte("abcdABCD")
	h.add(buf, 0, len(buf))

	bucket := hashIndex(buf, 0, len(buf), h.mask, HashFibonacci)
	head := h.headOf(bucket)
	if head == 0 {
		t.Fatal("expected a non-sentinel head after add")
	}
	if h.entries[head].pos != 0 {
		t.Fatalf("expected head entry pos=0, got %d", h.entries[head].pos)
	}
}

func TestHistory_RecycleUnlinksFromOldBucket(t *testing.T) {
	var h history
	h.reset(2000, HashFibonacci)

	// Fill the ring exactly once so the next add wraps and must unlink
	// slot 1's original bucket membership.
	buf := make([]byte, historySize+8)
	for i := range buf {
		buf[i] = byte(i * 37)
	}
	for i := 0; i < historySize; i++ {
		h.add(buf, i, len(buf))
	}
	if !h.wrapped {
		t.Fatal("expected ring to have wrapped after historySize adds")
	}

	firstBucket := h.entries[1].hindex
	// Confirm slot 1 is reachable from its bucket before recycling.
	found := false
	for cur := h.headOf(firstBucket); cur != 0; cur = h.entries[cur].next {
		if cur == 1 {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("slot 1 not reachable from its own bucket before recycle")
	}

	// One more add recycles slot 1 (nextSlot wraps back to 1).
	h.add(buf, historySize, len(buf))
	newBucket := h.entries[1].hindex

	if newBucket == firstBucket {
		t.Skip("recycled entry happened to rehash into the same bucket; unlink-before-relink can't be distinguished here")
	}

	for cur := h.headOf(firstBucket); cur != 0; cur = h.entries[cur].next {
		if cur == 1 {
			t.Fatal("slot 1 still reachable from its old bucket after recycle")
		}
	}
}

func TestHistory_ResetClearsPriorState(t *testing.T) {
	var h history
	h.reset(2000, HashFibonacci)

	buf := make([]byte, 64)
	h.add(buf, 0, len(buf))

	var fresh history
	fresh.reset(2000, HashFibonacci)

	if diff := cmp.Diff(fresh, h, cmp.AllowUnexported(history{}, histEntry{}), cmpopts.IgnoreFields(history{}, "nextSlot")); diff == "" {
		t.Fatal("expected reset history to differ from one with an add() applied")
	}

	h.reset(2000, HashFibonacci)
	if diff := cmp.Diff(fresh, h, cmp.AllowUnexported(history{}, histEntry{})); diff != "" {
		t.Fatalf("two freshly reset histories differ: %s", diff)
	}
}
