// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo decompress_test.go (boundary-case pattern, adapted)

package pglz

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"
	"time"
)

// TestBoundary_SmallInputs covers spec.md §8: src_len in {0,1,2,3,4,5} —
// the finder cannot run below 4 bytes, so these are all-literal or fail.
func TestBoundary_SmallInputs(t *testing.T) {
	for n := 0; n <= 5; n++ {
		data := randomBytes(int64(n+1), n)
		t.Run(fmt.Sprintf("len-%d", n), func(t *testing.T) {
			encodeDecodeRoundTripOrIneffective(t, data, Always())
		})
	}
}

// TestBoundary_RingAndHashTableSizes covers spec.md §8: the history-ring
// wrap boundary (4096/4097) and twice the ring capacity (8191/8192/8193).
// All of these lengths use the largest (8192-bucket) hash table; its size
// steps happen below 1024 bytes.
func TestBoundary_RingAndHashTableSizes(t *testing.T) {
	for _, n := range []int{4095, 4096, 4097, 8191, 8192, 8193} {
		data := bytes.Repeat([]byte("0123456789abcdef"), n/16+1)[:n]
		t.Run(fmt.Sprintf("len-%d", n), func(t *testing.T) {
			encodeDecodeRoundTrip(t, data, Always())
		})
	}
}

// TestBoundary_FullOffsetRun exercises the decoder's overlap-safe copy
// doubling on a single-byte run longer than the history ring (spec.md §8).
// The encoder's back-references for this input have offset 1 and length
// 273, so the copy loop doubles on every tag.
func TestBoundary_FullOffsetRun(t *testing.T) {
	data := bytes.Repeat([]byte{0x5A}, 5000)
	encodeDecodeRoundTrip(t, data, Always())
}

// TestBoundary_AllIdenticalBytesTerminates guards against the match
// finder spinning unbounded when every 4-byte window hashes to the same
// bucket (spec.md §8's "must still terminate in bounded work per byte").
func TestBoundary_AllIdenticalBytesTerminates(t *testing.T) {
	data := bytes.Repeat([]byte{0x7F}, 200000)
	done := make(chan struct{})
	go func() {
		encodeDecodeRoundTrip(t, data, Always())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("encode/decode did not terminate on all-identical-byte input")
	}
}

// TestBoundary_LargeRandomInput covers spec.md §8: >1 MiB of random bytes
// must either fail compression or round-trip cleanly, never corrupt.
func TestBoundary_LargeRandomInput(t *testing.T) {
	data := randomBytes(7, 1<<20+17)

	out := make([]byte, MaxOutputSize(len(data)))
	n, err := Encode(data, out, Always())
	if err != nil {
		return
	}
	out = out[:n]

	dst := make([]byte, len(data))
	dn, err := Decode(out, dst, len(data), true)
	if err != nil {
		t.Fatalf("Decode failed after successful Encode: %v", err)
	}
	if !bytes.Equal(dst[:dn], data) {
		t.Fatal("large random input round-trip mismatch")
	}
}

// TestBoundary_DecoderNeverOverrunsDst feeds adversarial/truncated
// streams and asserts Decode only ever returns an error or a result
// bounded by declaredRawSize — it never panics or writes out of bounds
// (spec.md §8 "Decoder safety").
func TestBoundary_DecoderNeverOverrunsDst(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for i := 0; i < 200; i++ {
		src := make([]byte, r.Intn(64))
		r.Read(src)
		declared := r.Intn(256)
		dst := make([]byte, declared)

		n, err := Decode(src, dst, declared, r.Intn(2) == 0)
		if err == nil && (n < 0 || n > declared) {
			t.Fatalf("Decode returned out-of-range n=%d for declared=%d", n, declared)
		}
	}
}
