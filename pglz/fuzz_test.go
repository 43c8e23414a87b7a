// SPDX-License-Identifier: GPL-2.0-only
// Source: original_source/tests/fuzz_pglz.c, bench/test_asan_roundtrip.c (adapted to native Go fuzzing)

package pglz

import (
	"bytes"
	"testing"
)

// FuzzRoundTrip is the Go-native equivalent of
// original_source/tests/fuzz_pglz.c: encode arbitrary bytes under Always
// (which has no input-size bounds) and, whenever Encode succeeds, assert
// the round trip is exact.
func FuzzRoundTrip(f *testing.F) {
	for _, in := range testInputSet() {
		f.Add(in.data)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
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
			t.Fatalf("round-trip mismatch for %d-byte input", len(data))
		}
	})
}

// FuzzDecode is the Go-native equivalent of
// original_source/bench/test_asan_roundtrip.c's adversarial-input
// intent: arbitrary (possibly malformed) streams must never cause Decode
// to read past src or write past declaredRawSize, success or failure.
func FuzzDecode(f *testing.F) {
	f.Add([]byte{0x00}, 0, true)
	f.Add([]byte{0xff, 0xff, 0xff}, 4, false)

	f.Fuzz(func(t *testing.T, src []byte, rawSize int, strict bool) {
		if rawSize < 0 || rawSize > 1<<20 {
			t.Skip()
		}
		dst := make([]byte, rawSize)
		n, err := Decode(src, dst, rawSize, strict)
		if err == nil && (n < 0 || n > rawSize) {
			t.Fatalf("Decode returned out-of-range n=%d for rawSize=%d", n, rawSize)
		}
	})
}
