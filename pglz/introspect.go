// SPDX-License-Identifier: GPL-2.0-only
// Source: original_source/bench/measure_collisions.c (the collision meter
// needs read-only access to the same bucket math Encode uses internally)

package pglz

// HashTableSizeFor exposes the hash-table sizing rule Encode applies
// internally (spec.md §3's table), for external tools that want to
// reproduce pglz's own bucket layout rather than guess at it.
func HashTableSizeFor(inputLen int) int {
	return hashTableSize(inputLen)
}

// HashIndexFor exposes the bucket computation Encode applies to each
// 4-byte window, for collision/distribution measurement tools.
func HashIndexFor(buf []byte, s, end int, mask uint32, kind HashKind) uint32 {
	return hashIndex(buf, s, end, mask, kind)
}
