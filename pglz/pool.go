// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo sliding_window_pool.go (adapted)

package pglz

import "sync"

// encoderState holds all of Encode's per-call scratch (spec.md §5: "per
// call working memory... must not be shared across concurrent
// encoders"). It is pooled so repeated Encode calls don't pay for a fresh
// ~64KiB allocation each time, while still guaranteeing no state survives
// across calls (history.reset fully reinitializes both the ring and the
// hash table on acquire).
type encoderState struct {
	hist history
}

var encoderStatePool = sync.Pool{
	New: func() any {
		return &encoderState{}
	},
}

// acquireEncoderState gets scratch state from the pool. The caller must
// call history.reset before use and releaseEncoderState when done.
func acquireEncoderState() *encoderState {
	return encoderStatePool.Get().(*encoderState)
}

// releaseEncoderState returns scratch state to the pool.
func releaseEncoderState(st *encoderState) {
	encoderStatePool.Put(st)
}
