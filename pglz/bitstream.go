// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo compress_1x_fast.go (append-based emission, adapted);
// original_source/bench/pg_lzcompress_fibonacci_hash.c pglz_out_ctrl/out_literal/out_tag

package pglz

// emitter builds the pglz bitstream: control bytes whose bits are
// consumed low-to-high, interleaved with literal bytes or 2/3-byte
// back-reference tags (spec.md §3).
type emitter struct {
	out     []byte
	ctrlIdx int // index of the in-progress control byte in out, or -1
	ctrlVal byte
	nbits   uint
}

// newEmitter wraps dst (truncated to zero length) as the emitter's output
// buffer; dst must have enough capacity for the worst case
// (MaxOutputSize).
func newEmitter(dst []byte) *emitter {
	return &emitter{out: dst[:0], ctrlIdx: -1}
}

// ensureCtrl reserves space for a fresh control byte if none is currently
// in progress.
func (e *emitter) ensureCtrl() {
	if e.ctrlIdx < 0 {
		e.out = append(e.out, 0)
		e.ctrlIdx = len(e.out) - 1
		e.ctrlVal = 0
		e.nbits = 0
	}
}

// closeCtrl flushes the in-progress control byte's bits into the output
// buffer and marks it closed.
func (e *emitter) closeCtrl() {
	if e.ctrlIdx >= 0 {
		e.out[e.ctrlIdx] = e.ctrlVal
		e.ctrlIdx = -1
	}
}

// nextBit consumes one control-bit slot, opening a new control byte if
// needed and flushing the current one once it fills.
func (e *emitter) nextBit(isTag bool) {
	e.ensureCtrl()
	if isTag {
		e.ctrlVal |= 1 << e.nbits
	}
	e.nbits++
	if e.nbits == 8 {
		e.closeCtrl()
	}
}

// literal emits one literal byte (control bit 0).
func (e *emitter) literal(b byte) {
	e.nextBit(false)
	e.out = append(e.out, b)
}

// tag emits a back-reference (control bit 1) for (length, offset), per
// spec.md §3's 2-byte/3-byte layout. length must be in [3, 273], offset
// in [1, 4095].
func (e *emitter) tag(length, offset int) {
	e.nextBit(true)

	if length > 17 {
		e.out = append(e.out,
			byte(((offset&0xf00)>>4)|0x0f),
			byte(offset&0xff),
			byte(length-18),
		)
		return
	}

	e.out = append(e.out,
		byte(((offset&0xf00)>>4)|(length-3)),
		byte(offset&0xff),
	)
}

// size reports the number of bytes emitted so far, including any
// in-progress (not yet flushed) control byte — matches the original's
// `bp - bstart` budget accounting.
func (e *emitter) size() int {
	return len(e.out)
}

// finish flushes any in-progress control byte and returns the complete
// stream.
func (e *emitter) finish() []byte {
	e.closeCtrl()
	return e.out
}
