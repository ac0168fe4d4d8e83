// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/prs

package prs

import "encoding/binary"

// bitWriter appends a PRS stream to dst: control bytes carrying up to eight
// control bits each (packed LSB first), interleaved with payload bytes.
//
// The writer performs no bounds checks. Callers validate capacity once up
// front via MaxCompressedSize; every write after that is known to fit.
type bitWriter struct {
	dst  []byte
	pos  int // next byte to write (payload or reserved control byte)
	ctl  int // position of the current control byte
	bits int // control bits used in dst[ctl], 0..8
}

// reserveControlByte claims the byte at the head for control bits and
// advances the head past it. The byte is zeroed because putControlBit only
// ORs bits in, and the caller's buffer may be dirty.
func (w *bitWriter) reserveControlByte() {
	w.dst[w.pos] = 0
	w.ctl = w.pos
	w.pos++
	w.bits = 0
}

// putControlBit appends one control bit, reserving a fresh control byte at
// the current head when the previous one is full.
func (w *bitWriter) putControlBit(bit byte) {
	if w.bits == 8 {
		w.reserveControlByte()
	}

	w.dst[w.ctl] |= bit << w.bits
	w.bits++
}

// putByte appends one payload byte.
func (w *bitWriter) putByte(b byte) {
	w.dst[w.pos] = b
	w.pos++
}

// putUint16 appends two payload bytes, little endian.
func (w *bitWriter) putUint16(v uint16) {
	binary.LittleEndian.PutUint16(w.dst[w.pos:], v)
	w.pos += 2
}
