// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/prs

package prs

// MaxCompressedSize returns the worst-case compressed size for srcLen input
// bytes: every byte as a literal (one payload byte and one control bit each),
// plus the terminator's two payload bytes and two control bits, with all
// control bits rounded up to whole control bytes. This equals srcLen*9/8 + 3
// except when srcLen%8 == 7, where the terminator needs one more control byte.
func MaxCompressedSize(srcLen int) int {
	return srcLen + (srcLen+9)/8 + 2
}

// Compress compresses src as a PRS stream and returns it in a new buffer.
// Returns ErrInputTooLarge if src exceeds MaxSourceSize.
func Compress(src []byte) ([]byte, error) {
	if len(src) > MaxSourceSize {
		return nil, ErrInputTooLarge
	}

	dst := make([]byte, MaxCompressedSize(len(src)))

	return dst[:compressCore(src, dst)], nil
}

// CompressInto compresses src into the caller-owned dst and returns the
// number of bytes written. dst must hold at least MaxCompressedSize(len(src))
// bytes; that single check is the only bounds check compression performs.
func CompressInto(src, dst []byte) (int, error) {
	if len(src) > MaxSourceSize {
		return 0, ErrInputTooLarge
	}

	if len(dst) < MaxCompressedSize(len(src)) {
		return 0, ErrOutputOverrun
	}

	return compressCore(src, dst), nil
}

// compressCore runs the full compression pipeline: window the source, build
// the position index per window, find matches with lazy deferral, and emit
// tokens. Returns the number of bytes written to dst.
func compressCore(src, dst []byte) int {
	w := bitWriter{dst: dst}
	w.reserveControlByte()

	srcLen := len(src)
	sourceOfs := 0

	// The first byte can only be a literal; emitting it here keeps the match
	// finders free of a sourceIndex==0 special case.
	if srcLen > 0 {
		w.putControlBit(1)
		w.putByte(src[0])
		sourceOfs = 1
	}

	index := acquirePositionIndex()
	defer releasePositionIndex(index)

	// Fast loop: while at least maxCopyLength bytes remain, the word-at-a-time
	// match finder needs no tail checks.
	lastInitCoveredAll := false
	fastEnd := srcLen - maxCopyLength
	for sourceOfs < fastEnd {
		windowStart := sourceOfs - maxMatchOffset
		if windowStart < 0 {
			windowStart = 0
		}

		// Each window starts with the full maxMatchOffset lookback already
		// indexed, since indexWindowSize > maxMatchOffset.
		windowEnd := windowStart + indexWindowSize
		if windowEnd >= srcLen {
			windowEnd = srcLen
			lastInitCoveredAll = true
		}

		index.init(src[windowStart:windowEnd], int32(windowStart))

		fastLimit := min(windowEnd, fastEnd)
		for sourceOfs < fastLimit {
			m := longestMatchFast(index, src, sourceOfs)

			// Lazy matching: if the match one byte ahead is strictly longer,
			// emit a literal and adopt it. Chain while it keeps improving,
			// reusing each lookahead result instead of recomputing.
			for m.length >= shortCopyMinLen && sourceOfs+1 < fastLimit {
				next := longestMatchFast(index, src, sourceOfs+1)
				if next.length <= m.length {
					break
				}

				w.putControlBit(1)
				w.putByte(src[sourceOfs])
				sourceOfs++
				m = next
			}

			sourceOfs += emitMatch(&w, m, src, sourceOfs)
		}
	}

	// Tail: reindex up to the end of the source unless the last window
	// already reached it.
	if !lastInitCoveredAll {
		windowStart := sourceOfs - maxMatchOffset
		if windowStart < 0 {
			windowStart = 0
		}

		index.init(src[windowStart:], int32(windowStart))
	}

	// The match finders read a 2-byte key, so the slow loop stops one byte
	// short of the end.
	slowLimit := srcLen - 1
	for sourceOfs < slowLimit {
		m := longestMatchSlow(index, src, sourceOfs)

		for m.length >= shortCopyMinLen && sourceOfs+1 < slowLimit {
			next := longestMatchSlow(index, src, sourceOfs+1)
			if next.length <= m.length {
				break
			}

			w.putControlBit(1)
			w.putByte(src[sourceOfs])
			sourceOfs++
			m = next
		}

		sourceOfs += emitMatch(&w, m, src, sourceOfs)
	}

	// A final byte not consumed by the last copy is a literal.
	if sourceOfs == srcLen-1 {
		w.putControlBit(1)
		w.putByte(src[sourceOfs])
	}

	// Terminator: long-copy opcode with a zero packed word.
	w.putControlBit(0)
	w.putControlBit(1)
	w.putByte(0x00)
	w.putByte(0x00)

	return w.pos
}

// emitMatch writes the cheapest token that can represent m at sourceOfs and
// returns how many source bytes it consumed.
//
// Short copy wins whenever its ranges allow (a length-5 match at offset -200
// costs 4 control bits + 1 byte vs 2 bits + 2 bytes); a match too short for
// its offset class degrades to a literal.
func emitMatch(w *bitWriter, m lz77Match, src []byte, sourceOfs int) int {
	if m.offset >= -shortCopyMaxOffset && m.length >= shortCopyMinLen && m.length <= shortCopyMaxLen {
		writeShortCopy(w, m)
		return m.length
	}

	if m.length <= 2 {
		w.putControlBit(1)
		w.putByte(src[sourceOfs])

		return 1
	}

	if m.length <= longCopySmallMaxLen {
		writeLongCopySmall(w, m)
	} else {
		writeLongCopyLarge(w, m)
	}

	return m.length
}

// writeShortCopy emits a 00 opcode: length 2-5 in two control bits (high bit
// first), offset -256..-1 as one truncated payload byte.
func writeShortCopy(w *bitWriter, m lz77Match) {
	encodedLen := m.length - shortCopyMinLen

	w.putControlBit(0)
	w.putControlBit(0)
	w.putControlBit(byte(encodedLen>>1) & 1)
	w.putControlBit(byte(encodedLen) & 1)

	w.putByte(byte(m.offset))
}

// writeLongCopySmall emits a 01 opcode with the length packed into the low 3
// bits of the offset word: length 3-9, offset -8191..-1.
func writeLongCopySmall(w *bitWriter, m lz77Match) {
	w.putControlBit(0)
	w.putControlBit(1)

	packed := uint16(m.offset<<3)&0xfff8 | uint16(m.length-2)
	w.putUint16(packed)
}

// writeLongCopyLarge emits a 01 opcode with zero in the packed length bits
// and the real length in an extension byte: length 1-256, offset -8191..-1.
func writeLongCopyLarge(w *bitWriter, m lz77Match) {
	w.putControlBit(0)
	w.putControlBit(1)

	w.putUint16(uint16(m.offset<<3) & 0xfff8)
	w.putByte(byte(m.length - 1))
}
