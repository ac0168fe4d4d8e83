// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/prs

package prs

// Decompress decompresses a PRS stream from src into a new buffer sized by
// walking the token stream first. Returns ErrEmptyInput for empty src and
// ErrInputOverrun for truncated or unterminated streams.
func Decompress(src []byte) ([]byte, error) {
	outLen, err := DecompressedSize(src)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, outLen)
	if _, _, err := decompressCore(src, dst); err != nil {
		return nil, err
	}

	return dst, nil
}

// DecompressN decompresses a PRS stream from src and returns the decoded
// data plus the number of input bytes consumed (nRead). nRead is 0 on error.
// Use this when advancing a stream of back-to-back compressed blocks.
func DecompressN(src []byte) ([]byte, int, error) {
	outLen, err := DecompressedSize(src)
	if err != nil {
		return nil, 0, err
	}

	dst := make([]byte, outLen)
	_, inConsumed, err := decompressCore(src, dst)
	if err != nil {
		return nil, 0, err
	}

	return dst, inConsumed, nil
}

// DecompressInto decompresses a PRS stream from src into the caller-owned
// dst and returns the number of bytes written. Returns ErrOutputOverrun if
// dst is shorter than the decoded data.
func DecompressInto(src, dst []byte) (int, error) {
	outWritten, _, err := decompressCore(src, dst)
	if err != nil {
		return 0, err
	}

	return outWritten, nil
}

// decompressCore decodes tokens from src into dst until the terminator.
// Returns (bytes written, input bytes consumed, nil) on success and
// (0, 0, err) on malformed input.
func decompressCore(src, dst []byte) (outWritten, inConsumed int, err error) {
	if len(src) == 0 {
		return 0, 0, ErrEmptyInput
	}

	r := newBitReader(src)
	outPos := 0

	for {
		bit, err := r.readControlBit()
		if err != nil {
			return 0, 0, err
		}

		// Control bit 1: literal.
		if bit == 1 {
			b, err := r.readByte()
			if err != nil {
				return 0, 0, err
			}

			if outPos >= len(dst) {
				return 0, 0, ErrOutputOverrun
			}

			dst[outPos] = b
			outPos++

			continue
		}

		bit, err = r.readControlBit()
		if err != nil {
			return 0, 0, err
		}

		var length, dist int
		if bit == 1 {
			// Control bits 01: long copy, or the terminator when the packed
			// word is zero.
			packed, err := r.readUint16()
			if err != nil {
				return 0, 0, err
			}

			if packed == 0 {
				return outPos, r.pos, nil
			}

			// The writer truncated a negative offset to 13 bits; subtracting
			// 0x2000 restores the sign.
			dist = 0x2000 - int(packed>>3)

			length = int(packed & 0x7)
			if length == 0 {
				ext, err := r.readByte()
				if err != nil {
					return 0, 0, err
				}

				length = int(ext) + 1 // length 1-256
			} else {
				length += 2 // length 3-9
			}
		} else {
			// Control bits 00: short copy, length 2-5 from two more control
			// bits (high bit first), one-byte offset.
			hi, err := r.readControlBit()
			if err != nil {
				return 0, 0, err
			}

			lo, err := r.readControlBit()
			if err != nil {
				return 0, 0, err
			}

			length = int(hi)<<1 | int(lo)
			length += 2

			b, err := r.readByte()
			if err != nil {
				return 0, 0, err
			}

			dist = 0x100 - int(b)
		}

		if err := expandCopy(dst, outPos, dist, length); err != nil {
			return 0, 0, err
		}

		outPos += length
	}
}
