// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/prs

package prs

// DecompressedSize walks the token stream in src and returns the size of the
// decompressed data without materializing it. Same control flow as the
// decoder; payload bytes that would be copied are skipped, only lengths
// accumulate.
func DecompressedSize(src []byte) (int, error) {
	if len(src) == 0 {
		return 0, ErrEmptyInput
	}

	r := newBitReader(src)
	size := 0

	for {
		bit, err := r.readControlBit()
		if err != nil {
			return 0, err
		}

		if bit == 1 {
			if err := r.skipByte(); err != nil {
				return 0, err
			}

			size++

			continue
		}

		bit, err = r.readControlBit()
		if err != nil {
			return 0, err
		}

		if bit == 1 {
			packed, err := r.readUint16()
			if err != nil {
				return 0, err
			}

			if packed == 0 {
				return size, nil
			}

			length := int(packed & 0x7)
			if length == 0 {
				ext, err := r.readByte()
				if err != nil {
					return 0, err
				}

				length = int(ext) + 1
			} else {
				length += 2
			}

			size += length

			continue
		}

		hi, err := r.readControlBit()
		if err != nil {
			return 0, err
		}

		lo, err := r.readControlBit()
		if err != nil {
			return 0, err
		}

		if err := r.skipByte(); err != nil {
			return 0, err
		}

		size += (int(hi)<<1 | int(lo)) + 2
	}
}
