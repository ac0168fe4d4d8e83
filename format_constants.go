// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/prs

package prs

// PRS format constants: copy opcode offset and length bounds, and position
// index parameters.

// MaxSourceSize is the largest source the compressor accepts. Match
// positions are stored as 32-bit values for cache friendliness, which limits
// a single stream to 2 GiB of input.
const MaxSourceSize = 1<<31 - 1

// Copy opcode bounds.
const (
	maxMatchOffset      = 0x1fff // long copies reach back up to 8191 bytes
	maxCopyLength       = 0x100  // long copy with extension byte, length 1-256
	shortCopyMaxOffset  = 0x100  // short copies reach back up to 256 bytes
	shortCopyMinLen     = 2
	shortCopyMaxLen     = 5
	longCopySmallMaxLen = 9 // packed 3-bit length, 3-9
)

// Position index parameters.
const (
	// keySpace is the number of distinct 2-byte index keys.
	keySpace = 1 << 16

	// indexWindowSize bounds how much source one index build covers: a
	// maxMatchOffset lookback plus lookahead. Windowing keeps the offsets
	// arena and its working set L2-resident instead of scaling with the file.
	// Must be at least maxMatchOffset + maxCopyLength.
	indexWindowSize = 1<<16 - 1
)
