// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/prs

/*
Package prs implements the PRS compression format used by Sega titles
(Saturn / Dreamcast era onwards, e.g. Phantasy Star Online and Sonic
Adventure model and layout archives).

PRS is a byte-oriented LZ77 variant. The stream interleaves control
bytes (eight control bits each, consumed LSB first) with payload bytes:
literals, one-byte short-copy offsets, and packed two-byte long-copy
words. The stream ends with a long-copy opcode whose packed word is
zero.

# Compress

	out, err := prs.Compress(data)

To compress into a caller-owned buffer, size it with MaxCompressedSize:

	dst := make([]byte, prs.MaxCompressedSize(len(data)))
	n, err := prs.CompressInto(data, dst)
	// compressed data is dst[:n]

# Decompress

PRS streams are self-terminating, so the decompressed size can be
recovered from the stream itself:

	out, err := prs.Decompress(compressed)

To reuse a buffer, obtain the size first and decode into it:

	n, err := prs.DecompressedSize(compressed)
	dst := make([]byte, n)
	n, err = prs.DecompressInto(compressed, dst)

To get the number of input bytes consumed (e.g. for back-to-back
compressed blocks):

	out, nRead, err := prs.DecompressN(compressed)
	// advance: compressed = compressed[nRead:]
*/
package prs
