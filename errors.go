// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/prs

package prs

import "errors"

// Sentinel errors for compression and decompression.
var (
	// ErrEmptyInput is returned when the input slice or stream is empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrInputOverrun is returned when the decoder reads past the end of input
	// (truncated stream or missing terminator).
	ErrInputOverrun = errors.New("input overrun")
	// ErrOutputOverrun is returned when a destination buffer is too small:
	// shorter than MaxCompressedSize for CompressInto, or shorter than the
	// decoded data for DecompressInto.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrLookBehindUnderrun is returned when a copy token points before the
	// start of the output.
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrInputTooLarge is returned when the source exceeds MaxSourceSize.
	// Match positions are stored as 32-bit values, which caps the source at
	// 2 GiB; use multiple streams for anything bigger.
	ErrInputTooLarge = errors.New("input exceeds MaxSourceSize")
)
