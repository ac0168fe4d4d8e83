// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/prs

package prs

import (
	"encoding/binary"
	"math/bits"
)

// lz77Match is a back-reference candidate: length bytes at source index plus
// offset equal the length bytes at the index itself. offset is negative; a
// zero length means no usable match was found.
type lz77Match struct {
	length int
	offset int
}

// longestMatchFast returns the longest match for source[sourceIndex:] within
// the offset window, comparing a machine word at a time. Callers must
// guarantee sourceIndex+maxCopyLength <= len(source); inside that bound no
// word load can overrun, so the inner loop carries no tail checks.
//
// Candidates are tried newest first, same as longestMatchSlow, so both
// variants pick identical matches: on equal lengths the nearest occurrence
// wins, which keeps encoded offsets small.
func longestMatchFast(index *positionIndex, source []byte, sourceIndex int) lz77Match {
	var best lz77Match

	minOfs := sourceIndex - maxMatchOffset
	if minOfs < 0 {
		minOfs = 0
	}

	key := binary.LittleEndian.Uint16(source[sourceIndex:])
	candidates := index.get(key, int32(minOfs), int32(sourceIndex-1))

	for i := len(candidates) - 1; i >= 0; i-- {
		p := int(candidates[i])

		// The key guarantees the first 2 bytes; probe 4 at once to decide
		// between the word loop and the 2-or-3 short case.
		length := 2
		if binary.LittleEndian.Uint32(source[p:]) == binary.LittleEndian.Uint32(source[sourceIndex:]) {
			length = 4

			for length < maxCopyLength {
				if length+8 <= maxCopyLength {
					x := binary.LittleEndian.Uint64(source[p+length:]) ^
						binary.LittleEndian.Uint64(source[sourceIndex+length:])
					if x != 0 {
						length += bits.TrailingZeros64(x) >> 3
						break
					}

					length += 8

					continue
				}

				if source[p+length] != source[sourceIndex+length] {
					break
				}

				length++
			}
		} else if source[p+2] == source[sourceIndex+2] {
			length = 3
		}

		if length > best.length {
			best.length = length
			best.offset = p - sourceIndex

			if length == maxCopyLength {
				break
			}
		}
	}

	return best
}

// longestMatchSlow is the tail-safe variant, used when fewer than
// maxCopyLength bytes remain: the inner loop re-checks the source bound on
// every byte. Candidate order and results match longestMatchFast.
func longestMatchSlow(index *positionIndex, source []byte, sourceIndex int) lz77Match {
	var best lz77Match

	minOfs := sourceIndex - maxMatchOffset
	if minOfs < 0 {
		minOfs = 0
	}

	key := binary.LittleEndian.Uint16(source[sourceIndex:])

	maxLen := len(source) - sourceIndex
	if maxLen > maxCopyLength {
		maxLen = maxCopyLength
	}

	candidates := index.get(key, int32(minOfs), int32(sourceIndex-1))

	for i := len(candidates) - 1; i >= 0; i-- {
		p := int(candidates[i])

		length := 2
		for length < maxLen && source[p+length] == source[sourceIndex+length] {
			length++
		}

		if length > best.length {
			best.length = length
			best.offset = p - sourceIndex

			if length == maxLen {
				break
			}
		}
	}

	return best
}
