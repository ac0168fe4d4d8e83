// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/prs

package prs

// expandCopy materializes a copy token: length bytes read dist bytes behind
// the write position pos. A token with dist < length is self-referential and
// must read bytes it has just written (dist 1 replicates a single seed byte
// length times), so the expansion proceeds strictly forward.
func expandCopy(dst []byte, pos, dist, length int) error {
	src := pos - dist
	if src < 0 {
		return ErrLookBehindUnderrun
	}

	end := pos + length
	if end > len(dst) {
		return ErrOutputOverrun
	}

	if dist >= length {
		copy(dst[pos:end], dst[src:src+length])
		return nil
	}

	// Self-referential: keep the read window anchored at src and let it
	// absorb everything written so far. Each round roughly doubles the
	// materialized span, so even dist 1 finishes in O(log length) rounds.
	for pos < end {
		pos += copy(dst[pos:end], dst[src:pos])
	}

	return nil
}
