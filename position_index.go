// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/prs

package prs

import "encoding/binary"

// positionIndex maps every 2-byte little-endian key in the current window to
// the ascending list of absolute source offsets where it occurs. The match
// finder reads the 2 bytes at its position, looks the key up, and only
// extends matches at those offsets instead of scanning the window.
//
// All offset runs live in one contiguous arena, partitioned per key during
// init. Each entry keeps two query cursors into its run which only ever move
// forward, so a full compression pass touches each arena slot a bounded
// number of times: amortized O(1) per queried byte.
type positionIndex struct {
	entries [keySpace]indexEntry
	arena   []int32 // one slot per 2-byte sample in the window

	// scratch serves two lives per init: key frequencies during the counting
	// pass, then per-key insertion cursors during the fill pass.
	scratch [keySpace]int32
}

// indexEntry delimits one key's run inside the arena and carries the query
// cursors. Invariant: start <= cursorMin <= cursorMax <= end, with
// arena[start:end] strictly ascending.
type indexEntry struct {
	start     int32
	cursorMin int32
	cursorMax int32
	end       int32
}

// init rebuilds the index over window, whose first byte sits at absolute
// source offset base. Samples are the 2-byte sequences starting at every
// window byte except the last.
//
// Three passes: count per-key frequencies, lay out one exactly-sized run per
// key, then fill. Because frequencies size the runs exactly, the fill pass
// needs no bounds checks.
func (x *positionIndex) init(window []byte, base int32) {
	samples := len(window) - 1
	if samples < 0 {
		samples = 0
	}

	if cap(x.arena) < samples {
		x.arena = make([]int32, samples)
	} else {
		x.arena = x.arena[:samples]
	}

	clear(x.scratch[:])
	for i := 0; i < samples; i++ {
		x.scratch[binary.LittleEndian.Uint16(window[i:])]++
	}

	var run int32
	for key := range x.entries {
		e := &x.entries[key]
		e.start = run
		e.cursorMin = run
		e.cursorMax = run
		run += x.scratch[key]
		e.end = run
		x.scratch[key] = e.start // becomes the insertion cursor
	}

	for i := 0; i < samples; i++ {
		key := binary.LittleEndian.Uint16(window[i:])
		x.arena[x.scratch[key]] = base + int32(i)
		x.scratch[key]++
	}
}

// get returns the key's offsets o with minOfs <= o <= maxOfs, in ascending
// order.
//
// Both cursors persist across calls and only advance, so successive calls
// for the same key must use non-decreasing (minOfs, maxOfs). The compressor
// guarantees this by consuming source offsets left to right; any caller that
// cannot must search the run instead of using this method.
func (x *positionIndex) get(key uint16, minOfs, maxOfs int32) []int32 {
	e := &x.entries[key]

	for e.cursorMin < e.end && x.arena[e.cursorMin] < minOfs {
		e.cursorMin++
	}

	for e.cursorMax < e.end && x.arena[e.cursorMax] <= maxOfs {
		e.cursorMax++
	}

	if e.cursorMax <= e.cursorMin {
		return nil
	}

	return x.arena[e.cursorMin:e.cursorMax]
}
