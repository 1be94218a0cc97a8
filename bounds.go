// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package seqview

import "math"

// Begin and End stand in for omitted slice bounds.
// Begin clamps to the first element and End to the last one, so
// Slice(Begin, End, 1) is a full copy and Slice(End, Begin, -1) a reversed one.
const (
	Begin = math.MinInt
	End   = math.MaxInt
)

// Bounds normalizes slice bounds for a sequence of the given length.
// Negative bounds count from the end, out of range bounds are clamped.
// The returned start and stop are ready to be walked with step, and n is the number of selected elements.
func Bounds(start, stop, step, length int) (nstart, nstop, n int, err error) {
	if step == 0 {
		return 0, 0, 0, ErrZeroStep
	}

	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}

	clamp := func(i int) int {
		if i < 0 {
			i += length
			if i < lower {
				i = lower
			}
		} else if i > upper {
			i = upper
		}
		return i
	}

	nstart, nstop = clamp(start), clamp(stop)

	switch {
	case step > 0 && nstart < nstop:
		n = (nstop-nstart-1)/step + 1
	case step < 0 && nstop < nstart:
		n = (nstart-nstop-1)/(-step) + 1
	}
	return nstart, nstop, n, nil
}

// window clamps start and stop the way Index does: negative values count from the end
// and the result satisfies 0 <= start <= stop <= length.
func window(start, stop, length int) (int, int) {
	clamp := func(i int) int {
		if i < 0 {
			i += length
			if i < 0 {
				i = 0
			}
		} else if i > length {
			i = length
		}
		return i
	}
	start, stop = clamp(start), clamp(stop)
	if stop < start {
		stop = start
	}
	return start, stop
}
