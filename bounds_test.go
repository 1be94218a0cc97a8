// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package seqview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounds(t *testing.T) {
	type testcase struct {
		start, stop, step, length int
		nstart, nstop, n          int
	}

	tcs := []testcase{
		{start: 0, stop: 3, step: 1, length: 5, nstart: 0, nstop: 3, n: 3},
		{start: Begin, stop: End, step: 1, length: 5, nstart: 0, nstop: 5, n: 5},
		{start: Begin, stop: End, step: 2, length: 5, nstart: 0, nstop: 5, n: 3},
		{start: End, stop: Begin, step: -1, length: 5, nstart: 4, nstop: -1, n: 5},
		{start: End, stop: Begin, step: -2, length: 5, nstart: 4, nstop: -1, n: 3},
		{start: -2, stop: End, step: 1, length: 5, nstart: 3, nstop: 5, n: 2},
		{start: -100, stop: 100, step: 1, length: 5, nstart: 0, nstop: 5, n: 5},
		{start: 3, stop: 1, step: 1, length: 5, nstart: 3, nstop: 1, n: 0},
		{start: 1, stop: 3, step: -1, length: 5, nstart: 1, nstop: 3, n: 0},
		{start: Begin, stop: End, step: 1, length: 0, nstart: 0, nstop: 0, n: 0},
		{start: End, stop: Begin, step: -1, length: 0, nstart: -1, nstop: -1, n: 0},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			a := assert.New(t)

			nstart, nstop, n, err := Bounds(tc.start, tc.stop, tc.step, tc.length)
			a.NoError(err)
			a.Equal(tc.nstart, nstart, "start")
			a.Equal(tc.nstop, nstop, "stop")
			a.Equal(tc.n, n, "count")
		})
	}

	_, _, _, err := Bounds(0, 1, 0, 3)
	assert.Equal(t, ErrZeroStep, err)
}

func TestWindow(t *testing.T) {
	a := assert.New(t)

	check := func(start, stop, length, wantStart, wantStop int) {
		s, e := window(start, stop, length)
		a.Equal(wantStart, s, "start of window(%d, %d, %d)", start, stop, length)
		a.Equal(wantStop, e, "stop of window(%d, %d, %d)", start, stop, length)
	}

	check(0, End, 4, 0, 4)
	check(-1, End, 4, 3, 4)
	check(-10, 2, 4, 0, 2)
	check(3, 1, 4, 3, 3)
	check(5, 9, 4, 4, 4)
}
