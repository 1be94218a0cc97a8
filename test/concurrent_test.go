// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ssbc/seqview"
)

func TestFollow(t *testing.T) {
	r := require.New(t)

	open := make(chan struct{})
	closed := make(chan struct{})
	close(closed)

	complete := seqview.MustWrap[int]([]int{0, 1, 2})
	r.NoError(follow(complete, 3, open))
	r.NoError(follow(complete, 3, closed))

	done := make(chan error, 1)
	go func() {
		done <- follow(seqview.MustWrap[int]([]int{0, 1}), 5, closed)
	}()
	select {
	case err := <-done:
		r.EqualError(err, "log stopped growing at 2 of 5 elements")
	case <-time.After(5 * time.Second):
		t.Fatal("follow didn't give up after the writer stopped")
	}

	err := follow(seqview.MustWrap[int]([]int{0, 7}), 2, open)
	r.EqualError(err, "expected 1 at position 1 but got 7")
}
