// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/seqview"
)

func LogTestConcurrent(f NewLogFunc) func(*testing.T) {
	type testcase struct {
		values  int
		readers int
	}

	mkTest := func(tc testcase) func(*testing.T) {
		return func(t *testing.T) {
			log, view := makeView(t, f)

			if n := view.Len(); n != 0 {
				t.Fatalf("expected empty log but got len=%d", n)
			}

			var wg sync.WaitGroup
			wg.Add(1 + tc.readers)

			writerDone := make(chan struct{})
			go func() {
				defer wg.Done()
				defer close(writerDone)

				for i := 0; i < tc.values; i++ {
					seq, err := log.Append(i)
					if err != nil {
						t.Errorf("unexpected error %s", err)
						return
					}
					if seq != i {
						t.Errorf("expected position %d but got %d", i, seq)
						return
					}
				}
			}()

			for r := 0; r < tc.readers; r++ {
				go func() {
					defer wg.Done()

					if err := follow(view, tc.values, writerDone); err != nil {
						t.Error(err)
					}
				}()
			}

			wg.Wait()

			vals, err := view.Values()
			require.NoError(t, err)
			require.Len(t, vals, tc.values)
		}
	}

	tcs := []testcase{
		{values: 3, readers: 1},
		{values: 50, readers: 1},
		{values: 50, readers: 4},
	}

	return func(t *testing.T) {
		for i, tc := range tcs {
			t.Run(fmt.Sprint(i), mkTest(tc))
		}
	}
}

// follow reads the view while it grows until it holds want elements, checking that position i holds i.
// It gives up once writerDone is closed and the view stopped short.
func follow(view *seqview.View[int], want int, writerDone <-chan struct{}) error {
	seen := 0
	for seen < want {
		var stopped bool
		select {
		case <-writerDone:
			stopped = true
		default:
		}

		n := view.Len()
		for i := seen; i < n; i++ {
			v, err := view.At(i)
			if err != nil {
				return errors.Wrapf(err, "unexpected error reading %d", i)
			}
			if v != i {
				return errors.Errorf("expected %d at position %d but got %d", i, i, v)
			}
		}
		seen = n

		if stopped && seen < want {
			return errors.Errorf("log stopped growing at %d of %d elements", seen, want)
		}
	}
	return nil
}
