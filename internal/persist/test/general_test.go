// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssbc/seqview/internal/persist"
	"github.com/ssbc/seqview/internal/persist/badger"
	"github.com/ssbc/seqview/internal/persist/mkv"
)

func SimpleSaver(p persist.Saver) func(*testing.T) {
	return func(t *testing.T) {
		r := require.New(t)
		defer p.Close()

		l, err := p.List()
		r.NoError(err)
		r.Len(l, 0, "%v", l)

		k := persist.Key{0, 0, 0, 1}
		d, err := p.Get(k)
		r.EqualError(err, persist.ErrNotFound.Error())
		r.Nil(d)

		testData := []byte("fooo")

		err = p.Put(k, testData)
		r.NoError(err)

		l, err = p.List()
		r.NoError(err)
		r.Len(l, 1)
		r.Equal(k, l[0])

		d, err = p.Get(k)
		r.NoError(err)
		r.Equal(d, testData)

		err = p.PutAll([]persist.Pair{
			{Key: persist.Key{0, 0, 0, 2}, Data: []byte("bar")},
			{Key: persist.Key{0, 0, 0, 3}, Data: []byte("baz")},
		})
		r.NoError(err)

		l, err = p.List()
		r.NoError(err)
		r.Len(l, 3)

		d, err = p.Get(persist.Key{0, 0, 0, 3})
		r.NoError(err)
		r.Equal([]byte("baz"), d)
	}
}

func TestSaver(t *testing.T) {
	t.Run("badger", SimpleSaver(makeBadger(t)))
	t.Run("mkv", SimpleSaver(makeMKV(t)))
}

func makeBadger(t *testing.T) persist.Saver {
	base := filepath.Join("testrun", t.Name(), "badger")
	os.RemoveAll(base)
	s, err := badger.New(base)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func makeMKV(t *testing.T) persist.Saver {
	base := filepath.Join("testrun", t.Name(), "mkv")
	os.RemoveAll(base)
	s, err := mkv.New(filepath.Join(base, "db"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}
