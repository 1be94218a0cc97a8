// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"os"
	"path/filepath"

	"github.com/ssbc/seqview"
	"github.com/ssbc/seqview/codec/cbor"
	"github.com/ssbc/seqview/codec/json"
	"github.com/ssbc/seqview/codec/msgpack"
	"github.com/ssbc/seqview/sqlite"
	stest "github.com/ssbc/seqview/test"
)

type namedSequence struct {
	*sqlite.Sequence[int]
	name string
}

func (s *namedSequence) FileName() string { return s.name }

func init() {
	codecs := map[string]seqview.NewCodecFunc{
		"json":    json.New,
		"msgpack": msgpack.New,
		"cbor":    cbor.New,
	}

	buildNewLogFunc := func(newCodec seqview.NewCodecFunc) stest.NewLogFunc {
		return func(name string) (stest.Log, error) {
			name = filepath.Join("testrun", name)
			if err := os.RemoveAll(name); err != nil {
				return nil, err
			}

			seq, err := sqlite.Open[int](name, newCodec(0))
			if err != nil {
				return nil, err
			}
			return &namedSequence{Sequence: seq, name: name}, nil
		}
	}

	for cname, newCodec := range codecs {
		stest.Register("sqlite/"+cname, buildNewLogFunc(newCodec))
	}
}
