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
	"github.com/ssbc/seqview/kv"
	stest "github.com/ssbc/seqview/test"
)

type namedSequence struct {
	*kv.Sequence[int]
	name string
}

func (s *namedSequence) FileName() string { return s.name }

type openFunc func(path string, c seqview.Codec) (*kv.Sequence[int], error)

func init() {
	codecs := map[string]seqview.NewCodecFunc{
		"json":    json.New,
		"msgpack": msgpack.New,
		"cbor":    cbor.New,
	}

	stores := map[string]openFunc{
		"badger": kv.OpenBadger[int],
		"mkv":    kv.OpenMKV[int],
	}

	buildNewLogFunc := func(open openFunc, newCodec seqview.NewCodecFunc) stest.NewLogFunc {
		return func(name string) (stest.Log, error) {
			name = filepath.Join("testrun", name)
			if err := os.RemoveAll(name); err != nil {
				return nil, err
			}

			seq, err := open(name, newCodec(0))
			if err != nil {
				return nil, err
			}
			return &namedSequence{Sequence: seq, name: name}, nil
		}
	}

	for sname, open := range stores {
		for cname, newCodec := range codecs {
			stest.Register(sname+"/"+cname, buildNewLogFunc(open, newCodec))
		}
	}
}
