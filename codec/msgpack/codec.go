// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

// Package msgpack encodes sequence elements as MessagePack.
package msgpack // import "github.com/ssbc/seqview/codec/msgpack"

import (
	"reflect"

	"github.com/ugorji/go/codec"

	"github.com/ssbc/seqview"
	"github.com/ssbc/seqview/codec/internal/ugorji"
)

// New creates a msgpack codec that decodes into values of type tipe.
func New(tipe interface{}) seqview.Codec {
	var mh codec.MsgpackHandle
	mh.WriteExt = true
	mh.RawToString = true
	mh.MapType = reflect.TypeOf(map[string]interface{}(nil))
	return ugorji.New(&mh, tipe)
}
