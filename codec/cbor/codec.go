// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

// Package cbor encodes sequence elements as CBOR.
package cbor // import "github.com/ssbc/seqview/codec/cbor"

import (
	"github.com/ugorji/go/codec"

	"github.com/ssbc/seqview"
	"github.com/ssbc/seqview/codec/internal/ugorji"
)

// New creates a cbor codec that decodes into values of type tipe.
func New(tipe interface{}) seqview.Codec {
	var ch codec.CborHandle
	return ugorji.New(&ch, tipe)
}
