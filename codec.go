// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package seqview

import (
	"io"
)

// NewCodecFunc returns a codec that decodes into values of the same type as tipe.
type NewCodecFunc func(tipe interface{}) Codec

// Codec is used by storage backed sequences to turn elements into bytes and back.
//
//go:generate counterfeiter -o codec/codecfakes/fake_codec.go . Codec
type Codec interface {
	// Marshal encodes a single value and returns the serialized byte slice.
	Marshal(value interface{}) ([]byte, error)

	// Unmarshal decodes and returns the value stored in data.
	Unmarshal(data []byte) (interface{}, error)

	NewDecoder(io.Reader) Decoder
	NewEncoder(io.Writer) Encoder
}

type Decoder interface {
	Decode() (interface{}, error)
}

type Encoder interface {
	Encode(v interface{}) error
}
