// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

// Package ugorji adapts the handles of github.com/ugorji/go/codec to seqview.Codec.
package ugorji

import (
	"io"
	"reflect"

	"github.com/ugorji/go/codec"

	"github.com/ssbc/seqview"
)

// New returns a codec using h that decodes into values of type tipe.
func New(h codec.Handle, tipe interface{}) seqview.Codec {
	c := &ugCodec{h: h, any: tipe == nil}
	if c.any {
		return c
	}

	t := reflect.TypeOf(tipe)
	c.asPtr = t.Kind() == reflect.Ptr
	if c.asPtr {
		t = t.Elem()
	}
	c.tipe = t
	return c
}

type ugCodec struct {
	h     codec.Handle
	tipe  reflect.Type
	asPtr bool
	any   bool
}

func (c *ugCodec) Marshal(v interface{}) ([]byte, error) {
	var out []byte
	err := codec.NewEncoderBytes(&out, c.h).Encode(v)
	return out, err
}

func (c *ugCodec) Unmarshal(data []byte) (interface{}, error) {
	return c.decode(codec.NewDecoderBytes(data, c.h))
}

func (c *ugCodec) decode(dec *codec.Decoder) (interface{}, error) {
	if c.any {
		var v interface{}
		err := dec.Decode(&v)
		return v, err
	}

	ptr := reflect.New(c.tipe)
	err := dec.Decode(ptr.Interface())
	if c.asPtr {
		return ptr.Interface(), err
	}
	return ptr.Elem().Interface(), err
}

func (c *ugCodec) NewEncoder(w io.Writer) seqview.Encoder {
	return codec.NewEncoder(w, c.h)
}

func (c *ugCodec) NewDecoder(r io.Reader) seqview.Decoder {
	return &decoder{c: c, dec: codec.NewDecoder(r, c.h)}
}

type decoder struct {
	c   *ugCodec
	dec *codec.Decoder
}

func (d *decoder) Decode() (interface{}, error) {
	return d.c.decode(d.dec)
}
