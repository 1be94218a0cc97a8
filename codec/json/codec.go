// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

// Package json encodes sequence elements as JSON.
package json // import "github.com/ssbc/seqview/codec/json"

import (
	"io"
	"reflect"

	"github.com/goccy/go-json"

	"github.com/ssbc/seqview"
)

// New creates a json codec that decodes into values of type tipe.
// A nil tipe decodes into whatever encoding/json would pick for an interface{}.
func New(tipe interface{}) seqview.Codec {
	if tipe == nil {
		return &codec{any: true}
	}

	t := reflect.TypeOf(tipe)
	isPtr := t.Kind() == reflect.Ptr
	if isPtr {
		t = t.Elem()
	}

	return &codec{
		tipe:  t,
		asPtr: isPtr,
	}
}

type codec struct {
	tipe  reflect.Type
	asPtr bool
	any   bool
}

func (*codec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (c *codec) Unmarshal(data []byte) (interface{}, error) {
	return c.decode(func(v interface{}) error {
		return json.Unmarshal(data, v)
	})
}

func (c *codec) decode(into func(interface{}) error) (interface{}, error) {
	if c.any {
		var v interface{}
		err := into(&v)
		return v, err
	}

	ptr := reflect.New(c.tipe)
	err := into(ptr.Interface())
	if c.asPtr {
		return ptr.Interface(), err
	}
	return ptr.Elem().Interface(), err
}

func (*codec) NewEncoder(w io.Writer) seqview.Encoder {
	return json.NewEncoder(w)
}

func (c *codec) NewDecoder(r io.Reader) seqview.Decoder {
	return &decoder{
		c:   c,
		dec: json.NewDecoder(r),
	}
}

type decoder struct {
	c   *codec
	dec *json.Decoder
}

func (dec *decoder) Decode() (interface{}, error) {
	return dec.c.decode(dec.dec.Decode)
}
