package gxudp

// --------------------------------------------------------------------------
//
//	Gurux Ltd
//
// Filename:        $HeadURL$
//
// Version:         $Revision$,
//
//	$Date$
//	$Author$
//
// # Copyright (c) Gurux Ltd
//
// ---------------------------------------------------------------------------
//
//	DESCRIPTION
//
// This file is a part of Gurux Device Framework.
//
// Gurux Device Framework is Open Source software; you can redistribute it
// and/or modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; version 2 of the License.
// Gurux Device Framework is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU General Public License for more details.
//
// More information of Gurux products: https://www.gurux.org
//
// This code is licensed under the GNU General Public License v2.
// Full text may be retrieved at http://www.gnu.org/licenses/gpl-2.0.txt
// ---------------------------------------------------------------------------

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"reflect"
)

// Codec converts records of type T to fixed size binary images and back.
//
// T must have a fixed size: numeric fields, bools, fixed size arrays and
// nested structs made of them. Text fields are declared as [N]byte and
// accessed with SetText and Text.
type Codec[T any] struct {
	order binary.ByteOrder
	size  int
}

// NewCodec returns codec that uses the platform byte order.
func NewCodec[T any]() (*Codec[T], error) {
	return NewCodecOrder[T](binary.NativeEndian)
}

// NewCodecOrder returns codec that uses the given byte order.
func NewCodecOrder[T any](order binary.ByteOrder) (*Codec[T], error) {
	t := reflect.TypeFor[T]()
	if !fixedSize(t) {
		return nil, fmt.Errorf("codec: %v has no fixed size", t)
	}
	var zero T
	size := binary.Size(zero)
	if size < 0 {
		return nil, fmt.Errorf("codec: %v has no fixed size", t)
	}
	return &Codec[T]{order: order, size: size}, nil
}

// fixedSize reports whether every value of t encodes to the same number of bytes.
func fixedSize(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return fixedSize(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !fixedSize(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return false
}

// Size returns the size of the encoded record in bytes.
func (c *Codec[T]) Size() int {
	return c.size
}

// Encode returns the binary image of the record.
func (c *Codec[T]) Encode(record T) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(c.size)
	if err := binary.Write(&buf, c.order, record); err != nil {
		return nil, fmt.Errorf("codec: encode failed: %w", err)
	}
	if buf.Len() != c.size {
		return nil, fmt.Errorf("%w: encoded %d bytes, want %d", ErrSizeMismatch, buf.Len(), c.size)
	}
	return buf.Bytes(), nil
}

// Decode returns the record stored in data.
// The zero value is returned with an error if data can't be decoded.
func (c *Codec[T]) Decode(data []byte) (T, error) {
	var ret T
	if data == nil {
		return ret, ErrNullInput
	}
	if len(data) != c.size {
		return ret, fmt.Errorf("%w: got %d bytes, want %d", ErrSizeMismatch, len(data), c.size)
	}
	var tmp T
	if err := binary.Read(bytes.NewReader(data), c.order, &tmp); err != nil {
		return ret, fmt.Errorf("codec: decode failed: %w", err)
	}
	return tmp, nil
}

// SetText copies s to the fixed length text field dst.
// Text longer than the field is truncated and the rest is zero filled.
func SetText(dst []byte, s string) {
	n := copy(dst, s)
	clear(dst[n:])
}

// Text returns the text stored in a fixed length text field.
// Trailing zero bytes are not part of the text.
func Text(src []byte) string {
	return string(bytes.TrimRight(src, "\x00"))
}
