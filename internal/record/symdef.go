// Copyright 2026 The fsc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"fmt"
)

// SymbolDefSize is sizeof(SYMDEF).
const SymbolDefSize = 88

// SymbolNameLen is the width of the fixed NUL-padded symbol-name field.
const SymbolNameLen = 32

const (
	symdefLowOff   = EntityHeaderSize      // 28
	symdefHighOff  = symdefLowOff + 12     // 40
	symdefFlagsOff = symdefHighOff + 12    // 52
	symdefNameOff  = symdefFlagsOff + 4    // 56
)

// SymbolDef is the symbol-definition record that opens every symbol entity.
// Low and High are the 3D extents of the symbol in drawing units; for
// image-backed symbols Low is the origin and High is pixels divided by the
// format's scale constant.
type SymbolDef struct {
	Header EntityHeader
	Low    Point3
	High   Point3
	Flags  uint32
	Name   string
}

// NewSymbolDef returns a symbol-definition record with its extents set and
// the record length computed.
func NewSymbolDef(name string, high Point3) SymbolDef {
	return SymbolDef{
		Header: NewEntityHeader(SymbolDefSize, EntityTypeSymbolDef),
		High:   high,
		Name:   name,
	}
}

// MarshalBytes serializes the record into a fresh SymbolDefSize-byte slice.
func (d *SymbolDef) MarshalBytes() ([]byte, error) {
	b := make([]byte, SymbolDefSize)
	d.Header.encodeTo(b)
	putPoint3(b[symdefLowOff:], d.Low)
	putPoint3(b[symdefHighOff:], d.High)
	binary.LittleEndian.PutUint32(b[symdefFlagsOff:], d.Flags)
	if err := putString(b[symdefNameOff:symdefNameOff+SymbolNameLen], d.Name); err != nil {
		return nil, fmt.Errorf("symbol name: %w", err)
	}
	return b, nil
}

// ParseSymbolDef decodes a symbol-definition record from b.
func ParseSymbolDef(b []byte) (SymbolDef, error) {
	if len(b) < SymbolDefSize {
		return SymbolDef{}, fmt.Errorf("record: symbol definition needs %d bytes, have %d", SymbolDefSize, len(b))
	}
	h, err := ParseEntityHeader(b)
	if err != nil {
		return SymbolDef{}, err
	}
	return SymbolDef{
		Header: h,
		Low:    point3At(b[symdefLowOff:]),
		High:   point3At(b[symdefHighOff:]),
		Flags:  binary.LittleEndian.Uint32(b[symdefFlagsOff:]),
		Name:   stringAt(b[symdefNameOff : symdefNameOff+SymbolNameLen]),
	}, nil
}
