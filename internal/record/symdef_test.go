// Copyright 2026 The fsc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolDefRecordLengthIsRecordSize(t *testing.T) {
	d := NewSymbolDef("Walled Garden 001", Point3{X: 12.8, Y: 12.8})
	b, err := d.MarshalBytes()
	require.NoError(t, err)
	require.Len(t, b, SymbolDefSize)

	// The embedded record-length field must equal the record's true size.
	assert.Equal(t, uint32(SymbolDefSize), binary.LittleEndian.Uint32(b[:4]))
	assert.Equal(t, byte(EntityTypeSymbolDef), b[4])
}

func TestSymbolDefFieldPlacement(t *testing.T) {
	d := NewSymbolDef("Keep", Point3{X: 25.6, Y: 12.8})
	b, err := d.MarshalBytes()
	require.NoError(t, err)

	assert.Equal(t, Point3{}, point3At(b[28:40]), "low extent is the origin")
	assert.Equal(t, Point3{X: 25.6, Y: 12.8}, point3At(b[40:52]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(b[52:56]))
	assert.Equal(t, "Keep", stringAt(b[56:88]))
}

func TestSymbolDefGolden(t *testing.T) {
	dump := mustUnhex(t, symbolDefDump)
	require.Len(t, dump, SymbolDefSize)

	d, err := ParseSymbolDef(dump)
	require.NoError(t, err)

	assert.Equal(t, uint32(SymbolDefSize), d.Header.RecordLen)
	assert.Equal(t, byte(EntityTypeSymbolDef), d.Header.Type)
	assert.Equal(t, byte(224), d.Header.Color)
	assert.Equal(t, int16(256), d.Header.Layer)
	assert.Equal(t, int16(1), d.Header.FillStyle)
	assert.Equal(t, "Woodpecker Whale vari", d.Name)
	assert.InDelta(t, 27.175, d.High.X, 1e-4)
	assert.InDelta(t, 3.2375, d.High.Y, 1e-4)

	// Re-encoding the parsed record must reproduce the dump exactly.
	out, err := d.MarshalBytes()
	require.NoError(t, err)
	assert.Equal(t, dump, out)
}
