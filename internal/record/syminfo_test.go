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

func TestSymbolInfoDefaults(t *testing.T) {
	s := NewSymbolInfo()
	b, err := s.MarshalBytes()
	require.NoError(t, err)
	require.Len(t, b, SymbolInfoSize)

	assert.Equal(t, uint32(SymbolInfoSize), binary.LittleEndian.Uint32(b[:4]))
	assert.Equal(t, byte(EntityTypeExtended), b[4])
	assert.Equal(t, uint16(symbolInfoXPID), binary.LittleEndian.Uint16(b[28:30]))
	assert.Equal(t, byte(symbolInfoSubType), b[30])
	assert.Equal(t, uint16(SymbolInfoVersion), binary.LittleEndian.Uint16(b[31:33]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(b[33:37]), "flags start clear")
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(b[97:101]), "group flags start clear")
}

func TestSymbolInfoFieldPlacement(t *testing.T) {
	s := NewSymbolInfo()
	s.Flags = SymGrouped | SymVaricolor
	s.GroupFlags = GroupVaricolor | GroupRandom
	s.ScaleAX, s.ScaleBX, s.ScaleAY, s.ScaleBY = 1, 1, 1, 1
	s.Sheet = "SYMBOLS"
	s.DrawTool = "Advanced Symbol Tool"

	b, err := s.MarshalBytes()
	require.NoError(t, err)

	assert.Equal(t, uint32(SymGrouped|SymVaricolor), binary.LittleEndian.Uint32(b[33:37]))
	assert.Equal(t, float32(1), float32At(b[53:57]), "scale AX")
	assert.Equal(t, float32(1), float32At(b[57:61]), "scale BX")
	assert.Equal(t, float32(1), float32At(b[61:65]), "scale AY")
	assert.Equal(t, float32(1), float32At(b[65:69]), "scale BY")
	assert.Equal(t, uint32(GroupVaricolor|GroupRandom), binary.LittleEndian.Uint32(b[97:101]))
	assert.Equal(t, "SYMBOLS", stringAt(b[150:214]))
	assert.Equal(t, "Advanced Symbol Tool", stringAt(b[214:342]))
}

func TestSymbolInfoGolden(t *testing.T) {
	// A varicolor symbol's info record captured from a real catalog.
	dump := mustUnhex(t, symbolInfoDump)
	require.Len(t, dump, SymbolInfoSize)

	s, err := ParseSymbolInfo(dump)
	require.NoError(t, err)

	assert.Equal(t, uint32(SymbolInfoSize), s.Header.RecordLen)
	assert.Equal(t, int16(SymbolInfoVersion), s.Version)
	assert.Equal(t, uint32(SymVaricolor), s.Flags)
	assert.Equal(t, float32(1), s.ScaleAX)
	assert.Equal(t, float32(1), s.ScaleBX)
	assert.Equal(t, float32(1), s.ScaleAY)
	assert.Equal(t, float32(1), s.ScaleBY)
	assert.Empty(t, s.Sheet)
	assert.Empty(t, s.DrawTool)

	// Re-encoding the parsed record must reproduce the dump exactly.
	out, err := s.MarshalBytes()
	require.NoError(t, err)
	assert.Equal(t, dump, out)
}
