// Copyright 2026 The fsc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"fmt"
)

// EntityHeaderSize is sizeof(CSTUFF) in the SDK headers.
const EntityHeaderSize = 28

// Entity type codes.
const (
	EntityTypeExtended  = 4  // ET_XP: custom/extended entity
	EntityTypeSymbolDef = 28 // ET_SYMDEF
)

// Entity flag bits (EFlags).
const (
	EntityFlagArrowAt0     = 0x01 // arrow at T=0 end
	EntityFlagArrowAt1     = 0x02 // arrow at T=1 end
	EntityFlagShared       = 0x04 // shared use
	EntityFlagColorFromRef = 0x08 // color taken from the SYMREF; marks a varicolor mask picture
	EntityFlagIgnoreSub    = 0x10 // ignore sublist
	EntityFlagHighlighted  = 0x20
	EntityFlagErased       = 0x80 // old 5.163 files only
)

// Entity flag bits (EFlags2).
const (
	EntityFlag2NoOutline = 0x01 // no outline on fill
)

// Default entity-header field values used throughout CC3+ catalogs.
const (
	defaultEntityColor     = 224
	defaultEntityLayer     = 256
	defaultEntityFillStyle = 1
)

// Entity header field offsets.
const (
	entRecordLenOff = 0
	entTypeOff      = 4
	entFlagsOff     = 5
	entFlags2Off    = 6
	entColorOff     = 7
	entFillColorOff = 8
	entThicknessOff = 9
	entWorkplaneOff = 10
	entLayerOff     = 12
	entLineStyleOff = 14
	entGroupIDOff   = 16
	entFillStyleOff = 18
	entLineWidthOff = 20
	entTagOff       = 24
)

// EntityHeader is the 28-byte property block embedded at the start of every
// entity record.  RecordLen always holds the total byte size of the owning
// record; the record constructors fill it in and it is never set by callers.
type EntityHeader struct {
	RecordLen uint32
	Type      byte
	Flags     byte
	Flags2    byte
	Color     byte
	FillColor byte
	Thickness byte
	Workplane int16
	Layer     int16
	LineStyle int16
	GroupID   int16
	FillStyle int16
	LineWidth float32
	Tag       int32
}

// NewEntityHeader returns a header carrying the defaults CC3+ expects:
// color and fill color 224, layer 256, fill style 1, everything else zero.
func NewEntityHeader(recordLen uint32, entityType byte) EntityHeader {
	return EntityHeader{
		RecordLen: recordLen,
		Type:      entityType,
		Color:     defaultEntityColor,
		FillColor: defaultEntityColor,
		Layer:     defaultEntityLayer,
		FillStyle: defaultEntityFillStyle,
	}
}

// encodeTo writes the header into the first EntityHeaderSize bytes of b.
func (h *EntityHeader) encodeTo(b []byte) {
	binary.LittleEndian.PutUint32(b[entRecordLenOff:], h.RecordLen)
	b[entTypeOff] = h.Type
	b[entFlagsOff] = h.Flags
	b[entFlags2Off] = h.Flags2
	b[entColorOff] = h.Color
	b[entFillColorOff] = h.FillColor
	b[entThicknessOff] = h.Thickness
	binary.LittleEndian.PutUint16(b[entWorkplaneOff:], uint16(h.Workplane))
	binary.LittleEndian.PutUint16(b[entLayerOff:], uint16(h.Layer))
	binary.LittleEndian.PutUint16(b[entLineStyleOff:], uint16(h.LineStyle))
	binary.LittleEndian.PutUint16(b[entGroupIDOff:], uint16(h.GroupID))
	binary.LittleEndian.PutUint16(b[entFillStyleOff:], uint16(h.FillStyle))
	putFloat32(b[entLineWidthOff:], h.LineWidth)
	binary.LittleEndian.PutUint32(b[entTagOff:], uint32(h.Tag))
}

// ParseEntityHeader decodes the leading entity header from b.
func ParseEntityHeader(b []byte) (EntityHeader, error) {
	if len(b) < EntityHeaderSize {
		return EntityHeader{}, fmt.Errorf("record: entity header needs %d bytes, have %d", EntityHeaderSize, len(b))
	}
	return EntityHeader{
		RecordLen: binary.LittleEndian.Uint32(b[entRecordLenOff:]),
		Type:      b[entTypeOff],
		Flags:     b[entFlagsOff],
		Flags2:    b[entFlags2Off],
		Color:     b[entColorOff],
		FillColor: b[entFillColorOff],
		Thickness: b[entThicknessOff],
		Workplane: int16(binary.LittleEndian.Uint16(b[entWorkplaneOff:])),
		Layer:     int16(binary.LittleEndian.Uint16(b[entLayerOff:])),
		LineStyle: int16(binary.LittleEndian.Uint16(b[entLineStyleOff:])),
		GroupID:   int16(binary.LittleEndian.Uint16(b[entGroupIDOff:])),
		FillStyle: int16(binary.LittleEndian.Uint16(b[entFillStyleOff:])),
		LineWidth: float32At(b[entLineWidthOff:]),
		Tag:       int32(binary.LittleEndian.Uint32(b[entTagOff:])),
	}, nil
}
