// Copyright 2026 The fsc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"fmt"
)

// SymbolInfoSize is sizeof(SYMINFO).
const SymbolInfoSize = 406

// Symbol-info sub-protocol constants.
const (
	symbolInfoXPID    = 0xA00B // XPID_SYMINFO
	symbolInfoSubType = 97     // XT_SYMINFO
	SymbolInfoVersion = 1
)

// Behavioral flag bits (SF_*).
const (
	SymPerspectives     = 0x00000001
	SymGrouped          = 0x00000002 // symbol is part of a symbol group
	SymVaricolor        = 0x00000004 // colored per layer via a mask picture
	SymTransform        = 0x00000008 // random transformations
	SymAlong            = 0x00000010 // place along entities
	SymExplode          = 0x00000020
	SymHex              = 0x00000040
	SymHexVertical      = 0x00000080
	SymFrontOnLayer     = 0x00000100
	SymSheet            = 0x00000200
	SymCtrlPLayer       = 0x00000400
	SymLayerToSheet     = 0x00000800
	SymDontAdd          = 0x00001000
	SymVaricolorShading = 0x00002000
	SymStarmap          = 0x00004000
	SymDrawTool         = 0x00008000
	SymXCheckPicture    = 0x00010000
)

// Group-behavior flag bits (SGF_*).
const (
	GroupByNumber       = 0x00000000 // group members differ by a number
	GroupByLetter       = 0x00000001
	GroupBySamePrefix   = 0x00000002
	GroupVaricolor      = 0x00000080
	GroupRandom         = 0x00000100 // pick a random member on placement
	GroupArrowSyms      = 0x00000200
	GroupIgnoreInitials = 0x00000400
)

// Random-transform flag bits (TF_*).  The matching randomization fields are
// only meaningful when the corresponding bit is set.
const (
	TransformOffset  = 0x00000001
	TransformRotate  = 0x00000002
	TransformScale   = 0x00000004
	TransformScaleXY = 0x00000008
	TransformShear   = 0x00000010
	TransformMirrorX = 0x00000020
	TransformMirrorY = 0x00000040
)

// Fixed-width text field sizes.
const (
	SheetNameLen    = 64
	DrawToolNameLen = 128
)

const (
	syminfoXPIDOff       = EntityHeaderSize        // 28
	syminfoSubTypeOff    = syminfoXPIDOff + 2      // 30
	syminfoVersionOff    = syminfoSubTypeOff + 1   // 31
	syminfoFlagsOff      = syminfoVersionOff + 2   // 33
	syminfoFlags2Off     = syminfoFlagsOff + 4     // 37
	syminfoRotateAOff    = syminfoFlags2Off + 4    // 41
	syminfoRotateBOff    = syminfoRotateAOff + 4   // 45
	syminfoTFlagsOff     = syminfoRotateBOff + 4   // 49
	syminfoScaleAXOff    = syminfoTFlagsOff + 4    // 53
	syminfoScaleBXOff    = syminfoScaleAXOff + 4   // 57
	syminfoScaleAYOff    = syminfoScaleBXOff + 4   // 61
	syminfoScaleBYOff    = syminfoScaleAYOff + 4   // 65
	syminfoShearAOff     = syminfoScaleBYOff + 4   // 69
	syminfoShearBOff     = syminfoShearAOff + 4    // 73
	syminfoOffHighXOff   = syminfoShearBOff + 4 + 4 // 81, after 4 unused bytes
	syminfoOffHighYOff   = syminfoOffHighXOff + 4  // 85
	syminfoOffLowXOff    = syminfoOffHighYOff + 4  // 89
	syminfoOffLowYOff    = syminfoOffLowXOff + 4   // 93
	syminfoGFlagsOff     = syminfoOffLowYOff + 4   // 97
	syminfoSheetOff      = syminfoGFlagsOff + 4 + 49 // 150, after 49 unused bytes
	syminfoDrawToolOff   = syminfoSheetOff + SheetNameLen // 214
	// 64 reserved bytes follow the draw-tool name, ending at 406.
)

// SymbolInfo is the behavioral record of a symbol entity; exactly one per
// symbol regardless of how many pictures it carries.
type SymbolInfo struct {
	Header EntityHeader
	Version int16
	Flags   uint32
	Flags2  uint32

	RotateA        float32
	RotateB        float32
	TransformFlags uint32
	ScaleAX        float32
	ScaleBX        float32
	ScaleAY        float32
	ScaleBY        float32
	ShearA         float32
	ShearB         float32
	OffsetHighX    float32
	OffsetHighY    float32
	OffsetLowX     float32
	OffsetLowY     float32

	GroupFlags uint32
	Sheet      string
	DrawTool   string
}

// NewSymbolInfo returns a symbol-info record with the current structure
// version and the record length computed.  All flags start clear.
func NewSymbolInfo() SymbolInfo {
	return SymbolInfo{
		Header:  NewEntityHeader(SymbolInfoSize, EntityTypeExtended),
		Version: SymbolInfoVersion,
	}
}

// MarshalBytes serializes the record into a fresh SymbolInfoSize-byte
// slice.  The three reserved regions stay zero.
func (s *SymbolInfo) MarshalBytes() ([]byte, error) {
	b := make([]byte, SymbolInfoSize)
	s.Header.encodeTo(b)
	binary.LittleEndian.PutUint16(b[syminfoXPIDOff:], symbolInfoXPID)
	b[syminfoSubTypeOff] = symbolInfoSubType
	binary.LittleEndian.PutUint16(b[syminfoVersionOff:], uint16(s.Version))
	binary.LittleEndian.PutUint32(b[syminfoFlagsOff:], s.Flags)
	binary.LittleEndian.PutUint32(b[syminfoFlags2Off:], s.Flags2)
	putFloat32(b[syminfoRotateAOff:], s.RotateA)
	putFloat32(b[syminfoRotateBOff:], s.RotateB)
	binary.LittleEndian.PutUint32(b[syminfoTFlagsOff:], s.TransformFlags)
	putFloat32(b[syminfoScaleAXOff:], s.ScaleAX)
	putFloat32(b[syminfoScaleBXOff:], s.ScaleBX)
	putFloat32(b[syminfoScaleAYOff:], s.ScaleAY)
	putFloat32(b[syminfoScaleBYOff:], s.ScaleBY)
	putFloat32(b[syminfoShearAOff:], s.ShearA)
	putFloat32(b[syminfoShearBOff:], s.ShearB)
	putFloat32(b[syminfoOffHighXOff:], s.OffsetHighX)
	putFloat32(b[syminfoOffHighYOff:], s.OffsetHighY)
	putFloat32(b[syminfoOffLowXOff:], s.OffsetLowX)
	putFloat32(b[syminfoOffLowYOff:], s.OffsetLowY)
	binary.LittleEndian.PutUint32(b[syminfoGFlagsOff:], s.GroupFlags)
	if err := putString(b[syminfoSheetOff:syminfoSheetOff+SheetNameLen], s.Sheet); err != nil {
		return nil, fmt.Errorf("sheet name: %w", err)
	}
	if err := putString(b[syminfoDrawToolOff:syminfoDrawToolOff+DrawToolNameLen], s.DrawTool); err != nil {
		return nil, fmt.Errorf("draw-tool name: %w", err)
	}
	return b, nil
}

// ParseSymbolInfo decodes a symbol-info record from b.
func ParseSymbolInfo(b []byte) (SymbolInfo, error) {
	if len(b) < SymbolInfoSize {
		return SymbolInfo{}, fmt.Errorf("record: symbol info needs %d bytes, have %d", SymbolInfoSize, len(b))
	}
	h, err := ParseEntityHeader(b)
	if err != nil {
		return SymbolInfo{}, err
	}
	if id := binary.LittleEndian.Uint16(b[syminfoXPIDOff:]); id != symbolInfoXPID {
		return SymbolInfo{}, fmt.Errorf("record: not a symbol-info record (XP id %#x)", id)
	}
	return SymbolInfo{
		Header:         h,
		Version:        int16(binary.LittleEndian.Uint16(b[syminfoVersionOff:])),
		Flags:          binary.LittleEndian.Uint32(b[syminfoFlagsOff:]),
		Flags2:         binary.LittleEndian.Uint32(b[syminfoFlags2Off:]),
		RotateA:        float32At(b[syminfoRotateAOff:]),
		RotateB:        float32At(b[syminfoRotateBOff:]),
		TransformFlags: binary.LittleEndian.Uint32(b[syminfoTFlagsOff:]),
		ScaleAX:        float32At(b[syminfoScaleAXOff:]),
		ScaleBX:        float32At(b[syminfoScaleBXOff:]),
		ScaleAY:        float32At(b[syminfoScaleAYOff:]),
		ScaleBY:        float32At(b[syminfoScaleBYOff:]),
		ShearA:         float32At(b[syminfoShearAOff:]),
		ShearB:         float32At(b[syminfoShearBOff:]),
		OffsetHighX:    float32At(b[syminfoOffHighXOff:]),
		OffsetHighY:    float32At(b[syminfoOffHighYOff:]),
		OffsetLowX:     float32At(b[syminfoOffLowXOff:]),
		OffsetLowY:     float32At(b[syminfoOffLowYOff:]),
		GroupFlags:     binary.LittleEndian.Uint32(b[syminfoGFlagsOff:]),
		Sheet:          stringAt(b[syminfoSheetOff : syminfoSheetOff+SheetNameLen]),
		DrawTool:       stringAt(b[syminfoDrawToolOff : syminfoDrawToolOff+DrawToolNameLen]),
	}, nil
}
