// Copyright 2026 The fsc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"fmt"
)

// PictureSize is sizeof(PICTR).
const PictureSize = 511

// Picture sub-protocol constants.
const (
	pictureXPID    = 0xA004 // XPID_PICTR
	pictureSubType = 1      // XT_PICTR
	PictureVersion = 0
)

// Picture flag bits (PF_*).
const (
	PictureNoOutline    = 1
	PictureDrawInXor    = 2
	PictureResInfoValid = 4
	PictureResInfoOnly1 = 8
	PictureUseCurColor  = 16
	PictureRoofShade    = 32
	PictureMirror       = 64
	PictureShear        = 128
)

// Image transfer modes (IMGXFRMODE).
const (
	XferCopy        = 0
	XferTransparent = 1
	XferAlpha       = 2
	XferPremulAlpha = 3
	XferUltraTrans  = 4
)

// ResInfoCount is the fixed number of resolution-info slots per picture.
const ResInfoCount = 4

// PicturePathLen is the width of the fixed NUL-padded bitmap-path field.
const PicturePathLen = 256

const (
	pictureXPIDOff     = EntityHeaderSize       // 28
	pictureSubTypeOff  = pictureXPIDOff + 2     // 30
	pictureVersionOff  = pictureSubTypeOff + 1  // 31
	pictureFlagsOff    = pictureVersionOff + 4  // 35
	pictureModeOff     = pictureFlagsOff + 4    // 39
	pictureBMWidthOff  = pictureModeOff + 4     // 43
	pictureBMHeightOff = pictureBMWidthOff + 4  // 47
	pictureCenterOff   = pictureBMHeightOff + 4 // 51
	pictureBearingOff  = pictureCenterOff + 8   // 59
	pictureWidthOff    = pictureBearingOff + 4  // 63
	pictureHeightOff   = pictureWidthOff + 4    // 67
	pictureTColorOff   = pictureHeightOff + 4   // 71
	pictureAlphaOff    = pictureTColorOff + 4   // 75
	pictureResInfoOff  = pictureAlphaOff + 4    // 79
	pictureReserveOff  = pictureResInfoOff + 12*ResInfoCount // 127
	picturePathOff     = pictureReserveOff + 4*32            // 255
)

// ResInfo describes one pre-rendered resolution slot of a picture.
type ResInfo struct {
	Present uint32
	Width   uint32
	Height  uint32
}

// Picture is the bitmap-reference record of a symbol entity.  Width and
// Height are real-world sizes in drawing units; BitmapWidth/BitmapHeight
// carry the pixel size and are left zero by the catalog tooling, matching
// reference catalogs.
type Picture struct {
	Header       EntityHeader
	Version      uint32
	Flags        uint32
	Mode         uint32
	BitmapWidth  uint32
	BitmapHeight uint32
	Center       Point2
	Bearing      float32
	Width        float32
	Height       float32
	TransColor   uint32
	Alpha        int32
	ResInfo      [ResInfoCount]ResInfo
	Path         string
}

// NewPicture returns a picture record referencing the bitmap at path with
// the format's default flags: no outline, a single valid resolution slot,
// and alpha-blend transfer.
func NewPicture(path string, width, height float32) Picture {
	return Picture{
		Header:  NewEntityHeader(PictureSize, EntityTypeExtended),
		Version: PictureVersion,
		Flags:   PictureNoOutline | PictureResInfoValid | PictureResInfoOnly1,
		Mode:    XferAlpha,
		Width:   width,
		Height:  height,
		Path:    path,
	}
}

// MarshalBytes serializes the record into a fresh PictureSize-byte slice.
// The 32 reserved words stay zero.
func (p *Picture) MarshalBytes() ([]byte, error) {
	b := make([]byte, PictureSize)
	p.Header.encodeTo(b)
	binary.LittleEndian.PutUint16(b[pictureXPIDOff:], pictureXPID)
	b[pictureSubTypeOff] = pictureSubType
	binary.LittleEndian.PutUint32(b[pictureVersionOff:], p.Version)
	binary.LittleEndian.PutUint32(b[pictureFlagsOff:], p.Flags)
	binary.LittleEndian.PutUint32(b[pictureModeOff:], p.Mode)
	binary.LittleEndian.PutUint32(b[pictureBMWidthOff:], p.BitmapWidth)
	binary.LittleEndian.PutUint32(b[pictureBMHeightOff:], p.BitmapHeight)
	putPoint2(b[pictureCenterOff:], p.Center)
	putFloat32(b[pictureBearingOff:], p.Bearing)
	putFloat32(b[pictureWidthOff:], p.Width)
	putFloat32(b[pictureHeightOff:], p.Height)
	binary.LittleEndian.PutUint32(b[pictureTColorOff:], p.TransColor)
	binary.LittleEndian.PutUint32(b[pictureAlphaOff:], uint32(p.Alpha))
	for i, ri := range p.ResInfo {
		off := pictureResInfoOff + 12*i
		binary.LittleEndian.PutUint32(b[off:], ri.Present)
		binary.LittleEndian.PutUint32(b[off+4:], ri.Width)
		binary.LittleEndian.PutUint32(b[off+8:], ri.Height)
	}
	if err := putString(b[picturePathOff:picturePathOff+PicturePathLen], p.Path); err != nil {
		return nil, fmt.Errorf("bitmap path: %w", err)
	}
	return b, nil
}

// ParsePicture decodes a picture record from b.
func ParsePicture(b []byte) (Picture, error) {
	if len(b) < PictureSize {
		return Picture{}, fmt.Errorf("record: picture needs %d bytes, have %d", PictureSize, len(b))
	}
	h, err := ParseEntityHeader(b)
	if err != nil {
		return Picture{}, err
	}
	if id := binary.LittleEndian.Uint16(b[pictureXPIDOff:]); id != pictureXPID {
		return Picture{}, fmt.Errorf("record: not a picture record (XP id %#x)", id)
	}
	p := Picture{
		Header:       h,
		Version:      binary.LittleEndian.Uint32(b[pictureVersionOff:]),
		Flags:        binary.LittleEndian.Uint32(b[pictureFlagsOff:]),
		Mode:         binary.LittleEndian.Uint32(b[pictureModeOff:]),
		BitmapWidth:  binary.LittleEndian.Uint32(b[pictureBMWidthOff:]),
		BitmapHeight: binary.LittleEndian.Uint32(b[pictureBMHeightOff:]),
		Center:       point2At(b[pictureCenterOff:]),
		Bearing:      float32At(b[pictureBearingOff:]),
		Width:        float32At(b[pictureWidthOff:]),
		Height:       float32At(b[pictureHeightOff:]),
		TransColor:   binary.LittleEndian.Uint32(b[pictureTColorOff:]),
		Alpha:        int32(binary.LittleEndian.Uint32(b[pictureAlphaOff:])),
		Path:         stringAt(b[picturePathOff : picturePathOff+PicturePathLen]),
	}
	for i := range p.ResInfo {
		off := pictureResInfoOff + 12*i
		p.ResInfo[i] = ResInfo{
			Present: binary.LittleEndian.Uint32(b[off:]),
			Width:   binary.LittleEndian.Uint32(b[off+4:]),
			Height:  binary.LittleEndian.Uint32(b[off+8:]),
		}
	}
	return p, nil
}
