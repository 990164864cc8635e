// Copyright 2026 The fsc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package record

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrFieldTooLong is returned when text does not fit its fixed-width field.
// Overlong names and paths are rejected at construction time rather than
// silently truncated.
var ErrFieldTooLong = errors.New("record: text too long for fixed-width field")

// Point2 is a 2D coordinate, serialized as two 32-bit floats.
type Point2 struct {
	X, Y float32
}

// Point3 is a 3D coordinate, serialized as three 32-bit floats.
type Point3 struct {
	X, Y, Z float32
}

// putString copies s into the fixed-width field b, zero-padding on the
// right.  b must already be zeroed.
func putString(b []byte, s string) error {
	if len(s) > len(b) {
		return fmt.Errorf("%w: %q needs %d bytes, field holds %d", ErrFieldTooLong, s, len(s), len(b))
	}
	copy(b, s)
	return nil
}

// stringAt returns the contents of a fixed-width field up to its first NUL.
func stringAt(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

func putFloat32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func float32At(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func putPoint2(b []byte, p Point2) {
	putFloat32(b[0:4], p.X)
	putFloat32(b[4:8], p.Y)
}

func point2At(b []byte) Point2 {
	return Point2{X: float32At(b[0:4]), Y: float32At(b[4:8])}
}

func putPoint3(b []byte, p Point3) {
	putFloat32(b[0:4], p.X)
	putFloat32(b[4:8], p.Y)
	putFloat32(b[8:12], p.Z)
}

func point3At(b []byte) Point3 {
	return Point3{X: float32At(b[0:4]), Y: float32At(b[4:8]), Z: float32At(b[8:12])}
}
