// Copyright 2026 The fsc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package record

import "encoding/binary"

// MarkerSize is the size of a boundary marker: a 4-byte record length
// (always 5) followed by a 1-byte marker type.
const MarkerSize = 5

const (
	markerTypeStart = 0
	markerTypeEnd   = 1
)

func marker(markerType byte) []byte {
	b := make([]byte, MarkerSize)
	binary.LittleEndian.PutUint32(b, MarkerSize)
	b[4] = markerType
	return b
}

// StartMarker returns the 5-byte marker that opens a symbol entity.
func StartMarker() []byte { return marker(markerTypeStart) }

// EndMarker returns the 5-byte marker that closes a symbol entity.
func EndMarker() []byte { return marker(markerTypeEnd) }
