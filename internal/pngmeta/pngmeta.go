// Copyright 2026 The fsc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package pngmeta extracts pixel dimensions from PNG files by inspecting
// the first 24 bytes: the 8-byte signature, the IHDR chunk length and tag,
// and the big-endian width and height.  It never decodes image data, so a
// PNG with a valid header and a truncated body still yields dimensions --
// matching what the consuming CAD application itself accepts.
package pngmeta

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotPNG indicates the file does not begin with a PNG signature and
// IHDR chunk.
var ErrNotPNG = errors.New("pngmeta: not a PNG file or corrupted header")

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

const probeLen = 24

// Dimensions returns the pixel width and height of the PNG at path.
func Dimensions(path string) (width, height uint32, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var hdr [probeLen]byte
	if _, err := io.ReadFull(f, hdr[:]); err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %v", ErrNotPNG, path, err)
	}
	if !bytes.HasPrefix(hdr[:], pngSignature) || !bytes.Equal(hdr[12:16], []byte("IHDR")) {
		return 0, 0, fmt.Errorf("%w: %s", ErrNotPNG, path)
	}
	width = binary.BigEndian.Uint32(hdr[16:20])
	height = binary.BigEndian.Uint32(hdr[20:24])
	return width, height, nil
}
