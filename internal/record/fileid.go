// Copyright 2026 The fsc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package record

import (
	"bytes"
	"fmt"
)

// FileIDSize is sizeof(FileID), the fixed catalog header.
const FileIDSize = 128

// File-header constants from the FastCAD v6 SDK (HEADER.CPY).  The padding
// and filler contents replicate a known-good reference file; CC3+ has not
// been observed to care about them, but byte-identical output is the goal.
const (
	fileIDProduct    = "FCW (FastCAD for Windows) " // 26 bytes
	fileIDVersion    = "6.20"                       // 4 bytes
	fileIDSubVersion = ".0"                         // 2 bytes

	// DatabaseVersion is DBVERSION in the SDK.
	DatabaseVersion = 24

	fileIDSentinel = 0xFF
)

const (
	fileIDProductOff    = 0
	fileIDVersionOff    = 26
	fileIDSubVersionOff = 30
	fileIDPaddingOff    = 32
	fileIDSpecialOff    = 44
	fileIDDBVersionOff  = 47
	fileIDCompressedOff = 48
	fileIDFillerOff     = 49
	fileIDSentinelOff   = 127
)

// 12 bytes observed in reference catalogs: CR LF EOF then the tail of a
// truncated "...ing file." string.
var fileIDPadding = []byte{0x0D, 0x0A, 0x1A, 'i', 'n', 'g', ' ', 'f', 'i', 'l', 'e', '.'}

// CR, LF, EOF: terminates the header text for the DOS "type" command.
var fileIDSpecial = []byte{13, 10, 26}

// FileID is the 128-byte header written once at the start of every catalog.
// Compressed stays 0: compression is deliberately unimplemented.
type FileID struct {
	DBVersion  byte
	Compressed byte
}

// NewFileID returns the header for the one database version this package
// targets.
func NewFileID() FileID {
	return FileID{DBVersion: DatabaseVersion}
}

// MarshalBytes serializes the header into a fresh FileIDSize-byte slice.
func (f *FileID) MarshalBytes() []byte {
	b := make([]byte, FileIDSize)
	copy(b[fileIDProductOff:], fileIDProduct)
	copy(b[fileIDVersionOff:], fileIDVersion)
	copy(b[fileIDSubVersionOff:], fileIDSubVersion)
	copy(b[fileIDPaddingOff:], fileIDPadding)
	copy(b[fileIDSpecialOff:], fileIDSpecial)
	b[fileIDDBVersionOff] = f.DBVersion
	b[fileIDCompressedOff] = f.Compressed
	// Filler bytes 64..74 hold a run of tildes in reference files.
	for i := 64; i <= 74; i++ {
		b[i] = '~'
	}
	b[fileIDSentinelOff] = fileIDSentinel
	return b
}

// ParseFileID validates and decodes a catalog header from b.
func ParseFileID(b []byte) (FileID, error) {
	if len(b) < FileIDSize {
		return FileID{}, fmt.Errorf("record: file header needs %d bytes, have %d", FileIDSize, len(b))
	}
	if !bytes.HasPrefix(b, []byte(fileIDProduct)) {
		return FileID{}, fmt.Errorf("record: bad product identifier %q -- not an FSC catalog", stringAt(b[:len(fileIDProduct)]))
	}
	if b[fileIDSentinelOff] != fileIDSentinel {
		return FileID{}, fmt.Errorf("record: missing %#x header sentinel", fileIDSentinel)
	}
	return FileID{
		DBVersion:  b[fileIDDBVersionOff],
		Compressed: b[fileIDCompressedOff],
	}, nil
}
