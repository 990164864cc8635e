// Copyright 2026 The fsc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package record

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileIDLayout(t *testing.T) {
	f := NewFileID()
	b := f.MarshalBytes()
	require.Len(t, b, FileIDSize)

	assert.True(t, bytes.HasPrefix(b, []byte("FCW (FastCAD for Windows) ")))
	assert.Equal(t, []byte("6.20"), b[26:30])
	assert.Equal(t, []byte(".0"), b[30:32])
	assert.Equal(t, []byte{0x0D, 0x0A, 0x1A}, b[32:35])
	assert.Equal(t, []byte("ing file."), b[35:44])
	assert.Equal(t, []byte{13, 10, 26}, b[44:47])
	assert.Equal(t, byte(DatabaseVersion), b[47])
	assert.Equal(t, byte(0), b[48], "compressed flag is always 0")
	assert.Equal(t, bytes.Repeat([]byte{'~'}, 11), b[64:75])
	assert.Equal(t, byte(0xFF), b[127])

	for _, i := range []int{49, 63, 75, 100, 126} {
		assert.Zero(t, b[i], "filler byte %d", i)
	}
}

func TestFileIDParse(t *testing.T) {
	f := NewFileID()
	got, err := ParseFileID(f.MarshalBytes())
	require.NoError(t, err)
	assert.Equal(t, f, got)
}

func TestFileIDParseRejectsForeignData(t *testing.T) {
	_, err := ParseFileID(make([]byte, FileIDSize))
	require.Error(t, err)

	f := NewFileID()
	b := f.MarshalBytes()
	b[127] = 0
	_, err = ParseFileID(b)
	require.Error(t, err)

	_, err = ParseFileID(b[:100])
	require.Error(t, err)
}
