// Copyright 2026 The fsc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package record

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutStringPadsWithZeros(t *testing.T) {
	b := make([]byte, 8)
	require.NoError(t, putString(b, "abc"))
	assert.Equal(t, []byte{'a', 'b', 'c', 0, 0, 0, 0, 0}, b)
}

func TestPutStringExactFit(t *testing.T) {
	b := make([]byte, 4)
	require.NoError(t, putString(b, "abcd"))
	assert.Equal(t, []byte("abcd"), b)
}

func TestPutStringTooLong(t *testing.T) {
	b := make([]byte, 4)
	err := putString(b, "abcde")
	require.ErrorIs(t, err, ErrFieldTooLong)
}

func TestStringAtStopsAtNUL(t *testing.T) {
	assert.Equal(t, "abc", stringAt([]byte{'a', 'b', 'c', 0, 'x', 0}))
	assert.Equal(t, "abcd", stringAt([]byte("abcd")))
}

func TestFloat32RoundTrip(t *testing.T) {
	b := make([]byte, 4)
	putFloat32(b, 27.175)
	assert.Equal(t, float32(27.175), float32At(b))
}

func TestSymbolNameOverflowSurfacesFieldError(t *testing.T) {
	d := NewSymbolDef(strings.Repeat("x", SymbolNameLen+1), Point3{})
	_, err := d.MarshalBytes()
	require.ErrorIs(t, err, ErrFieldTooLong)

	d = NewSymbolDef(strings.Repeat("x", SymbolNameLen), Point3{})
	_, err = d.MarshalBytes()
	require.NoError(t, err)
}

func TestPicturePathOverflowSurfacesFieldError(t *testing.T) {
	p := NewPicture(strings.Repeat("p", PicturePathLen+1), 1, 1)
	_, err := p.MarshalBytes()
	require.ErrorIs(t, err, ErrFieldTooLong)
}
