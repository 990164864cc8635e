// Copyright 2026 The fsc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package fsc

import (
	"fmt"

	"github.com/mapforge/fsc/internal/pngmeta"
	"github.com/mapforge/fsc/internal/record"
)

// Symbol is one assembled catalog entry: a symbol-definition record, a
// start marker, one or two picture records, a symbol-info record, and an
// end marker, serialized back to back.  Symbols are immutable once built.
type Symbol struct {
	name string
	data []byte
}

// Name returns the symbol's catalog name.
func (s *Symbol) Name() string { return s.name }

// Size returns the serialized length in bytes.
func (s *Symbol) Size() int { return len(s.data) }

// Bytes returns the serialized symbol.  The slice is the symbol's backing
// store and must not be modified.
func (s *Symbol) Bytes() []byte { return s.data }

// NewSimpleSymbol assembles a single-image symbol named name from the PNG
// at imagePath.  If grouped is set, the symbol is marked as one of several
// random-selection alternates in a symbol group.
//
// The image file is only probed for its dimensions; the catalog stores the
// path, not the pixels.  A missing or non-PNG file fails the whole
// construction: no partial symbol is ever produced.
func NewSimpleSymbol(name, imagePath string, grouped bool) (*Symbol, error) {
	w, h, err := pngmeta.Dimensions(imagePath)
	if err != nil {
		return nil, fmt.Errorf("symbol %q: %w", name, err)
	}
	extent := extentFor(w, h)

	def := record.NewSymbolDef(name, extent)
	pic := record.NewPicture(imagePath, extent.X, extent.Y)

	info := record.NewSymbolInfo()
	info.ScaleAX, info.ScaleBX = 1.0, 1.0
	info.ScaleAY, info.ScaleBY = 1.0, 1.0
	if grouped {
		info.Flags |= record.SymGrouped
		info.GroupFlags |= record.GroupRandom
	}

	return assemble(name, &def, &info, &pic)
}

// NewVaricolorSymbol assembles a two-image symbol: imagePath1 is the color
// source and imagePath2 the per-layer colorization mask.  Extents come from
// the first image only.  If grouped is set, the symbol additionally joins a
// varicolor random-selection group.
func NewVaricolorSymbol(name, imagePath1, imagePath2 string, grouped bool) (*Symbol, error) {
	w, h, err := pngmeta.Dimensions(imagePath1)
	if err != nil {
		return nil, fmt.Errorf("symbol %q: %w", name, err)
	}
	extent := extentFor(w, h)

	def := record.NewSymbolDef(name, extent)
	pic1 := record.NewPicture(imagePath1, extent.X, extent.Y)

	w2, h2, err := pngmeta.Dimensions(imagePath2)
	if err != nil {
		return nil, fmt.Errorf("symbol %q: %w", name, err)
	}
	pic2 := record.NewPicture(imagePath2, float32(w2)/PixelsPerDrawingUnit, float32(h2)/PixelsPerDrawingUnit)
	// The mask picture takes its color from the placing SYMREF.
	pic2.Header.Flags |= record.EntityFlagColorFromRef

	info := record.NewSymbolInfo()
	info.Flags = record.SymVaricolor
	info.ScaleAX, info.ScaleBX = 1.0, 1.0
	info.ScaleAY, info.ScaleBY = 1.0, 1.0
	if grouped {
		info.Flags |= record.SymGrouped
		info.GroupFlags |= record.GroupVaricolor | record.GroupRandom
	}

	return assemble(name, &def, &info, &pic1, &pic2)
}

func extentFor(widthPx, heightPx uint32) record.Point3 {
	return record.Point3{
		X: float32(widthPx) / PixelsPerDrawingUnit,
		Y: float32(heightPx) / PixelsPerDrawingUnit,
	}
}

func assemble(name string, def *record.SymbolDef, info *record.SymbolInfo, pics ...*record.Picture) (*Symbol, error) {
	data := make([]byte, 0, record.SymbolDefSize+2*record.MarkerSize+len(pics)*record.PictureSize+record.SymbolInfoSize)

	b, err := def.MarshalBytes()
	if err != nil {
		return nil, fmt.Errorf("symbol %q: %w", name, err)
	}
	data = append(data, b...)
	data = append(data, record.StartMarker()...)
	for _, pic := range pics {
		if b, err = pic.MarshalBytes(); err != nil {
			return nil, fmt.Errorf("symbol %q: %w", name, err)
		}
		data = append(data, b...)
	}
	if b, err = info.MarshalBytes(); err != nil {
		return nil, fmt.Errorf("symbol %q: %w", name, err)
	}
	data = append(data, b...)
	data = append(data, record.EndMarker()...)

	return &Symbol{name: name, data: data}, nil
}
