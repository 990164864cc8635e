// Copyright 2026 The fsc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package fsc builds CC3+ symbol catalog (.FSC) files from directories of
// PNG images.  A catalog is a 128-byte file header, an optional opaque
// info-block region, and a sequence of symbol entities; every record is
// little-endian, densely packed, and prefixed with its own length.
//
// The usual flow is NewBuilder -> AddDirectory (one or more) -> Finalize.
// Symbols can also be assembled directly with NewSimpleSymbol and
// NewVaricolorSymbol, and finished catalogs inspected with OpenCatalog.
package fsc

// PixelsPerDrawingUnit converts PNG pixel sizes to CC3+ drawing units.
// It is defined by the target product, not derived from image metadata.
const PixelsPerDrawingUnit = 40
