// Copyright 2026 The fsc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package record encodes the fixed-layout binary records that make up a
// CC3+ symbol catalog (.FSC).  Every record serializes little-endian with
// no padding between fields, and every record's first four bytes are its
// own total length.  Field offsets and default values come from the
// FastCAD v6 SDK headers and must not change: the output has to be
// byte-compatible with the third-party reader.
package record
