// Copyright 2026 The fsc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package legacy gates filenames on the single-byte encoding the target
// CAD application stores in its fixed-width name and path fields.
package legacy

import "unicode/utf8"

// Encodable reports whether name survives the legacy encoding unchanged.
// The check is strict 7-bit ASCII: anything else renders as garbage in the
// application's symbol browser.
func Encodable(name string) bool {
	for i := 0; i < len(name); i++ {
		if name[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
