// Copyright 2026 The fsc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package record

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Record dumps captured from a catalog produced by CC3+ itself; the
// authoritative check that our offsets line up with the real format.

const symbolDefDump = `
580000001c0000e0e00000000001000000000100000000000b2c000081f317b4
38334fc0000000006666d94133334f400000000000000000576f6f647065636b
6572205768616c6520766172690000000000000000000000`

const symbolInfoDump = `
96010000040000e0e0000000070100000000010000000000732c00000ba06101
0004000000000000000000000000000000000000000000803f0000803f000080
3f0000803f000000000000000000000000000000000000000000000000000000
0000000000000000000000000000000000000000000000000000000000000000
0000000000000000000000000000000000000000000000000000000000000000
0000000000000000000000000000000000000000000000000000000000000000
0000000000000000000000000000000000000000000000000000000000000000
0000000000000000000000000000000000000000000000000000000000000000
0000000000000000000000000000000000000000000000000000000000000000
0000000000000000000000000000000000000000000000000000000000000000
0000000000000000000000000000000000000000000000000000000000000000
0000000000000000000000000000000000000000000000000000000000000000
00000000000000000000000000000000000000000000`

const pictureDump = `
ff010000040800e0e00000000001000000000100000000000e2c000004a00100
0000000d00000002000000000000000000000066665941000000000000000066
66594133334f4000000000000000000000000000000000000000000000000000
0000000000000000000000000000000000000000000000000000000000000000
0000000000000000000000000000000000000000000000000000000000000000
0000000000000000000000000000000000000000000000000000000000000000
0000000000000000000000000000000000000000000000000000000000000000
0000000000000000000000000000000000000000000000000000000000000043
3a5c55736572735c6e6f7370615c446f776e6c6f6164735c686572652d746865
72652d62652d6d6f6e73746572732d312e315c48657265205468657265204265
204d6f6e737465727320312e315c504e475c576f6f647065636b657220576861
6c6520766172695f30322e706e6700006e670067006e67006e67000000670000
0000000000000000000000000000000000000000000000000000000000000000
0000000000000000000000000000000000000000000000000000000000000000
0000000000000000000000000000000000000000000000000000000000000000
00000000000000000000000000000000000000000000000000000000000000`

func mustUnhex(t *testing.T, dump string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(strings.TrimSpace(dump), "\n", ""))
	require.NoError(t, err)
	return b
}
