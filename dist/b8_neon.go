//go:build arm64

// Copyright 2025 go-vecdist Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dist

import (
	"encoding/binary"
	"math/bits"
)

// NEON-model binary kernels. Each step consumes one 128-bit register as two
// 64-bit words; bits.OnesCount64 compiles to CNT plus a horizontal add on
// arm64, so the word path never touches the lookup table. Bytes past the
// last full register fall back to the table.

func hammingB8NEON(a, b []byte) float32 {
	n := min(len(a), len(b))
	var diff uint64

	var i int
	for ; i+16 <= n; i += 16 {
		x0 := binary.LittleEndian.Uint64(a[i:]) ^ binary.LittleEndian.Uint64(b[i:])
		x1 := binary.LittleEndian.Uint64(a[i+8:]) ^ binary.LittleEndian.Uint64(b[i+8:])
		diff += uint64(bits.OnesCount64(x0) + bits.OnesCount64(x1))
	}
	for ; i < n; i++ {
		diff += uint64(popTable[a[i]^b[i]])
	}
	return float32(diff)
}

func jaccardB8NEON(a, b []byte) float32 {
	n := min(len(a), len(b))
	var inter, union uint64

	var i int
	for ; i+16 <= n; i += 16 {
		a0 := binary.LittleEndian.Uint64(a[i:])
		a1 := binary.LittleEndian.Uint64(a[i+8:])
		b0 := binary.LittleEndian.Uint64(b[i:])
		b1 := binary.LittleEndian.Uint64(b[i+8:])
		inter += uint64(bits.OnesCount64(a0&b0) + bits.OnesCount64(a1&b1))
		union += uint64(bits.OnesCount64(a0|b0) + bits.OnesCount64(a1|b1))
	}
	for ; i < n; i++ {
		inter += uint64(popTable[a[i]&b[i]])
		union += uint64(popTable[a[i]|b[i]])
	}
	if union == 0 {
		return 0
	}
	return 1 - float32(inter)/float32(union)
}
