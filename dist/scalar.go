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

// Serial kernels. These are the portable reference implementations every
// SIMD kernel must agree with, and the fallback bound when no SIMD level is
// available.

// popTable maps a byte to its set-bit count. A table lookup beats per-byte
// bit tricks on targets without a population-count instruction.
var popTable = [256]uint8{
	0, 1, 1, 2, 1, 2, 2, 3, 1, 2, 2, 3, 2, 3, 3, 4,
	1, 2, 2, 3, 2, 3, 3, 4, 2, 3, 3, 4, 3, 4, 4, 5,
	1, 2, 2, 3, 2, 3, 3, 4, 2, 3, 3, 4, 3, 4, 4, 5,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	1, 2, 2, 3, 2, 3, 3, 4, 2, 3, 3, 4, 3, 4, 4, 5,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	3, 4, 4, 5, 4, 5, 5, 6, 4, 5, 5, 6, 5, 6, 6, 7,
	1, 2, 2, 3, 2, 3, 3, 4, 2, 3, 3, 4, 3, 4, 4, 5,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	3, 4, 4, 5, 4, 5, 5, 6, 4, 5, 5, 6, 5, 6, 6, 7,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	3, 4, 4, 5, 4, 5, 5, 6, 4, 5, 5, 6, 5, 6, 6, 7,
	3, 4, 4, 5, 4, 5, 5, 6, 4, 5, 5, 6, 5, 6, 6, 7,
	4, 5, 5, 6, 5, 6, 6, 7, 5, 6, 6, 7, 6, 7, 7, 8,
}

func squaredL2I8Serial(a, b []int8) float32 {
	n := min(len(a), len(b))
	var d2 int32
	for i := 0; i < n; i++ {
		d := int32(a[i]) - int32(b[i])
		d2 += d * d
	}
	return float32(d2)
}

func cosineI8Serial(a, b []int8) float32 {
	n := min(len(a), len(b))
	var ab, a2, b2 int32
	for i := 0; i < n; i++ {
		ai, bi := int32(a[i]), int32(b[i])
		ab += ai * bi
		a2 += ai * ai
		b2 += bi * bi
	}
	// Norms are deliberately not guarded. With zero inputs ab is 0 and the
	// approximate rsqrt of 0 is finite, so the result is exactly 1.
	return 1 - float32(ab)*approxInverseSqrt(float32(a2)*float32(b2))
}

func hammingB8Serial(a, b []byte) float32 {
	n := min(len(a), len(b))
	var diff uint32
	for i := 0; i < n; i++ {
		diff += uint32(popTable[a[i]^b[i]])
	}
	return float32(diff)
}

func jaccardB8Serial(a, b []byte) float32 {
	n := min(len(a), len(b))
	var inter, union uint32
	for i := 0; i < n; i++ {
		inter += uint32(popTable[a[i]&b[i]])
		union += uint32(popTable[a[i]|b[i]])
	}
	if union == 0 {
		return 0
	}
	return 1 - float32(inter)/float32(union)
}
