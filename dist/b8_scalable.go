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

import "github.com/velovec/go-vecdist/vx"

// Scalable binary kernels in the SVE style: no separate tail loop, every
// step loads through a prefix predicate sized to the remaining bytes, and
// advances by the runtime vector width. The width is whatever vx dispatch
// reports, so the same code serves any register size. Horizontal sums widen
// to 64 bits the way UADDV does, so uint8 popcount lanes cannot wrap.
//
// These kernels have no build tag: on SVE hardware they are the bound
// implementation, everywhere else they are the reference the fixed-width
// kernels are tested against.

func hammingB8Scalable(a, b []byte) float32 {
	n := min(len(a), len(b))
	width := vx.MaxLanes[uint8]()
	var diff uint64

	for i := 0; i < n; i += width {
		pg := vx.TailMask[uint8](n - i)
		va := vx.MaskLoad(pg, a[i:])
		vb := vx.MaskLoad(pg, b[i:])
		diff += vx.ReduceSumWide(vx.PopCount(vx.Xor(va, vb)))
	}
	return float32(diff)
}

func jaccardB8Scalable(a, b []byte) float32 {
	n := min(len(a), len(b))
	width := vx.MaxLanes[uint8]()
	var inter, union uint64

	for i := 0; i < n; i += width {
		pg := vx.TailMask[uint8](n - i)
		va := vx.MaskLoad(pg, a[i:])
		vb := vx.MaskLoad(pg, b[i:])
		inter += vx.ReduceSumWide(vx.PopCount(vx.And(va, vb)))
		union += vx.ReduceSumWide(vx.PopCount(vx.Or(va, vb)))
	}
	if union == 0 {
		return 0
	}
	return 1 - float32(inter)/float32(union)
}
