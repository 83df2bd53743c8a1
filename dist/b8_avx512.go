//go:build amd64 && goexperiment.simd

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

	"simd/archsimd"
)

// AVX-512 binary kernels. Vectors are consumed in 512-bit chunks of eight
// 64-bit words; a short final chunk is zero-padded before loading, which is
// harmless for XOR, AND, and OR popcounts because zero words contribute no
// bits. Per-lane popcount uses the store/scalar/load pattern so the kernels
// do not depend on the VPOPCNTDQ extension.

// loadUint64x8 loads 64 bytes starting at src[0] as eight little-endian
// words.
func loadUint64x8(src []byte) archsimd.Uint64x8 {
	var words [8]uint64
	for i := 0; i < 8; i++ {
		words[i] = binary.LittleEndian.Uint64(src[i*8:])
	}
	return archsimd.LoadUint64x8Slice(words[:])
}

// loadUint64x8Padded loads up to 64 bytes, padding the missing tail with
// zero.
func loadUint64x8Padded(src []byte) archsimd.Uint64x8 {
	var buf [64]byte
	copy(buf[:], src)
	return loadUint64x8(buf[:])
}

// popcountUint64x8 counts set bits in each lane.
func popcountUint64x8(v archsimd.Uint64x8) archsimd.Uint64x8 {
	var data [8]uint64
	v.StoreSlice(data[:])
	for i := 0; i < 8; i++ {
		data[i] = uint64(bits.OnesCount64(data[i]))
	}
	return archsimd.LoadUint64x8Slice(data[:])
}

// reduceUint64x8 sums all lanes to a scalar.
func reduceUint64x8(v archsimd.Uint64x8) uint64 {
	var data [8]uint64
	v.StoreSlice(data[:])
	var sum uint64
	for i := 0; i < 8; i++ {
		sum += data[i]
	}
	return sum
}

func hammingB8AVX512(a, b []byte) float32 {
	n := min(len(a), len(b))
	acc := archsimd.BroadcastUint64x8(0)

	var i int
	for ; i+64 <= n; i += 64 {
		x := loadUint64x8(a[i:]).Xor(loadUint64x8(b[i:]))
		acc = acc.Add(popcountUint64x8(x))
	}
	if i < n {
		x := loadUint64x8Padded(a[i:n]).Xor(loadUint64x8Padded(b[i:n]))
		acc = acc.Add(popcountUint64x8(x))
	}
	return float32(reduceUint64x8(acc))
}

func jaccardB8AVX512(a, b []byte) float32 {
	n := min(len(a), len(b))
	accInter := archsimd.BroadcastUint64x8(0)
	accUnion := archsimd.BroadcastUint64x8(0)

	var i int
	for ; i+64 <= n; i += 64 {
		va := loadUint64x8(a[i:])
		vb := loadUint64x8(b[i:])
		accInter = accInter.Add(popcountUint64x8(va.And(vb)))
		accUnion = accUnion.Add(popcountUint64x8(va.Or(vb)))
	}
	if i < n {
		va := loadUint64x8Padded(a[i:n])
		vb := loadUint64x8Padded(b[i:n])
		accInter = accInter.Add(popcountUint64x8(va.And(vb)))
		accUnion = accUnion.Add(popcountUint64x8(va.Or(vb)))
	}

	inter := reduceUint64x8(accInter)
	union := reduceUint64x8(accUnion)
	if union == 0 {
		return 0
	}
	return 1 - float32(inter)/float32(union)
}
