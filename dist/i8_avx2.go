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

import "simd/archsimd"

// AVX2 int8 kernels. Each iteration consumes 32 elements as two 16-lane
// int16 halves; DotProductPairs multiplies adjacent 16-bit pairs and sums them
// into 32-bit lanes, so products accumulate without overflow (a pair sum is
// at most 2*127*127). The widening int8 load goes through the
// store/scalar/load pattern, archsimd has no sign-extending byte load.
//
// There are no masked loads at 256 bits; the tail is a plain scalar loop
// added onto the already-reduced totals.

// loadInt8AsInt16x16 widens 16 int8 elements starting at src[0].
func loadInt8AsInt16x16(src []int8) archsimd.Int16x16 {
	var data [16]int16
	for i := 0; i < 16; i++ {
		data[i] = int16(src[i])
	}
	return archsimd.LoadInt16x16Slice(data[:])
}

// reduceInt32x8 sums all lanes to a scalar.
func reduceInt32x8(v archsimd.Int32x8) int32 {
	var data [8]int32
	v.StoreSlice(data[:])
	var sum int32
	for i := 0; i < 8; i++ {
		sum += data[i]
	}
	return sum
}

func squaredL2I8AVX2(a, b []int8) float32 {
	n := min(len(a), len(b))
	acc := archsimd.BroadcastInt32x8(0)

	var i int
	for ; i+32 <= n; i += 32 {
		for _, off := range [2]int{0, 16} {
			d := loadInt8AsInt16x16(a[i+off:]).Sub(loadInt8AsInt16x16(b[i+off:]))
			acc = acc.Add(d.DotProductPairs(d))
		}
	}
	d2 := reduceInt32x8(acc)

	for ; i < n; i++ {
		d := int32(a[i]) - int32(b[i])
		d2 += d * d
	}
	return float32(d2)
}

func cosineI8AVX2(a, b []int8) float32 {
	n := min(len(a), len(b))
	accAB := archsimd.BroadcastInt32x8(0)
	accA2 := archsimd.BroadcastInt32x8(0)
	accB2 := archsimd.BroadcastInt32x8(0)

	var i int
	for ; i+32 <= n; i += 32 {
		for _, off := range [2]int{0, 16} {
			va := loadInt8AsInt16x16(a[i+off:])
			vb := loadInt8AsInt16x16(b[i+off:])
			accAB = accAB.Add(va.DotProductPairs(vb))
			accA2 = accA2.Add(va.DotProductPairs(va))
			accB2 = accB2.Add(vb.DotProductPairs(vb))
		}
	}
	ab := reduceInt32x8(accAB)
	a2 := reduceInt32x8(accA2)
	b2 := reduceInt32x8(accB2)

	for ; i < n; i++ {
		ai, bi := int32(a[i]), int32(b[i])
		ab += ai * bi
		a2 += ai * ai
		b2 += bi * bi
	}
	return 1 - float32(ab)*approxInverseSqrt(float32(a2)*float32(b2))
}
