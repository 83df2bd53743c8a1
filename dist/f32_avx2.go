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

// AVX2 float32 kernels: eight lanes per step, scalar tail.

func reduceFloat32x8(v archsimd.Float32x8) float32 {
	var data [8]float32
	v.StoreSlice(data[:])
	var sum float32
	for i := 0; i < 8; i++ {
		sum += data[i]
	}
	return sum
}

func squaredL2F32AVX2(a, b []float32) float32 {
	n := min(len(a), len(b))
	acc := archsimd.BroadcastFloat32x8(0)

	var i int
	for ; i+8 <= n; i += 8 {
		d := archsimd.LoadFloat32x8Slice(a[i : i+8]).Sub(archsimd.LoadFloat32x8Slice(b[i : i+8]))
		acc = d.MulAdd(d, acc)
	}
	d2 := reduceFloat32x8(acc)

	for ; i < n; i++ {
		d := a[i] - b[i]
		d2 += d * d
	}
	return d2
}

func cosineF32AVX2(a, b []float32) float32 {
	n := min(len(a), len(b))
	accAB := archsimd.BroadcastFloat32x8(0)
	accA2 := archsimd.BroadcastFloat32x8(0)
	accB2 := archsimd.BroadcastFloat32x8(0)

	var i int
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i : i+8])
		vb := archsimd.LoadFloat32x8Slice(b[i : i+8])
		accAB = va.MulAdd(vb, accAB)
		accA2 = va.MulAdd(va, accA2)
		accB2 = vb.MulAdd(vb, accB2)
	}
	ab := reduceFloat32x8(accAB)
	a2 := reduceFloat32x8(accA2)
	b2 := reduceFloat32x8(accB2)

	for ; i < n; i++ {
		ab += a[i] * b[i]
		a2 += a[i] * a[i]
		b2 += b[i] * b[i]
	}
	return cosineFromSums(ab, a2, b2)
}

func dotF32AVX2(a, b []float32) float32 {
	n := min(len(a), len(b))
	acc := archsimd.BroadcastFloat32x8(0)

	var i int
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i : i+8])
		vb := archsimd.LoadFloat32x8Slice(b[i : i+8])
		acc = va.MulAdd(vb, acc)
	}
	ab := reduceFloat32x8(acc)

	for ; i < n; i++ {
		ab += a[i] * b[i]
	}
	return ab
}
