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

// NEON-model int8 kernels. The loops walk 16-element register-width blocks
// with fixed iteration counts; the arm64 backend turns the inner block into
// vector arithmetic. Accumulation is int32 throughout, matching the widening
// multiply-accumulate on real hardware.

func squaredL2I8NEON(a, b []int8) float32 {
	n := min(len(a), len(b))
	var d2 int32

	var i int
	for ; i+16 <= n; i += 16 {
		var block int32
		for j := 0; j < 16; j++ {
			d := int32(a[i+j]) - int32(b[i+j])
			block += d * d
		}
		d2 += block
	}
	for ; i < n; i++ {
		d := int32(a[i]) - int32(b[i])
		d2 += d * d
	}
	return float32(d2)
}

func cosineI8NEON(a, b []int8) float32 {
	n := min(len(a), len(b))
	var ab, a2, b2 int32

	var i int
	for ; i+16 <= n; i += 16 {
		var bab, ba2, bb2 int32
		for j := 0; j < 16; j++ {
			ai, bi := int32(a[i+j]), int32(b[i+j])
			bab += ai * bi
			ba2 += ai * ai
			bb2 += bi * bi
		}
		ab += bab
		a2 += ba2
		b2 += bb2
	}
	for ; i < n; i++ {
		ai, bi := int32(a[i]), int32(b[i])
		ab += ai * bi
		a2 += ai * ai
		b2 += bi * bi
	}
	return 1 - float32(ab)*approxInverseSqrt(float32(a2)*float32(b2))
}
