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

import "github.com/chewxy/math32"

// Portable float32 kernels. Unlike the int8 path, the float32 cosine uses an
// exact square root; the inputs are full-precision, so there is no quantized
// dot product to hide the rsqrt error behind.

func squaredL2F32Base(a, b []float32) float32 {
	n := min(len(a), len(b))
	var d2 float32
	for i := 0; i < n; i++ {
		d := a[i] - b[i]
		d2 += d * d
	}
	return d2
}

func cosineF32Base(a, b []float32) float32 {
	n := min(len(a), len(b))
	var ab, a2, b2 float32
	for i := 0; i < n; i++ {
		ab += a[i] * b[i]
		a2 += a[i] * a[i]
		b2 += b[i] * b[i]
	}
	return cosineFromSums(ab, a2, b2)
}

func dotF32Base(a, b []float32) float32 {
	n := min(len(a), len(b))
	var ab float32
	for i := 0; i < n; i++ {
		ab += a[i] * b[i]
	}
	return ab
}

// cosineFromSums turns the three accumulated sums into a cosine distance.
// Zero-norm inputs give distance 1, consistent with the int8 kernel.
func cosineFromSums(ab, a2, b2 float32) float32 {
	denom := math32.Sqrt(a2 * b2)
	if denom == 0 {
		return 1
	}
	return 1 - ab/denom
}
