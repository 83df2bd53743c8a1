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

import "github.com/velovec/go-vecdist/vx"

func init() {
	// vx init runs first and already honors VECDIST_NO_SIMD.
	switch vx.CurrentLevel() {
	case vx.DispatchAVX512:
		implSquaredL2I8 = squaredL2I8AVX2
		implCosineI8 = cosineI8AVX2
		implHammingB8 = hammingB8AVX512
		implJaccardB8 = jaccardB8AVX512
		implSquaredL2F32 = squaredL2F32AVX512
		implCosineF32 = cosineF32AVX512
		implDotF32 = dotF32AVX512
		backendName = "avx512"
	case vx.DispatchAVX2:
		implSquaredL2I8 = squaredL2I8AVX2
		implCosineI8 = cosineI8AVX2
		implSquaredL2F32 = squaredL2F32AVX2
		implCosineF32 = cosineF32AVX2
		implDotF32 = dotF32AVX2
		backendName = "avx2"
	}
}
