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

import "github.com/velovec/go-vecdist/vx"

func init() {
	switch vx.CurrentLevel() {
	case vx.DispatchSVE:
		// SVE covers the binary kernels; int8 arithmetic stays on the
		// NEON-model path, which every SVE machine also executes well.
		implSquaredL2I8 = squaredL2I8NEON
		implCosineI8 = cosineI8NEON
		implHammingB8 = hammingB8Scalable
		implJaccardB8 = jaccardB8Scalable
		backendName = "sve"
	case vx.DispatchNEON:
		implSquaredL2I8 = squaredL2I8NEON
		implCosineI8 = cosineI8NEON
		implHammingB8 = hammingB8NEON
		implJaccardB8 = jaccardB8NEON
		backendName = "neon"
	}
}
