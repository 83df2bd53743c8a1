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

import "math"

// approxInverseSqrt computes 1/sqrt(x) with a bit-level initial guess
// followed by one Newton-Raphson step. The magic constant and the step
// coefficients are Jan Kadlec's refinement of the classic 0x5F3759DF trick;
// relative error stays within about 6.5e-4 for positive finite x.
//
// At x == 0 the guess is a large finite number rather than +Inf. The int8
// cosine kernel relies on that: with zero-norm inputs the dot product is 0,
// so 1 - 0*rsqrt(0) is exactly 1 instead of NaN.
func approxInverseSqrt(x float32) float32 {
	i := math.Float32bits(x)
	i = 0x5F1FFFF9 - i>>1
	y := math.Float32frombits(i)
	return y * 0.703952253 * (2.38924456 - x*y*y)
}
