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
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Lengths around every register-width boundary the backends care about:
// 8/16 (AVX2 int8 step, NEON), 32, 64 (AVX-512 chunk), plus odd tails.
var testLengths = []int{0, 1, 7, 8, 15, 16, 17, 31, 32, 33, 63, 64, 65, 127, 128, 129, 1000}

func randI8(rng *rand.Rand, n int) []int8 {
	v := make([]int8, n)
	for i := range v {
		v[i] = int8(rng.Intn(256) - 128)
	}
	return v
}

func randB8(rng *rand.Rand, n int) []byte {
	v := make([]byte, n)
	rng.Read(v)
	return v
}

func randF32(rng *rand.Rand, n int) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = rng.Float32()*2 - 1
	}
	return v
}

func TestMetricString(t *testing.T) {
	assert.Equal(t, "l2sq", L2Squared.String())
	assert.Equal(t, "cos", Cosine.String())
	assert.Equal(t, "ip", InnerProduct.String())
	assert.Equal(t, "hamming", Hamming.String())
	assert.Equal(t, "jaccard", Jaccard.String())
	assert.Equal(t, "unknown", Metric(99).String())
}

func TestProviders(t *testing.T) {
	for _, m := range []Metric{L2Squared, Cosine, InnerProduct} {
		k, err := ProviderI8(m)
		require.NoError(t, err, "ProviderI8(%s)", m)
		require.NotNil(t, k)
	}
	for _, m := range []Metric{Hamming, Jaccard} {
		k, err := ProviderB8(m)
		require.NoError(t, err, "ProviderB8(%s)", m)
		require.NotNil(t, k)
	}
	for _, m := range []Metric{L2Squared, Cosine, InnerProduct} {
		k, err := ProviderF32(m)
		require.NoError(t, err, "ProviderF32(%s)", m)
		require.NotNil(t, k)
	}

	_, err := ProviderI8(Hamming)
	require.ErrorIs(t, err, ErrUnsupportedMetric)
	_, err = ProviderB8(Cosine)
	require.ErrorIs(t, err, ErrUnsupportedMetric)
	_, err = ProviderF32(Jaccard)
	require.ErrorIs(t, err, ErrUnsupportedMetric)
}

func TestBackendReported(t *testing.T) {
	require.NotEmpty(t, Backend())
}

func TestInnerProductI8AliasesCosine(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range testLengths {
		a, b := randI8(rng, n), randI8(rng, n)
		require.Equal(t, CosineI8(a, b), InnerProductI8(a, b), "n=%d", n)
	}

	cosK, err := ProviderI8(Cosine)
	require.NoError(t, err)
	ipK, err := ProviderI8(InnerProduct)
	require.NoError(t, err)
	a, b := randI8(rng, 256), randI8(rng, 256)
	require.Equal(t, cosK(a, b), ipK(a, b))
}

// TestI8BackendAgreement checks the bound int8 kernels against the serial
// reference. Integer accumulation is order-independent, so agreement is
// exact.
func TestI8BackendAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, n := range testLengths {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a, b := randI8(rng, n), randI8(rng, n)
			require.Equal(t, squaredL2I8Serial(a, b), SquaredL2I8(a, b))
			require.Equal(t, cosineI8Serial(a, b), CosineI8(a, b))
		})
	}
}

func TestB8BackendAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for _, n := range testLengths {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a, b := randB8(rng, n), randB8(rng, n)
			require.Equal(t, hammingB8Serial(a, b), HammingB8(a, b))
			require.Equal(t, jaccardB8Serial(a, b), JaccardB8(a, b))
		})
	}
}

// TestScalableB8Agreement runs the predicate-driven kernels on every
// architecture, not just where they end up bound.
func TestScalableB8Agreement(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for _, n := range testLengths {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a, b := randB8(rng, n), randB8(rng, n)
			require.Equal(t, hammingB8Serial(a, b), hammingB8Scalable(a, b))
			require.Equal(t, jaccardB8Serial(a, b), jaccardB8Scalable(a, b))
		})
	}
}

func TestF32BackendAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	for _, n := range testLengths {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a, b := randF32(rng, n), randF32(rng, n)

			// Vector lanes sum in a different order than the serial loop,
			// so allow a small relative slack that scales with the result.
			wantL2 := squaredL2F32Base(a, b)
			assert.InDelta(t, wantL2, SquaredL2F32(a, b), 1e-3+1e-4*math.Abs(float64(wantL2)))
			assert.InDelta(t, cosineF32Base(a, b), CosineF32(a, b), 1e-3)
			assert.InDelta(t, dotF32Base(a, b), DotF32(a, b), 1e-2)
		})
	}
}

func TestKnownScenarios(t *testing.T) {
	t.Run("zero vectors", func(t *testing.T) {
		a := make([]int8, 40)
		require.Equal(t, float32(0), SquaredL2I8(a, a))
		// Degenerate zero-norm case: the unguarded approximation yields 1.
		require.Equal(t, float32(1), CosineI8(a, a))
	})

	t.Run("one-hot at different positions", func(t *testing.T) {
		a := make([]int8, 35)
		b := make([]int8, 35)
		a[0], b[1] = 1, 1
		require.Equal(t, float32(2), SquaredL2I8(a, b))
	})

	t.Run("single differing bit", func(t *testing.T) {
		a := make([]byte, 16) // two aligned 64-bit words
		b := make([]byte, 16)
		a[3] = 0b0110_0000
		b[3] = 0b0110_0000
		b[9] = 0b0000_0100 // the extra bit, union has k=3 set bits
		require.Equal(t, float32(1), HammingB8(a, b))
		require.Equal(t, 1-float32(2)/float32(3), JaccardB8(a, b))
	})

	t.Run("all ones vs all zeros", func(t *testing.T) {
		n := 24
		ones := make([]byte, n)
		zeros := make([]byte, n)
		for i := range ones {
			ones[i] = 0xFF
		}
		require.Equal(t, float32(8*n), HammingB8(ones, zeros))
		require.Equal(t, float32(1), JaccardB8(ones, zeros))
	})

	t.Run("identity distances", func(t *testing.T) {
		rng := rand.New(rand.NewSource(37))
		a := randI8(rng, 301)
		require.Equal(t, float32(0), SquaredL2I8(a, a))
		s := randB8(rng, 77)
		require.Equal(t, float32(0), HammingB8(s, s))
		require.Equal(t, float32(0), JaccardB8(s, s))
	})
}

func TestHammingB8Symmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	a, b := randB8(rng, 257), randB8(rng, 257)
	require.Equal(t, HammingB8(a, b), HammingB8(b, a))
	require.Equal(t, JaccardB8(a, b), JaccardB8(b, a))
}

func TestJaccardB8Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	for _, n := range testLengths {
		a, b := randB8(rng, n), randB8(rng, n)
		d := JaccardB8(a, b)
		assert.GreaterOrEqual(t, d, float32(0), "n=%d", n)
		assert.LessOrEqual(t, d, float32(1), "n=%d", n)
	}
}

func TestCosineI8ZeroNorm(t *testing.T) {
	zero := make([]int8, 128)
	require.Equal(t, float32(1), CosineI8(zero, zero))

	a := randI8(rand.New(rand.NewSource(31)), 128)
	got := CosineI8(a, zero)
	require.False(t, math.IsNaN(float64(got)), "zero-norm cosine must stay finite")
	require.Equal(t, float32(1), got)
}

func TestCosineF32ZeroNorm(t *testing.T) {
	zero := make([]float32, 64)
	require.Equal(t, float32(1), CosineF32(zero, zero))
}
