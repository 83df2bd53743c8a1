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
	"errors"
	"fmt"
)

// ErrUnsupportedMetric is returned by the Provider lookups when a metric has
// no kernel for the requested vector type.
var ErrUnsupportedMetric = errors.New("unsupported metric")

// Metric identifies a distance or similarity measure.
type Metric int

const (
	// L2Squared is the squared Euclidean distance.
	L2Squared Metric = iota

	// Cosine is the cosine distance 1 - cos(a, b).
	Cosine

	// InnerProduct is the inner-product distance. For int8 vectors it is
	// served by the cosine kernel; see ProviderI8.
	InnerProduct

	// Hamming is the number of differing bits between two binary vectors.
	Hamming

	// Jaccard is 1 - |a AND b| / |a OR b| over two binary vectors.
	Jaccard
)

// String returns the canonical lowercase name of the metric.
func (m Metric) String() string {
	switch m {
	case L2Squared:
		return "l2sq"
	case Cosine:
		return "cos"
	case InnerProduct:
		return "ip"
	case Hamming:
		return "hamming"
	case Jaccard:
		return "jaccard"
	default:
		return "unknown"
	}
}

// I8Kernel computes a metric over two int8 vectors.
// It reads min(len(a), len(b)) elements.
type I8Kernel func(a, b []int8) float32

// B8Kernel computes a metric over two bit-packed binary vectors.
// It reads min(len(a), len(b)) bytes, each holding 8 bits.
type B8Kernel func(a, b []byte) float32

// F32Kernel computes a metric over two float32 vectors.
// It reads min(len(a), len(b)) elements.
type F32Kernel func(a, b []float32) float32

// Kernel function variables. They default to the portable serial kernels and
// are rebound once during package init by the impl_*.go file for the running
// architecture. Nothing reassigns them after init, so reads are race-free.
var (
	implSquaredL2I8 I8Kernel = squaredL2I8Serial
	implCosineI8    I8Kernel = cosineI8Serial

	implHammingB8 B8Kernel = hammingB8Serial
	implJaccardB8 B8Kernel = jaccardB8Serial

	implSquaredL2F32 F32Kernel = squaredL2F32Base
	implCosineF32    F32Kernel = cosineF32Base
	implDotF32       F32Kernel = dotF32Base

	backendName = "serial"
)

// Backend returns the name of the kernel set bound at startup,
// e.g. "serial", "avx2", "avx512", "neon", "sve".
func Backend() string {
	return backendName
}

// SquaredL2I8 returns the squared Euclidean distance between two int8
// vectors.
func SquaredL2I8(a, b []int8) float32 {
	return implSquaredL2I8(a, b)
}

// CosineI8 returns the cosine distance 1 - cos(a, b) between two int8
// vectors. The norms are not guarded: when both inputs are zero vectors the
// result is 1, a consequence of the approximate reciprocal square root
// staying finite at zero.
func CosineI8(a, b []int8) float32 {
	return implCosineI8(a, b)
}

// InnerProductI8 returns the inner-product distance between two int8
// vectors. int8 embeddings are produced by quantizing normalized floats, so
// the inner product of the originals is their cosine; this calls the cosine
// kernel directly.
func InnerProductI8(a, b []int8) float32 {
	return implCosineI8(a, b)
}

// HammingB8 returns the number of differing bits between two bit-packed
// binary vectors.
func HammingB8(a, b []byte) float32 {
	return implHammingB8(a, b)
}

// JaccardB8 returns the Jaccard distance between two bit-packed binary
// vectors. An empty union yields 0.
func JaccardB8(a, b []byte) float32 {
	return implJaccardB8(a, b)
}

// SquaredL2F32 returns the squared Euclidean distance between two float32
// vectors.
func SquaredL2F32(a, b []float32) float32 {
	return implSquaredL2F32(a, b)
}

// CosineF32 returns the cosine distance between two float32 vectors.
// When either input has zero norm the result is 1.
func CosineF32(a, b []float32) float32 {
	return implCosineF32(a, b)
}

// DotF32 returns the raw dot product of two float32 vectors.
func DotF32(a, b []float32) float32 {
	return implDotF32(a, b)
}

// ProviderI8 returns the bound kernel for a metric over int8 vectors.
// Cosine and InnerProduct resolve to the same kernel.
func ProviderI8(m Metric) (I8Kernel, error) {
	switch m {
	case L2Squared:
		return implSquaredL2I8, nil
	case Cosine, InnerProduct:
		return implCosineI8, nil
	default:
		return nil, fmt.Errorf("dist: metric %s for int8 vectors: %w", m, ErrUnsupportedMetric)
	}
}

// ProviderB8 returns the bound kernel for a metric over bit-packed binary
// vectors.
func ProviderB8(m Metric) (B8Kernel, error) {
	switch m {
	case Hamming:
		return implHammingB8, nil
	case Jaccard:
		return implJaccardB8, nil
	default:
		return nil, fmt.Errorf("dist: metric %s for binary vectors: %w", m, ErrUnsupportedMetric)
	}
}

// ProviderF32 returns the bound kernel for a metric over float32 vectors.
func ProviderF32(m Metric) (F32Kernel, error) {
	switch m {
	case L2Squared:
		return implSquaredL2F32, nil
	case Cosine:
		return implCosineF32, nil
	case InnerProduct:
		return implDotF32, nil
	default:
		return nil, fmt.Errorf("dist: metric %s for float32 vectors: %w", m, ErrUnsupportedMetric)
	}
}
