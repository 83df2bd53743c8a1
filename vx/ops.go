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

package vx

import "math/bits"

// This file provides the pure Go implementations of the vector operations
// the distance kernels are written against. They work with any lane type
// and any dispatch width.

// Load creates a vector by loading up to MaxLanes elements from src.
// A shorter slice yields a vector with fewer lanes.
func Load[T Lanes](src []T) Vec[T] {
	n := MaxLanes[T]()
	if len(src) < n {
		n = len(src)
	}
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes a vector's data to dst.
func Store[T Lanes](v Vec[T], dst []T) {
	n := len(v.data)
	if len(dst) < n {
		n = len(dst)
	}
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// MaskLoad loads elements from src only where mask is active.
// Inactive lanes read as zero.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	n := min(len(src), len(mask.bits))
	data := make([]T, len(mask.bits))
	for i := range n {
		if mask.bits[i] {
			data[i] = src[i]
		}
	}
	return Vec[T]{data: data}
}

// Add performs element-wise addition over the common lane count.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	data := make([]T, n)
	for i := range n {
		data[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: data}
}

// Sub performs element-wise subtraction over the common lane count.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	data := make([]T, n)
	for i := range n {
		data[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: data}
}

// Mul performs element-wise multiplication over the common lane count.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	data := make([]T, n)
	for i := range n {
		data[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: data}
}

// And performs element-wise bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	data := make([]T, n)
	for i := range n {
		data[i] = a.data[i] & b.data[i]
	}
	return Vec[T]{data: data}
}

// Or performs element-wise bitwise OR.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	data := make([]T, n)
	for i := range n {
		data[i] = a.data[i] | b.data[i]
	}
	return Vec[T]{data: data}
}

// Xor performs element-wise bitwise XOR.
func Xor[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	data := make([]T, n)
	for i := range n {
		data[i] = a.data[i] ^ b.data[i]
	}
	return Vec[T]{data: data}
}

// PopCount counts the number of set bits in each lane.
func PopCount[T Integers](v Vec[T]) Vec[T] {
	data := make([]T, len(v.data))
	for i := range v.data {
		data[i] = popCount(v.data[i])
	}
	return Vec[T]{data: data}
}

// popCount counts set bits for a single lane value.
func popCount[T Integers](val T) T {
	switch x := any(val).(type) {
	case int8:
		return T(bits.OnesCount8(uint8(x)))
	case uint8:
		return T(bits.OnesCount8(x))
	case int16:
		return T(bits.OnesCount16(uint16(x)))
	case uint16:
		return T(bits.OnesCount16(x))
	case int32:
		return T(bits.OnesCount32(uint32(x)))
	case uint32:
		return T(bits.OnesCount32(x))
	case int64:
		return T(bits.OnesCount64(uint64(x)))
	case uint64:
		return T(bits.OnesCount64(x))
	default:
		return 0
	}
}

// ReduceSum collapses all lanes into a single scalar sum, in lane precision.
// For narrow lanes whose sum may exceed the lane range, use ReduceSumWide.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for i := range v.data {
		sum += v.data[i]
	}
	return sum
}

// ReduceSumWide collapses all integer lanes into a 64-bit sum. This matches
// the semantics of scalable-vector horizontal adds (SVE UADDV), which widen
// to 64 bits regardless of the lane type.
func ReduceSumWide[T Integers](v Vec[T]) uint64 {
	var sum uint64
	for i := range v.data {
		sum += uint64(v.data[i])
	}
	return sum
}
