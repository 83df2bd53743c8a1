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

// Package dist computes vector similarity and distance metrics over int8
// metric vectors, bit-packed binary vectors, and float32 vectors.
//
// Metrics:
//   - squared Euclidean distance
//   - cosine distance 1 - ab*rsqrt(a2*b2) (int8 path uses an approximate
//     reciprocal square root; inner product shares the cosine kernel)
//   - Hamming distance (count of differing bits)
//   - Jaccard distance 1 - |a AND b| / |a OR b| (0 when the union is empty)
//
// Each metric has one kernel per hardware backend: a portable scalar
// fallback, AVX2 for int8 arithmetic, AVX-512 for 512-bit bitset chunks with
// a masked final chunk, a fixed 128-bit NEON-model path, and a scalable
// predicate-driven path for SVE. The best eligible kernel is bound once at
// package init; the kernels themselves never probe CPU features.
//
// Contract: kernels are pure functions of their two inputs. They read the
// caller's slices for the duration of one call, never allocate or retain
// them, and iterate over min(len(a), len(b)) elements. They are safe to call
// concurrently, including on overlapping read-only buffers. There are no
// defensive checks beyond that; garbage in, garbage out.
//
// Binary vectors are packed 8 bits per byte; lengths count bytes (words),
// not bits.
package dist
