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
	"math/bits"
	"testing"
)

func TestPopTable(t *testing.T) {
	for v := 0; v < 256; v++ {
		if got, want := popTable[v], uint8(bits.OnesCount8(uint8(v))); got != want {
			t.Errorf("popTable[%#02x] = %d, want %d", v, got, want)
		}
	}
}

func TestSquaredL2I8Serial(t *testing.T) {
	tests := []struct {
		name string
		a, b []int8
		want float32
	}{
		{"empty", nil, nil, 0},
		{"identical", []int8{1, -2, 3}, []int8{1, -2, 3}, 0},
		{"unit apart", []int8{0, 0, 0}, []int8{1, 0, 0}, 1},
		{"mixed signs", []int8{127, -128}, []int8{-128, 127}, 255*255 + 255*255},
		{"single", []int8{10}, []int8{4}, 36},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := squaredL2I8Serial(tt.a, tt.b); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineI8Serial(t *testing.T) {
	t.Run("identical vectors near zero", func(t *testing.T) {
		a := []int8{3, -7, 20, 1, -1, 50, 0, 9}
		got := cosineI8Serial(a, a)
		if got < -2e-3 || got > 2e-3 {
			t.Errorf("cosine distance of identical vectors = %v, want ~0", got)
		}
	})

	t.Run("orthogonal near one", func(t *testing.T) {
		a := []int8{1, 0, 1, 0}
		b := []int8{0, 1, 0, 1}
		got := cosineI8Serial(a, b)
		if got < 1-2e-3 || got > 1+2e-3 {
			t.Errorf("cosine distance of orthogonal vectors = %v, want ~1", got)
		}
	})

	t.Run("opposite near two", func(t *testing.T) {
		a := []int8{5, -9, 14}
		b := []int8{-5, 9, -14}
		got := cosineI8Serial(a, b)
		if got < 2-4e-3 || got > 2+4e-3 {
			t.Errorf("cosine distance of opposite vectors = %v, want ~2", got)
		}
	})

	t.Run("zero norms give exactly one", func(t *testing.T) {
		a := make([]int8, 16)
		b := make([]int8, 16)
		if got := cosineI8Serial(a, b); got != 1 {
			t.Errorf("cosine distance of zero vectors = %v, want exactly 1", got)
		}
	})
}

func TestHammingB8Serial(t *testing.T) {
	tests := []struct {
		name string
		a, b []byte
		want float32
	}{
		{"empty", nil, nil, 0},
		{"identical", []byte{0xFF, 0x00, 0xA5}, []byte{0xFF, 0x00, 0xA5}, 0},
		{"all bits differ", []byte{0x00, 0x00}, []byte{0xFF, 0xFF}, 16},
		{"one bit", []byte{0x00, 0x00}, []byte{0x00, 0x01}, 1},
		{"alternating", []byte{0xAA}, []byte{0x55}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hammingB8Serial(tt.a, tt.b); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJaccardB8Serial(t *testing.T) {
	tests := []struct {
		name string
		a, b []byte
		want float32
	}{
		{"empty union", []byte{0, 0, 0}, []byte{0, 0, 0}, 0},
		{"empty input", nil, nil, 0},
		{"identical sets", []byte{0xF0, 0x0F}, []byte{0xF0, 0x0F}, 0},
		{"disjoint sets", []byte{0xF0}, []byte{0x0F}, 1},
		{"half overlap", []byte{0b1100}, []byte{0b0110}, 1 - float32(1)/float32(3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := jaccardB8Serial(tt.a, tt.b); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKernelsUseCommonPrefixLength(t *testing.T) {
	a := []int8{1, 2, 3, 4, 5}
	b := []int8{1, 2, 3}
	if got := squaredL2I8Serial(a, b); got != 0 {
		t.Errorf("mismatched lengths: got %v, want 0 over common prefix", got)
	}

	x := []byte{0xFF, 0xFF, 0xFF}
	y := []byte{0xFF}
	if got := hammingB8Serial(x, y); got != 0 {
		t.Errorf("mismatched lengths: got %v, want 0 over common prefix", got)
	}
}
