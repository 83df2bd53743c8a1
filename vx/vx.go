// Package vx provides the portable vector substrate for go-vecdist.
//
// It follows the Highway design philosophy: write kernels against a small
// generic vector surface, and let runtime dispatch decide the effective
// register width. On builds without SIMD support the operations lower to
// plain Go loops; the semantics are identical either way.
//
// Basic usage:
//
//	a := vx.Load(wordsA)
//	b := vx.Load(wordsB)
//	n := vx.ReduceSumWide(vx.PopCount(vx.Xor(a, b)))
package vx

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle. Its lane count is decided by the current
// dispatch width (see MaxLanes), or by the source slice when it is shorter.
//
// Vec instances should not be created directly; use Load, Set, or Zero.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used on hot paths.
func (v Vec[T]) Data() []T {
	return v.data
}

// Mask is a per-lane active/inactive predicate. Inactive lanes of a masked
// load read as zero, so they contribute nothing to subsequent reductions.
//
// Mask instances should not be created directly; use TailMask.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}
