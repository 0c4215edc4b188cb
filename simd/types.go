package simd

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types storable in a lane.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in a Vec. Kept
// distinct from Integers (rather than folding the two together) because
// some operations below (e.g. boundary masks) are meaningful for any lane
// type while arithmetic ones are integer-only.
type Lanes interface {
	Integers
}

// Vec is a portable vector handle wrapping a fixed number of scoring
// lanes. In base (scalar) mode it wraps a Go slice directly; this is the
// mode every kernel in this module runs in, since the module is built
// without GOEXPERIMENT=simd and carries no architecture-specific
// intrinsics. The dispatch package still reports which ISA a real SIMD
// build would have selected, and that choice still determines segment
// width (see MaxLanes), but the arithmetic below executes as ordinary
// Go so that it builds and behaves identically everywhere.
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
// Primarily for testing; kernels should prefer the Vec operations.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Mask represents the result of a comparison or boundary-guard operation.
// Used with IfThenElse, IfThenElseZero, and MaskStore for conditional
// updates; the alignment kernels use one only through AnyTrue, in the
// lazy-F loop's early exit.
//
// Mask instances should not be created directly; use comparison
// operations like Equal, LessThan, or GreaterThan instead.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
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

// AnyTrue returns true if at least one lane in the mask is active.
// The lazy-F correction loop (align/striped.go) uses this as its
// early-exit condition: once no lane still has F > H-open, correction
// stops.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
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

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}
