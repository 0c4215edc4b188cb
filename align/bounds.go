package align

import (
	"math"

	"github.com/ajroetker/go-parasail/simd"
)

// boundsTracker folds the running per-lane min/max of every H value a
// kernel stores, then compares it against the representable range for
// the lane width once alignment finishes — the detection mechanism
// spec.md section 4.4's common contract describes: a value is out of
// range when it is "strictly less than INT_MIN + open or strictly
// greater than INT_MAX - matrix.max".
type boundsTracker[T simd.Integers] struct {
	min, max T
	seen     bool
}

// Update folds every lane of v into the running min/max.
func (b *boundsTracker[T]) Update(v simd.Vec[T]) {
	for _, lane := range v.Data() {
		if !b.seen {
			b.min, b.max = lane, lane
			b.seen = true
			continue
		}
		if lane < b.min {
			b.min = lane
		}
		if lane > b.max {
			b.max = lane
		}
	}
}

// Saturated reports whether the tracked range has escaped the
// representable bounds for T given the gap-open penalty and the
// matrix's maximum score. Threshold arithmetic itself goes through
// simd.SaturatedAdd/SaturatedSub so computing "minT + open" or
// "maxT - matrixMax" can never wrap past T's own range even for a
// pathological open/matrixMax value.
func (b *boundsTracker[T]) Saturated(open, matrixMax int32) bool {
	if !b.seen {
		return false
	}
	minT, maxT := typeBounds[T]()
	lower := simd.SaturatedAdd(simd.Set(minT), simd.Set(T(open)))
	upper := simd.SaturatedSub(simd.Set(maxT), simd.Set(T(matrixMax)))
	lowerBound := lower.Data()[0]
	upperBound := upper.Data()[0]
	return b.min < lowerBound || b.max > upperBound
}

// typeBounds returns the minimum and maximum representable values for
// T (for int64, a quarter of the full range, the same sentinel as
// negInf), used both by boundsTracker and by the lazy-F correction's
// "-inf" sentinel.
func typeBounds[T simd.Integers]() (T, T) {
	var zero T
	switch any(zero).(type) {
	case int8:
		lo, hi := int8(math.MinInt8), int8(math.MaxInt8)
		return T(lo), T(hi)
	case int16:
		lo, hi := int16(math.MinInt16), int16(math.MaxInt16)
		return T(lo), T(hi)
	case int32:
		lo, hi := int32(math.MinInt32), int32(math.MaxInt32)
		return T(lo), T(hi)
	case int64:
		lo, hi := int64(math.MinInt64/4), int64(math.MaxInt64/4)
		return T(lo), T(hi)
	default:
		return zero, zero
	}
}

// widthOf returns the bit width (8/16/32/64) of T, matching the Width
// enum so a kernel instantiation can report which Bits flag it used.
func widthOf[T simd.Integers]() Width {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Width8
	case int16:
		return Width16
	case int32:
		return Width32
	case int64:
		return Width64
	default:
		return Width64
	}
}
