package simd

import "math"

// SaturatedAdd performs element-wise addition, clamping to T's range
// instead of wrapping. The align package's saturation-range tracker
// (align.boundsTracker) uses this to compute its lower threshold
// without itself overflowing while it watches for real DP overflow.
func SaturatedAdd[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = saturatedAdd(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// SaturatedSub performs element-wise subtraction, clamping to T's range
// instead of wrapping.
func SaturatedSub[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = saturatedSub(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

func saturatedAdd[T Integers](a, b T) T {
	switch any(a).(type) {
	case int8:
		sum := int16(any(a).(int8)) + int16(any(b).(int8))
		switch {
		case sum > 127:
			return T(any(int8(127)).(int8))
		case sum < -128:
			return T(any(int8(-128)).(int8))
		default:
			return T(any(int8(sum)).(int8))
		}
	case int16:
		sum := int32(any(a).(int16)) + int32(any(b).(int16))
		switch {
		case sum > 32767:
			return T(any(int16(32767)).(int16))
		case sum < -32768:
			return T(any(int16(-32768)).(int16))
		default:
			return T(any(int16(sum)).(int16))
		}
	case int32:
		sum := int64(any(a).(int32)) + int64(any(b).(int32))
		switch {
		case sum > math.MaxInt32:
			return T(any(int32(math.MaxInt32)).(int32))
		case sum < math.MinInt32:
			return T(any(int32(math.MinInt32)).(int32))
		default:
			return T(any(int32(sum)).(int32))
		}
	case int64:
		av := any(a).(int64)
		bv := any(b).(int64)
		if bv > 0 && av > math.MaxInt64-bv {
			return T(any(int64(math.MaxInt64)).(int64))
		}
		if bv < 0 && av < math.MinInt64-bv {
			return T(any(int64(math.MinInt64)).(int64))
		}
		return T(any(av + bv).(int64))
	default:
		return a + b
	}
}

func saturatedSub[T Integers](a, b T) T {
	switch any(a).(type) {
	case int8:
		diff := int16(any(a).(int8)) - int16(any(b).(int8))
		switch {
		case diff > 127:
			return T(any(int8(127)).(int8))
		case diff < -128:
			return T(any(int8(-128)).(int8))
		default:
			return T(any(int8(diff)).(int8))
		}
	case int16:
		diff := int32(any(a).(int16)) - int32(any(b).(int16))
		switch {
		case diff > 32767:
			return T(any(int16(32767)).(int16))
		case diff < -32768:
			return T(any(int16(-32768)).(int16))
		default:
			return T(any(int16(diff)).(int16))
		}
	case int32:
		diff := int64(any(a).(int32)) - int64(any(b).(int32))
		switch {
		case diff > math.MaxInt32:
			return T(any(int32(math.MaxInt32)).(int32))
		case diff < math.MinInt32:
			return T(any(int32(math.MinInt32)).(int32))
		default:
			return T(any(int32(diff)).(int32))
		}
	case int64:
		av := any(a).(int64)
		bv := any(b).(int64)
		if bv < 0 && av > math.MaxInt64+bv {
			return T(any(int64(math.MaxInt64)).(int64))
		}
		if bv > 0 && av < math.MinInt64+bv {
			return T(any(int64(math.MinInt64)).(int64))
		}
		return T(any(av - bv).(int64))
	default:
		return a - b
	}
}
