package simd

// Tag describes a vector width used to size a query profile segment.
type Tag interface {
	Width() int
	Name() string
}

// ScalableTag adapts to the current runtime dispatch width. The kernels
// pass MaxLanes[T]() to the profile builder, which picks segLen, the
// number of striped segments per query row: segLen = ceil(queryLen /
// MaxLanes[T]()).
type ScalableTag[T Lanes] struct{}

// Width returns the current runtime SIMD width in bytes.
func (ScalableTag[T]) Width() int {
	return currentWidth
}

// Name returns the current runtime SIMD target name.
func (ScalableTag[T]) Name() string {
	return currentLevel.String()
}

// MaxLanes returns the number of T values that fit in the current
// dispatch width.
func (t ScalableTag[T]) MaxLanes() int {
	return MaxLanes[T]()
}
