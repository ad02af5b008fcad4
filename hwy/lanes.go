package hwy

import "unsafe"

// MaxLanes returns the number of T-sized lanes that fit in the current
// dispatch level's native vector width. It is the generic fallback's
// answer to "how wide is a Vec[T]"; Load, Set and Zero all size their
// backing slice from it.
func MaxLanes[T Lanes]() int {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 {
		return 1
	}
	n := currentWidth / elemSize
	if n < 1 {
		return 1
	}
	return n
}
