package types

import "fmt"

// Vectors whose length falls below this value are treated as zero-length.
const floatCmpEpsilon float32 = 1e-6

// Linearly interpolate between two scalars. Passing a t value outside the
// [0, 1] range is a programming error and triggers a panic.
func Lerp(t, start, end float32) float32 {
	checkLerpParam(t)
	return (1-t)*start + t*end
}

// Linearly interpolate between two vectors. Passing a t value outside the
// [0, 1] range is a programming error and triggers a panic.
func LerpVec3(t float32, start, end Vec3) Vec3 {
	checkLerpParam(t)
	return start.Mul(1 - t).Add(end.Mul(t))
}

func checkLerpParam(t float32) {
	if t < 0 {
		panic(fmt.Sprintf("types: lerp parameter t=%f is less than zero", t))
	}
	if t > 1 {
		panic(fmt.Sprintf("types: lerp parameter t=%f is greater than one", t))
	}
}

// Clamp input to the [min, max] range. Calling Clamp with min > max is a
// programming error and triggers a panic.
func Clamp(input, min, max float32) float32 {
	if min > max {
		panic(fmt.Sprintf("types: invalid clamp range [%f, %f]; min must be less than or equal to max", min, max))
	}

	switch {
	case input < min:
		return min
	case input > max:
		return max
	}
	return input
}

// Map s from the [from0, from1] range to the [to0, to1] range.
func MapRange(s, from0, from1, to0, to1 float32) float32 {
	// Avoid reintroducing rounding errors when mapping a range to itself
	if from0 == to0 && from1 == to1 {
		return s
	}
	return to0 + (s-from0)*(to1-to0)/(from1-from0)
}
