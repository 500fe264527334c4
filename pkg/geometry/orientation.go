package geometry

import "slices"

// Depth of the transform compositions; 4^5 sequences reach every one of the 24 cube rotations
const compositionDepth = 5

// Orientations returns the distinct canonical orientations of a shape under the rotation group,
// in order of first discovery. Shapes with rotational symmetry yield fewer than 24.
func Orientations(shape Shape) []Shape {
	orientations := make([]Shape, 0, 24)
	seen := make(map[string]bool)

	sequence := make([]int, compositionDepth)
	for {
		rotated := shape
		// Apply the innermost transform first, i.e. f_0(f_1(...f_4(shape)))
		for i := compositionDepth - 1; i >= 0; i-- {
			rotated = Transforms[sequence[i]](rotated)
		}

		canonical := rotated.Canonical()
		if key := canonical.Key(); !seen[key] {
			seen[key] = true
			orientations = append(orientations, canonical)
		}

		if !next(sequence, len(Transforms)) {
			break
		}
	}

	return slices.Clip(orientations)
}

// next advances sequence as an odometer whose last position varies fastest. Returns false once it wraps around
func next(sequence []int, base int) bool {
	for i := len(sequence) - 1; i >= 0; i-- {
		sequence[i]++
		if sequence[i] < base {
			return true
		}
		sequence[i] = 0
	}
	return false
}
