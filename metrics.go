package planar

import "math"

// Magnitude returns the length of the vector, which only depends on its
// relative target.
func (v Vector) Magnitude() float64 {
	return v.target.R2().Norm()
}

// DotProduct returns the dot product of the relative targets of v and w.
// Origins play no part.
func (v Vector) DotProduct(w Vector) float64 {
	return v.target.X*w.target.X + v.target.Y*w.target.Y
}

// AngleBetween returns the angle between v and w in radians, in [0, π].
//
// The result is NaN when either vector has zero magnitude, or when float
// error pushes the cosine outside [-1, 1]. Callers must guard degenerate
// input themselves.
func (v Vector) AngleBetween(w Vector) float64 {
	return math.Acos(v.DotProduct(w) / (v.Magnitude() * w.Magnitude()))
}
