// Package planar provides two-dimensional point and vector value types.
package planar

import "github.com/besuhoff/planar/internal/utils"

// TargetPrecision is the number of fractional digits kept by
// Vector.SetTargetAbsolute.
const TargetPrecision = 6

// Vector is a directed segment anchored at an origin.
//
// The target is stored relative to the origin, never as an absolute
// position: a vector from (1, 0) to (2, 1) has a target of (1, 1).
// Every method returns a modified copy and leaves the receiver untouched.
type Vector struct {
	origin Point
	target Point
}

// ZeroVector returns a vector with both origin and target at (0, 0)
func ZeroVector() Vector {
	return Vector{}
}

// NullVector returns a zero-length vector anchored at origin
func NullVector(origin Point) Vector {
	return Vector{origin: origin}
}

// NewVector builds a vector from an origin and a target relative to it.
func NewVector(origin, target Point) Vector {
	return Vector{origin: origin, target: target}
}

// WithAbsoluteTarget builds a vector from an origin and an absolute
// endpoint, so WithAbsoluteTarget((1, 0), (2, 1)) has a target of (1, 1).
func WithAbsoluteTarget(origin, target Point) Vector {
	return Vector{origin: origin, target: target.Sub(origin)}
}

func (v Vector) Origin() Point {
	return v.origin
}

// Target returns the endpoint relative to the origin
func (v Vector) Target() Point {
	return v.target
}

// AbsoluteTarget returns the endpoint as a position in the plane
func (v Vector) AbsoluteTarget() Point {
	return v.origin.Add(v.target)
}

// SetOrigin moves the origin. The relative target is kept, so the
// absolute endpoint moves along with it.
func (v Vector) SetOrigin(origin Point) Vector {
	v.origin = origin
	return v
}

// SetTarget replaces the relative target
func (v Vector) SetTarget(target Point) Vector {
	v.target = target
	return v
}

// SetTargetAbsolute points the vector at an absolute position.
//
// The relative target is rounded to TargetPrecision fractional digits on
// each axis to drop the error left in the low bits by the subtraction.
func (v Vector) SetTargetAbsolute(target Point) Vector {
	relative := target.Sub(v.origin)
	v.target = Point{
		X: utils.RoundToDecimals(relative.X, TargetPrecision),
		Y: utils.RoundToDecimals(relative.Y, TargetPrecision),
	}
	return v
}

// Shift moves the whole vector by (dx, dy). Only the origin changes since
// the target is relative to it.
func (v Vector) Shift(dx, dy float64) Vector {
	v.origin = v.origin.Shift(dx, dy)
	return v
}

// ApproxEqual reports whether every coordinate of v and w differs by at
// most epsilon.
func (v Vector) ApproxEqual(w Vector, epsilon float64) bool {
	return utils.NearlyEqual(v.origin.X, w.origin.X, epsilon) &&
		utils.NearlyEqual(v.origin.Y, w.origin.Y, epsilon) &&
		utils.NearlyEqual(v.target.X, w.target.X, epsilon) &&
		utils.NearlyEqual(v.target.Y, w.target.Y, epsilon)
}
