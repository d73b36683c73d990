package planar

import "golang.org/x/exp/constraints"

// Number is any built-in integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Add sums the relative targets of v and w. The result keeps the origin
// of v; the origin of w is ignored.
func (v Vector) Add(w Vector) Vector {
	v.target = v.target.Add(w.target)
	return v
}

// Sub subtracts the relative target of w from that of v, keeping the
// origin of v.
func (v Vector) Sub(w Vector) Vector {
	v.target = v.target.Sub(w.target)
	return v
}

// Translate is Shift with the offset given as a point
func (v Vector) Translate(offset Point) Vector {
	return v.Shift(offset.X, offset.Y)
}

// ShiftPoint translates p by offsets of any numeric type
func ShiftPoint[X, Y Number](p Point, dx X, dy Y) Point {
	return p.Shift(float64(dx), float64(dy))
}

// ShiftVector translates v by offsets of any numeric type, e.g.
// ShiftVector(v, uint16(2), 1.25).
func ShiftVector[X, Y Number](v Vector, dx X, dy Y) Vector {
	return v.Shift(float64(dx), float64(dy))
}
