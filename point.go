package planar

import (
	"math"

	"github.com/besuhoff/planar/internal/utils"
)

// Point represents a position in a plane centered on (0, 0)
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ZeroPoint returns the point at (0, 0)
func ZeroPoint() Point {
	return Point{}
}

// NewPoint returns the point at (x, y). Coordinates are not validated,
// NaN and infinities are carried through every operation.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Pt builds a point from any pair of numeric values.
func Pt[X, Y Number](x X, y Y) Point {
	return Point{X: float64(x), Y: float64(y)}
}

func (p Point) SetX(x float64) Point {
	p.X = x
	return p
}

func (p Point) SetY(y float64) Point {
	p.Y = y
	return p
}

// Shift returns p translated by (dx, dy)
func (p Point) Shift(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// DistanceSquared returns the squared Euclidean distance between p and q
func (p Point) DistanceSquared(q Point) float64 {
	return utils.SquaredDistance(p.X, p.Y, q.X, q.Y)
}

// Distance returns the Euclidean distance between p and q
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.DistanceSquared(q))
}

// ToVector returns the vector anchored at p that ends at the absolute
// position target.
func (p Point) ToVector(target Point) Vector {
	return WithAbsoluteTarget(p, target)
}
