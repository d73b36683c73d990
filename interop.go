package planar

import (
	"github.com/golang/geo/r2"
	"github.com/twpayne/go-geom"
)

// R2 converts p to an r2.Point
func (p Point) R2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func PointFromR2(p r2.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

// Coord converts p to an XY geom.Coord
func (p Point) Coord() geom.Coord {
	return geom.Coord{p.X, p.Y}
}

// PointFromCoord reads the first two ordinates of c. Missing ordinates
// are read as 0.
func PointFromCoord(c geom.Coord) Point {
	var p Point
	if len(c) > 0 {
		p.X = c[0]
	}
	if len(c) > 1 {
		p.Y = c[1]
	}
	return p
}

// LineString returns the vector as a two-vertex XY line string running
// from the origin to the absolute endpoint.
func (v Vector) LineString() *geom.LineString {
	end := v.AbsoluteTarget()
	return geom.NewLineStringFlat(geom.XY, []float64{v.origin.X, v.origin.Y, end.X, end.Y})
}
