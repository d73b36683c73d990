package planar

import (
	"strconv"
	"strings"
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String formats p as (x,y)
func (p Point) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(formatFloat(p.X))
	b.WriteByte(',')
	b.WriteString(formatFloat(p.Y))
	b.WriteByte(')')
	return b.String()
}

// String formats v as (origin.x,origin.y)[target.x,target.y] with the
// relative target. The output is meant for people, not for parsing.
func (v Vector) String() string {
	var b strings.Builder
	b.WriteString(v.origin.String())
	b.WriteByte('[')
	b.WriteString(formatFloat(v.target.X))
	b.WriteByte(',')
	b.WriteString(formatFloat(v.target.Y))
	b.WriteByte(']')
	return b.String()
}
