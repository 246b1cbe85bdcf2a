package knot

import (
	"fmt"
	"math"
)

// Point is a position in pixels
type Point struct {
	X, Y float64
}

// Line is one strand of the knot, from X1,Y1 to X2,Y2
type Line struct {
	X1, Y1, X2, Y2 float64
}

func (l Line) String() string {
	return fmt.Sprintf("(%g,%g)->(%g,%g)", l.X1, l.Y1, l.X2, l.Y2)
}

// Diamond is a square rotated 45 degrees.
// Points run top, right, bottom, left and the path is closed.
type Diamond struct {
	Points [4]Point
}

// NewDiamond returns the diamond centered on cx,cy whose corners are r away
// from the center.
func NewDiamond(cx, cy, r float64) Diamond {
	return Diamond{Points: [4]Point{
		{cx, cy - r},
		{cx + r, cy},
		{cx, cy + r},
		{cx - r, cy},
	}}
}

// Radius is the distance from the center to a corner
func (d Diamond) Radius() float64 {
	return (d.Points[1].X - d.Points[3].X) / 2
}

// Primitives is everything needed to paint one frame of the knot
type Primitives struct {
	Lines    []Line
	Diamonds []Diamond
}

// Len returns the number of lines and diamonds together
func (p Primitives) Len() int {
	return len(p.Lines) + len(p.Diamonds)
}

// Generate computes the strands and diamonds that cover a width by height
// canvas. The grid runs one cell past the right and bottom edges so a
// freshly enlarged window has no gaps; nothing is clipped.
func Generate(width, height float64, p *Params) Primitives {
	size := float64(p.Size)
	s := p.Scale
	cols := int(math.Floor(width/size)) + 1
	rows := int(math.Floor(height/size)) + 1
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}

	prims := Primitives{
		Lines:    make([]Line, 0, 4*cols*rows),
		Diamonds: make([]Diamond, 0, 2*cols*rows),
	}
	line := func(x1, y1, x2, y2 float64) {
		prims.Lines = append(prims.Lines, Line{x1 * size, y1 * size, x2 * size, y2 * size})
	}
	r := (0.5 - s) * size
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			i, j := float64(col), float64(row)
			line(i, j+s, i+1-s, j+1)
			line(i+s, j, i+1, j+1-s)
			line(i-0.5+s, j+0.5, i+0.5, j-0.5+s)
			line(i-0.5, j+0.5-s, i+0.5-s, j-0.5)

			prims.Diamonds = append(prims.Diamonds,
				NewDiamond(i*size, (j-0.5)*size, r),
				NewDiamond((i+0.5)*size, j*size, r))
		}
	}
	return prims
}
