package knot

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Context is my abstraction for gg drawing into a window frame
type Context struct {
	dc *gg.Context
}

// NewContext draws directly into img
func NewContext(img *image.RGBA) *Context {
	return &Context{dc: gg.NewContextForRGBA(img)}
}

// Clear fills the whole frame with col.
func (ctx *Context) Clear(col color.Color) {
	ctx.dc.SetColor(col)
	ctx.dc.Clear()
}

func (ctx *Context) SetColor(col color.Color) {
	ctx.dc.SetColor(col)
}

// SetStroke sets the line width with butt caps.
// gg has no miter join, bevel is the closest it offers.
func (ctx *Context) SetStroke(width float64) {
	ctx.dc.SetLineWidth(width)
	ctx.dc.SetLineCapButt()
	ctx.dc.SetLineJoinBevel()
}

// StrokeLine strokes a single segment and clears the path.
func (ctx *Context) StrokeLine(l Line) {
	ctx.dc.DrawLine(l.X1, l.Y1, l.X2, l.Y2)
	ctx.dc.Stroke()
}

// StrokeFillDiamond outlines then fills the closed diamond path.
func (ctx *Context) StrokeFillDiamond(d Diamond) {
	ctx.dc.MoveTo(d.Points[0].X, d.Points[0].Y)
	for _, p := range d.Points[1:] {
		ctx.dc.LineTo(p.X, p.Y)
	}
	ctx.dc.ClosePath()
	ctx.dc.StrokePreserve()
	ctx.dc.Fill()
}

// SetFontFace switches the face used by Text. A nil face is ignored.
func (ctx *Context) SetFontFace(face font.Face) {
	if face != nil {
		ctx.dc.SetFontFace(face)
	}
}

// Text draws s with its baseline starting at x,y.
func (ctx *Context) Text(s string, x, y float64) {
	ctx.dc.DrawString(s, x, y)
}
