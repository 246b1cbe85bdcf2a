package knot

import (
	"fmt"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Caption is drawn over the knot to tell the user what to do
const Caption = "Use the arrow keys to morph the knot"

// Style holds how a Surface paints
type Style struct {
	Background  color.Color
	Foreground  color.Color // strands and diamonds
	CaptionInk  color.Color
	StrokeWidth float64
	CaptionX    float64
	CaptionY    float64
	Face        font.Face
}

// DefaultStyle is black strands on white with a red caption
func DefaultStyle() Style {
	return Style{
		Background:  color.White,
		Foreground:  color.Black,
		CaptionInk:  color.RGBA{0xFF, 0x00, 0x00, 0xFF},
		StrokeWidth: 2,
		CaptionX:    20,
		CaptionY:    50,
	}
}

// ParseStyle builds a Style from hex colors like "#ff0000" and a caption font
// size in points. A fontSize of zero keeps gg's built in bitmap face.
func ParseStyle(bg, fg, caption string, fontSize float64) (Style, error) {
	st := DefaultStyle()
	var err error
	if st.Background, err = parseHex(bg); err != nil {
		return st, fmt.Errorf("background: %w", err)
	}
	if st.Foreground, err = parseHex(fg); err != nil {
		return st, fmt.Errorf("foreground: %w", err)
	}
	if st.CaptionInk, err = parseHex(caption); err != nil {
		return st, fmt.Errorf("caption: %w", err)
	}
	if fontSize < 0 {
		return st, fmt.Errorf("font size %g is negative", fontSize)
	}
	if fontSize > 0 {
		if st.Face, err = goRegular(fontSize); err != nil {
			return st, err
		}
	}
	return st, nil
}

func parseHex(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xFF}, nil
}

// goRegular loads the Go Regular font at the given point size
func goRegular(points float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing Go Regular: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: points}), nil
}
