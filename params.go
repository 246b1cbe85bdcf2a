package knot

import (
	"fmt"
	"math"
)

const (
	MinSize      = 10  // pixels
	DefaultSize  = 50  // pixels
	MaxScale     = 0.5 // diamonds vanish at this scale
	DefaultScale = 0.3
	ScaleStep    = 0.01 // per key press

	DefaultWidth  = 1280 // pixels
	DefaultHeight = 720  // pixels
)

// Params are the two knobs of the knot.
// Size is the pixel length of one grid cell and Scale, in [0, 0.5], says how
// far from the cell corners the strands bend.
type Params struct {
	Size  int
	Scale float64
}

// DefaultParams returns the parameters used when nothing else was asked for.
func DefaultParams() Params {
	return Params{Size: DefaultSize, Scale: DefaultScale}
}

func (p Params) String() string {
	return fmt.Sprintf("size=%d scale=%.2f", p.Size, p.Scale)
}

// IncreaseSize grows the tile by one pixel. There is no upper bound.
func (p *Params) IncreaseSize() {
	p.Size++
}

// DecreaseSize shrinks the tile by one pixel but never below MinSize.
func (p *Params) DecreaseSize() {
	p.Size = AtLeast(p.Size-1, MinSize)
}

// IncreaseScale adds ScaleStep, stopping at MaxScale.
func (p *Params) IncreaseScale() {
	p.Scale = Clamp(p.Scale+ScaleStep, 0, MaxScale)
}

// DecreaseScale removes ScaleStep, stopping at zero.
func (p *Params) DecreaseScale() {
	p.Scale = Clamp(p.Scale-ScaleStep, 0, MaxScale)
}

// Settings is everything asked for before the window opens.
type Settings struct {
	Width, Height int // pixels
	Params
}

// DefaultSettings returns the values offered by the startup prompts.
func DefaultSettings() Settings {
	return Settings{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Params: DefaultParams(),
	}
}

// Normalize replaces out of range values with their defaults and returns a
// warning for each one replaced.
func (s *Settings) Normalize() []string {
	var warnings []string
	if s.Width < 1 {
		warnings = append(warnings, fmt.Sprintf("Width must be positive, using default (%d)", DefaultWidth))
		s.Width = DefaultWidth
	}
	if s.Height < 1 {
		warnings = append(warnings, fmt.Sprintf("Height must be positive, using default (%d)", DefaultHeight))
		s.Height = DefaultHeight
	}
	if s.Size < MinSize {
		warnings = append(warnings, fmt.Sprintf("Size must be at least %d, using default (%d)", MinSize, DefaultSize))
		s.Size = DefaultSize
	}
	if s.Scale < 0 || s.Scale > MaxScale || math.IsNaN(s.Scale) {
		warnings = append(warnings, fmt.Sprintf("Scale must be between 0 and %g, using default (%g)", MaxScale, DefaultScale))
		s.Scale = DefaultScale
	}
	return warnings
}
