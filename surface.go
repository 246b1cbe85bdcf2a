package knot

import (
	"image"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

// State of a Surface
type State int

const (
	Uninitialized State = iota // nothing generated yet
	Displaying
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Displaying:
		return "displaying"
	}
	return "unknown"
}

// Presenter receives every freshly painted frame, for instance to upload it
// to a window.
type Presenter interface {
	Present(frame *image.RGBA)
}

// PresenterFunc adapts a plain function to a Presenter
type PresenterFunc func(frame *image.RGBA)

// Present calls f(frame)
func (f PresenterFunc) Present(frame *image.RGBA) {
	f(frame)
}

// Surface owns the knot parameters, the canvas size and the primitives
// generated from them. Every change regenerates all primitives, repaints the
// frame and presents it before returning.
//
// A Surface is not safe for concurrent use; feed it events from one
// goroutine.
type Surface struct {
	params        *Params
	width, height float64
	prims         Primitives
	frame         *image.RGBA
	style         Style
	state         State
	presenter     Presenter
}

// NewSurface returns an Uninitialized surface. presenter may be nil.
func NewSurface(params *Params, style Style, presenter Presenter) *Surface {
	return &Surface{
		params:    params,
		style:     style,
		presenter: presenter,
		frame:     image.NewRGBA(image.Rectangle{}),
	}
}

func (s *Surface) State() State {
	return s.state
}

// Params returns a copy of the current parameters
func (s *Surface) Params() Params {
	return *s.params
}

func (s *Surface) Primitives() Primitives {
	return s.prims
}

// Frame is the last painted image
func (s *Surface) Frame() *image.RGBA {
	return s.frame
}

// Size returns the canvas width and height in pixels
func (s *Surface) Size() (float64, float64) {
	return s.width, s.height
}

// Start does the first generation and paint; the surface is Displaying
// afterwards. Calling it again behaves like OnResize.
func (s *Surface) Start(width, height int) {
	tracer().Infof("starting %dx%d with %s", width, height, s.params)
	s.state = Displaying
	s.OnResize(width, height)
}

// SetPrimitives replaces the primitives; nothing is merged.
func (s *Surface) SetPrimitives(p Primitives) {
	s.prims = p
}

// OnResize regenerates for a new canvas size.
func (s *Surface) OnResize(width, height int) {
	if s.state == Uninitialized {
		return
	}
	width, height = AtLeast(width, 0), AtLeast(height, 0)
	s.width, s.height = float64(width), float64(height)
	r := image.Rect(0, 0, width, height)
	if s.frame.Bounds() != r {
		s.frame = image.NewRGBA(r)
	}
	s.refresh()
}

// OnKey changes the parameters for the four arrow keys and regenerates.
// Down and Up shrink and grow the tiles, Left and Right lower and raise the
// scale. It reports whether code was one of them.
func (s *Surface) OnKey(code key.Code) bool {
	if s.state == Uninitialized {
		return false
	}
	switch code {
	case key.CodeDownArrow:
		s.params.DecreaseSize()
	case key.CodeUpArrow:
		s.params.IncreaseSize()
	case key.CodeLeftArrow:
		s.params.DecreaseScale()
	case key.CodeRightArrow:
		s.params.IncreaseScale()
	default:
		return false
	}
	tracer().Debugf("key %v: %s", code, s.params)
	s.refresh()
	return true
}

// Handle dispatches one window event. It returns true once the window should
// close.
func (s *Surface) Handle(e interface{}) (quit bool) {
	switch e := e.(type) {
	case lifecycle.Event:
		return e.To == lifecycle.StageDead

	case size.Event:
		s.OnResize(e.WidthPx, e.HeightPx)

	case key.Event:
		if e.Direction == key.DirRelease {
			return false
		}
		switch e.Code {
		case key.CodeEscape, key.CodeQ:
			return true
		}
		s.OnKey(e.Code)

	case paint.Event:
		// The OS wants the window redrawn; the frame is already current.
		if s.state == Displaying {
			s.present()
		}
	}
	return false
}

func (s *Surface) refresh() {
	s.SetPrimitives(Generate(s.width, s.height, s.params))
	tracer().Debugf("generated %d lines, %d diamonds", len(s.prims.Lines), len(s.prims.Diamonds))
	s.Paint()
	s.present()
}

// Paint clears the frame and draws the strands, the diamonds and the caption.
func (s *Surface) Paint() {
	if s.frame.Bounds().Empty() {
		return
	}
	ctx := NewContext(s.frame)
	ctx.Clear(s.style.Background)

	ctx.SetColor(s.style.Foreground)
	ctx.SetStroke(s.style.StrokeWidth)
	for _, l := range s.prims.Lines {
		ctx.StrokeLine(l)
	}
	for _, d := range s.prims.Diamonds {
		ctx.StrokeFillDiamond(d)
	}

	ctx.SetColor(s.style.CaptionInk)
	ctx.SetFontFace(s.style.Face)
	ctx.Text(Caption, s.style.CaptionX, s.style.CaptionY)
}

func (s *Surface) present() {
	if s.presenter != nil {
		s.presenter.Present(s.frame)
	}
}
