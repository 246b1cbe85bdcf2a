package knot

import (
	"image"
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

// frames counts presented frames
type frames struct {
	n    int
	last *image.RGBA
}

func (f *frames) Present(frame *image.RGBA) {
	f.n++
	f.last = frame
}

func newTestSurface(p Params) (*Surface, *frames) {
	f := &frames{}
	style := DefaultStyle()
	style.CaptionY = -100 // keep the caption out of the way
	return NewSurface(&p, style, f), f
}

func TestSurfaceUninitialized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knot")
	defer teardown()

	s, f := newTestSurface(DefaultParams())
	assert.Equal(t, Uninitialized, s.State())

	assert.False(t, s.Handle(key.Event{Code: key.CodeUpArrow, Direction: key.DirPress}))
	assert.False(t, s.Handle(size.Event{WidthPx: 100, HeightPx: 100}))
	assert.False(t, s.Handle(paint.Event{}))
	assert.False(t, s.OnKey(key.CodeUpArrow))

	assert.Equal(t, Uninitialized, s.State())
	assert.Equal(t, DefaultParams(), s.Params())
	assert.Equal(t, 0, s.Primitives().Len())
	assert.Equal(t, 0, f.n)
}

func TestSurfaceStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knot")
	defer teardown()

	s, f := newTestSurface(Params{Size: 50, Scale: 0.3})
	s.Start(100, 100)
	assert.Equal(t, Displaying, s.State())
	assert.Equal(t, 54, s.Primitives().Len())
	assert.Equal(t, 1, f.n)
	assert.Equal(t, image.Rect(0, 0, 100, 100), f.last.Bounds())
	w, h := s.Size()
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 100.0, h)
}

func TestSurfaceKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knot")
	defer teardown()

	s, f := newTestSurface(Params{Size: 11, Scale: 0.49})
	s.Start(200, 100)
	require.Equal(t, 1, f.n)

	tests := []struct {
		code key.Code
		want Params
	}{
		{key.CodeDownArrow, Params{Size: 10, Scale: 0.49}},
		{key.CodeDownArrow, Params{Size: 10, Scale: 0.49}},
		{key.CodeUpArrow, Params{Size: 11, Scale: 0.49}},
		{key.CodeRightArrow, Params{Size: 11, Scale: 0.5}},
		{key.CodeRightArrow, Params{Size: 11, Scale: 0.5}},
	}
	for i, tt := range tests {
		assert.False(t, s.Handle(key.Event{Code: tt.code, Direction: key.DirPress}))
		got := s.Params()
		assert.Equal(t, tt.want.Size, got.Size, "step %d", i)
		assert.InDelta(t, tt.want.Scale, got.Scale, 1e-9, "step %d", i)
		assert.Equal(t, i+2, f.n, "every arrow key repaints")
		assert.Equal(t, Generate(200, 100, &got), s.Primitives())
	}

	s.Handle(key.Event{Code: key.CodeLeftArrow, Direction: key.DirPress})
	assert.InDelta(t, 0.49, s.Params().Scale, 1e-9)
}

func TestSurfaceIgnoredKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knot")
	defer teardown()

	s, f := newTestSurface(DefaultParams())
	s.Start(100, 100)
	assert.False(t, s.Handle(key.Event{Code: key.CodeA, Direction: key.DirPress}))
	assert.False(t, s.Handle(key.Event{Code: key.CodeUpArrow, Direction: key.DirRelease}))
	assert.False(t, s.Handle(mouse.Event{X: 3, Y: 4}))
	assert.Equal(t, DefaultParams(), s.Params())
	assert.Equal(t, 1, f.n)

	// Held keys repeat with DirNone.
	assert.False(t, s.Handle(key.Event{Code: key.CodeUpArrow, Direction: key.DirNone}))
	assert.Equal(t, DefaultSize+1, s.Params().Size)
	assert.Equal(t, 2, f.n)
}

func TestSurfaceResize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knot")
	defer teardown()

	s, f := newTestSurface(Params{Size: 50, Scale: 0.3})
	s.Start(100, 100)
	first := s.Primitives()

	assert.False(t, s.Handle(size.Event{WidthPx: 260, HeightPx: 120}))
	assert.Equal(t, 6*6*3, s.Primitives().Len())
	assert.Equal(t, image.Rect(0, 0, 260, 120), s.Frame().Bounds())
	assert.Equal(t, 2, f.n)
	assert.Len(t, first.Lines, 36, "old primitives are replaced, not modified")

	s.OnResize(0, 0)
	assert.Equal(t, 6, s.Primitives().Len())
	assert.True(t, s.Frame().Bounds().Empty())
}

func TestSurfaceQuit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knot")
	defer teardown()

	s, _ := newTestSurface(DefaultParams())
	s.Start(50, 50)
	assert.True(t, s.Handle(key.Event{Code: key.CodeEscape, Direction: key.DirPress}))
	assert.True(t, s.Handle(key.Event{Code: key.CodeQ, Direction: key.DirPress}))
	assert.True(t, s.Handle(lifecycle.Event{From: lifecycle.StageVisible, To: lifecycle.StageDead}))
	assert.False(t, s.Handle(lifecycle.Event{From: lifecycle.StageAlive, To: lifecycle.StageVisible}))
}

func TestSurfaceExternalPaint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knot")
	defer teardown()

	s, f := newTestSurface(DefaultParams())
	s.Start(50, 50)
	prims := s.Primitives()
	assert.False(t, s.Handle(paint.Event{External: true}))
	assert.Equal(t, 2, f.n)
	assert.Equal(t, prims, s.Primitives())
}

func TestSurfacePaint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knot")
	defer teardown()

	s, f := newTestSurface(Params{Size: 50, Scale: 0.3})
	s.Start(100, 100)
	img := f.last

	// on the first strand, (0,15) to (35,50)
	assert.True(t, isDark(img.At(17, 32)), "strand pixel %v", img.At(17, 32))
	// inside the diamond centered at (25,0)
	assert.True(t, isDark(img.At(25, 3)), "diamond pixel %v", img.At(25, 3))
	// between strands
	assert.Equal(t, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, img.RGBAAt(40, 40))
}

func TestSurfaceCaption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knot")
	defer teardown()

	f := &frames{}
	p := DefaultParams()
	s := NewSurface(&p, DefaultStyle(), f)
	s.Start(400, 100)

	red := color.RGBA{0xFF, 0x00, 0x00, 0xFF}
	found := false
	for y := 30; y < 60 && !found; y++ {
		for x := 20; x < 300; x++ {
			if f.last.RGBAAt(x, y) == red {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "caption should be painted in red")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", Uninitialized.String())
	assert.Equal(t, "displaying", Displaying.String())
	assert.Equal(t, "unknown", State(7).String())
}

func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r < 0x4000 && g < 0x4000 && b < 0x4000
}
