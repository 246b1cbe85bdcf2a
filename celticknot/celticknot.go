// Celticknot draws an endless Celtic knot in a window.
// The arrow keys change the tile size (up/down) and the scale (left/right).
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/scottkirkwood/knot"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
)

const title = "Celtic Knot"

var (
	widthFlag    = flag.Int("width", knot.DefaultWidth, "Window width in pixels")
	heightFlag   = flag.Int("height", knot.DefaultHeight, "Window height in pixels")
	sizeFlag     = flag.Int("size", knot.DefaultSize, "Tile size in pixels, at least 10")
	scaleFlag    = flag.Float64("scale", knot.DefaultScale, "Knot scale between 0 and 0.5")
	promptFlag   = flag.Bool("prompt", true, "Ask for the parameters before opening the window")
	bgFlag       = flag.String("bg", "#ffffff", "Background color")
	fgFlag       = flag.String("fg", "#000000", "Knot color")
	captionFlag  = flag.String("caption", "#ff0000", "Caption color")
	fontSizeFlag = flag.Float64("font-size", 12, "Caption size in points, 0 for the built in bitmap font")
	traceFlag    = flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
)

// tracer traces with key 'knot'
func tracer() tracing.Trace {
	return tracing.Select("knot")
}

func main() {
	flag.Parse()
	if err := setupTracing(*traceFlag); err != nil {
		fmt.Printf("Error configuring tracing: %v\n", err)
		os.Exit(1)
	}

	style, err := knot.ParseStyle(*bgFlag, *fgFlag, *captionFlag, *fontSizeFlag)
	if err != nil {
		pterm.Error.Printfln("Bad style: %v", err)
		os.Exit(1)
	}

	settings := knot.Settings{
		Width:  *widthFlag,
		Height: *heightFlag,
		Params: knot.Params{Size: *sizeFlag, Scale: *scaleFlag},
	}
	if *promptFlag {
		settings, err = askSettings(settings)
	} else {
		for _, w := range settings.Normalize() {
			pterm.Warning.Println(w)
		}
	}
	if errors.Is(err, knot.ErrInvalidInput) {
		tracer().Errorf("%v", err)
		pterm.Error.Println("Invalid input, terminating")
		os.Exit(0)
	} else if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	pterm.Info.Println("Use the arrow keys to morph the knot, Esc to quit")
	driver.Main(func(s screen.Screen) {
		if err := run(s, settings, style); err != nil {
			tracer().Errorf("%v", err)
			pterm.Error.Println(err)
		}
	})
}

func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.knot":      level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func askSettings(def knot.Settings) (knot.Settings, error) {
	rl, err := readline.New("> ")
	if err != nil {
		return def, err
	}
	defer rl.Close()
	return knot.AskSettings(rl, func(w string) { pterm.Warning.Println(w) }, def)
}

func run(s screen.Screen, settings knot.Settings, style knot.Style) error {
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  settings.Width,
		Height: settings.Height,
		Title:  title,
	})
	if err != nil {
		return err
	}
	defer w.Release()

	p := &windowPresenter{s: s, w: w}
	defer p.release()

	params := settings.Params
	surface := knot.NewSurface(&params, style, p)
	surface.Start(settings.Width, settings.Height)

	for {
		e := w.NextEvent()
		if err, ok := e.(error); ok {
			return fmt.Errorf("screen error: %w", err)
		}
		if surface.Handle(e) {
			tracer().Infof("closing with %s", surface.Params())
			return nil
		}
	}
}

// windowPresenter copies each frame into a shiny buffer and publishes it
type windowPresenter struct {
	s screen.Screen
	w screen.Window
	b screen.Buffer
}

func (p *windowPresenter) Present(frame *image.RGBA) {
	sz := frame.Bounds().Size()
	if sz.X == 0 || sz.Y == 0 {
		return
	}
	if p.b == nil || p.b.Size() != sz {
		p.release()
		b, err := p.s.NewBuffer(sz)
		if err != nil {
			tracer().Errorf("new buffer %v: %v", sz, err)
			return
		}
		p.b = b
	}
	draw.Draw(p.b.RGBA(), p.b.Bounds(), frame, frame.Bounds().Min, draw.Src)
	p.w.Upload(image.Point{}, p.b, p.b.Bounds())
	p.w.Publish()
}

func (p *windowPresenter) release() {
	if p.b != nil {
		p.b.Release()
		p.b = nil
	}
}
