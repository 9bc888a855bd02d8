// Command beztessdemo demonstrates the beztess curve and glyph pipeline.
//
// It assembles one of the demo modes into a patch buffer, evaluates the
// patches into polylines and plots them to a PNG:
//
//	beztessdemo -mode teacup
//	beztessdemo -mode fish
//	beztessdemo -mode text -font /path/to/font.ttf -text "Hello"
//	beztessdemo -mode scroll -font /path/to/font.ttf -frames 120
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/gogpu/beztess"
	"github.com/gogpu/beztess/outline"
	"github.com/gogpu/beztess/render"
)

func main() {
	var (
		mode   = flag.String("mode", "teacup", "demo mode: teacup, fish, text, scroll")
		font   = flag.String("font", "", "font file for the text modes (TTF/OTF)")
		text   = flag.String("text", "The quick brown fox jumps over the lazy dog.", "string for the text modes")
		degree = flag.Int("degree", 3, "target patch degree for the text modes (2 or 3)")
		frames = flag.Int("frames", 60, "scroll frames to advance before the snapshot")
		steps  = flag.Int("steps", 64, "parameter subdivisions per patch")
		width  = flag.Int("width", 512, "image width")
		height = flag.Int("height", 512, "image height")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	cfg, err := configFor(*mode, *font, *text, outline.Degree(*degree))
	if err != nil {
		log.Fatal(err)
	}

	// Headless demo: the null handle selects CPU evaluation. A windowed
	// host would pass its own DeviceHandle here instead.
	eval, err := render.NewPatchEvaluatorFromHandle(render.NullDeviceHandle{}, render.WithSteps(*steps))
	if err != nil {
		log.Fatalf("evaluator: %v", err)
	}

	verts, colors, err := assemble(cfg, eval, *frames)
	if err != nil {
		log.Fatal(err)
	}

	img := plot(verts, colors, eval.Steps()+1, *width, *height)
	if err := savePNG(*output, img); err != nil {
		log.Fatalf("failed to save: %v", err)
	}
	log.Printf("demo saved to %s (%dx%d, %d vertices)", *output, *width, *height, len(verts))
}

// configFor maps a mode name to its session configuration. The figure
// and text presets mirror the interactive demo's keyboard modes.
func configFor(mode, fontPath, text string, degree outline.Degree) (beztess.Config, error) {
	switch mode {
	case "teacup":
		return beztess.Config{
			Mode:   beztess.ModeQuadraticFigure,
			Degree: outline.DegreeQuadratic,
			Scale:  0.35,
		}, nil
	case "fish":
		return beztess.Config{
			Mode:   beztess.ModeCubicFigure,
			Degree: outline.DegreeCubic,
			Scale:  0.125,
			Shift:  -4.5,
		}, nil
	case "text":
		return beztess.Config{
			Mode:          beztess.ModeText,
			Degree:        degree,
			Text:          text,
			FontPath:      fontPath,
			Shift:         -2.7,
			VerticalShift: -0.4,
			Scale:         0.3,
		}, nil
	case "scroll":
		return beztess.Config{
			Mode:          beztess.ModeScrollingText,
			Degree:        degree,
			Text:          text,
			FontPath:      fontPath,
			Shift:         -0.4,
			VerticalShift: -0.3,
			Scale:         1.1,
		}, nil
	default:
		return beztess.Config{}, fmt.Errorf("unknown mode %q (want teacup, fish, text, scroll)", mode)
	}
}

// assemble produces evaluated polyline vertices and per-vertex colors
// for the configured mode.
func assemble(cfg beztess.Config, eval *render.PatchEvaluator, frames int) ([]beztess.Point, []beztess.RGBA, error) {
	switch cfg.Mode {
	case beztess.ModeQuadraticFigure, beztess.ModeCubicFigure:
		controls := beztess.TeacupPatches()
		if cfg.Mode == beztess.ModeCubicFigure {
			controls = beztess.FishPatches()
		}
		verts, err := eval.Evaluate(cfg.Degree, controls, cfg.Scale, cfg.Shift)
		if err != nil {
			return nil, nil, err
		}
		return verts, beztess.FigureColors(len(verts)), nil

	default:
		src, err := outline.NewFontSourceFromFile(cfg.FontPath)
		if err != nil {
			return nil, nil, err
		}

		if cfg.Mode == beztess.ModeScrollingText {
			cfg.Shift = scrolledShift(cfg, src, frames)
		}

		session := cfg.NewSession()
		if _, err := session.EmitString(src, cfg.Text); err != nil {
			return nil, nil, err
		}

		// Session vertices are already in session space.
		verts, err := eval.Evaluate(cfg.Degree, session.Vertices(), 1, 0)
		if err != nil {
			return nil, nil, err
		}
		return verts, beztess.TextColors(len(verts), beztess.White), nil
	}
}

// scrolledShift advances a scroll by the requested number of frames and
// returns the resulting shift. The wrap threshold is derived from the
// string's total advance so the text fully leaves view before wrapping.
func scrolledShift(cfg beztess.Config, src *outline.FontSource, frames int) float64 {
	measure := beztess.NewSession(cfg.Degree)
	advance, err := measure.EmitString(src, cfg.Text)
	if err != nil {
		return cfg.Shift
	}

	scroll := beztess.NewScrollState(cfg.Shift, -(advance + 1))
	for i := 0; i < frames; i++ {
		scroll.Step()
	}
	return scroll.Offset
}

// plot draws the evaluated polylines into an image. Vertices arrive in
// clip-ish space ([-1,1] across); vertsPerPatch consecutive vertices
// form one polyline.
func plot(verts []beztess.Point, colors []beztess.RGBA, vertsPerPatch, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := color.RGBA{R: 51, G: 51, B: 51, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, bg)
		}
	}

	toPixel := func(p beztess.Point) (int, int) {
		x := int((p.X + 1) / 2 * float64(w))
		y := int((1 - (p.Y+1)/2) * float64(h)) // flip to raster y-down
		return x, y
	}

	for i := 1; i < len(verts); i++ {
		if i%vertsPerPatch == 0 {
			continue // patch boundary, no connecting line
		}
		x0, y0 := toPixel(verts[i-1])
		x1, y1 := toPixel(verts[i])
		drawLine(img, x0, y0, x1, y1, colors[i].Color())
	}
	return img
}

// drawLine plots a 1px line with the integer Bresenham walk.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if image.Pt(x0, y0).In(img.Bounds()) {
			img.Set(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
