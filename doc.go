// Package beztess assembles tessellation-ready vertex streams from
// parametric curves and vector font glyphs.
//
// # Overview
//
// beztess is the CPU side of a GPU curve-evaluation pipeline: it expands
// glyph outlines (closed contours of line, quadratic and cubic Bezier
// segments) and built-in demo figures into flat buffers of 2D control
// points, grouped into fixed-size patches (3 points for quadratic
// sessions, 4 for cubic). The render package evaluates those patches on
// the GPU via a WGSL compute shader, with a CPU mirror of the same
// Bernstein basis for headless use.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/beztess"
//	    "github.com/gogpu/beztess/outline"
//	)
//
//	src, err := outline.NewFontSourceFromFile("font.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s := beztess.NewSession(outline.DegreeCubic,
//	    beztess.WithShift(-2.7),
//	    beztess.WithVerticalShift(-0.4),
//	    beztess.WithScale(0.3))
//
//	advance, err := s.EmitString(src, "Hello")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	upload(s.Positions()) // patch-aligned x,y pairs, PatchSize() points each
//
// # Architecture
//
// The library is organized into:
//   - Root package: Session (glyph-to-vertex assembly), geometry primitives,
//     built-in demo figures, mode configuration
//   - outline: glyph outline model and font extraction backends
//   - render: GPU patch evaluation (wgpu/naga) with CPU fallback
//
// # Coordinate System
//
// Glyph outlines are em-normalized (one em == 1.0) with y increasing
// upward, matching the conventions of the tessellation shaders this
// library feeds. Session transforms map them into clip-space-like
// coordinates; the vertical flip for raster targets is the renderer's
// concern.
package beztess
