package beztess

// Built-in demo figures. These are the control polygons the original
// interactive demo ships alongside font rendering: a quadratic "teacup"
// and a cubic "fish", already grouped into patches for the evaluator.

// TeacupPatches returns the quadratic demo figure: 4 patches of 3
// control points each. Pair with DegreeQuadratic evaluation, scale 0.35.
func TeacupPatches() []Point {
	return []Point{
		{1, 1}, {2, -1}, {0, -1},
		{0, -1}, {-2, -1}, {-1, 1},
		{-1, 1}, {0, 1}, {1, 1},
		{1.2, 0.5}, {2.5, 1.0}, {1.3, -0.4},
	}
}

// FishPatches returns the cubic demo figure: 5 patches of 4 control
// points each. Pair with DegreeCubic evaluation, scale 0.125 and a
// horizontal shift of -4.5 to center it.
func FishPatches() []Point {
	return []Point{
		{1, 1}, {4, 0}, {6, 2}, {9, 1},
		{8, 2}, {0, 8}, {0, -2}, {8, 4},
		{5, 3}, {3, 2}, {3, 3}, {5, 2},
		{3, 2.2}, {3.5, 2.7}, {3.5, 3.3}, {3, 3.8},
		{2.8, 3.5}, {2.4, 3.8}, {2.4, 3.2}, {2.8, 3.5},
	}
}

// FigureColors returns n per-vertex colors cycling red, green, blue —
// the control-polygon highlight palette for the built-in figures. Text
// modes use a uniform color instead (see TextColors).
func FigureColors(n int) []RGBA {
	cycle := []RGBA{
		RGB(1, 0, 0),
		RGB(0, 1, 0),
		RGB(0, 0, 1),
	}
	out := make([]RGBA, n)
	for i := range out {
		out[i] = cycle[i%len(cycle)]
	}
	return out
}

// TextColors returns n copies of a uniform per-vertex color for glyph
// rendering.
func TextColors(n int, c RGBA) []RGBA {
	out := make([]RGBA, n)
	for i := range out {
		out[i] = c
	}
	return out
}
