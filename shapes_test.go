package beztess

import "testing"

func TestTeacupPatches_Alignment(t *testing.T) {
	verts := TeacupPatches()
	size := NewSession(2).PatchSize() // quadratic
	if len(verts)%size != 0 {
		t.Fatalf("teacup vertex count %d not a multiple of %d", len(verts), size)
	}
	if got := len(verts) / size; got != 4 {
		t.Errorf("teacup patches = %d, want 4", got)
	}
}

func TestFishPatches_Alignment(t *testing.T) {
	verts := FishPatches()
	size := NewSession(3).PatchSize() // cubic
	if len(verts)%size != 0 {
		t.Fatalf("fish vertex count %d not a multiple of %d", len(verts), size)
	}
	if got := len(verts) / size; got != 5 {
		t.Errorf("fish patches = %d, want 5", got)
	}
}

func TestFigureColors(t *testing.T) {
	colors := FigureColors(7)
	if len(colors) != 7 {
		t.Fatalf("len = %d, want 7", len(colors))
	}

	// Repeating red, green, blue cycle.
	want := []RGBA{RGB(1, 0, 0), RGB(0, 1, 0), RGB(0, 0, 1)}
	for i, c := range colors {
		if c != want[i%3] {
			t.Errorf("colors[%d] = %v, want %v", i, c, want[i%3])
		}
	}
}

func TestTextColors(t *testing.T) {
	colors := TextColors(5, White)
	if len(colors) != 5 {
		t.Fatalf("len = %d, want 5", len(colors))
	}
	for i, c := range colors {
		if c != White {
			t.Errorf("colors[%d] = %v, want White", i, c)
		}
	}
}
