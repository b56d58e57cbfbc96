package guac

import "testing"

func clipVertexAt(x, y, z, w float64, c Color) Vertex {
	return Vertex{
		Position: Vector{x, y, z},
		Color:    c,
		Output:   VectorW{x, y, z, w},
	}
}

func TestClipTriangleFullyInside(t *testing.T) {
	tri := NewTriangle(
		clipVertexAt(-0.5, -0.5, 0, 1, White),
		clipVertexAt(0.5, -0.5, 0, 1, White),
		clipVertexAt(0, 0.5, 0, 1, White),
	)
	got := ClipTriangle(tri)
	if len(got) != 1 {
		t.Fatalf("ClipTriangle returned %d triangles, want 1", len(got))
	}
	if *got[0] != *tri {
		t.Errorf("fully inside triangle was altered: %+v", got[0])
	}
}

func TestClipTriangleFullyOutside(t *testing.T) {
	// Entirely beyond the +X plane.
	tri := NewTriangle(
		clipVertexAt(2, 0, 0, 1, White),
		clipVertexAt(3, 0, 0, 1, White),
		clipVertexAt(2, 1, 0, 1, White),
	)
	if got := ClipTriangle(tri); len(got) != 0 {
		t.Errorf("ClipTriangle returned %d triangles, want none", len(got))
	}
}

func TestClipTriangleSplitsAtPlane(t *testing.T) {
	red := Color{1, 0, 0, 1}
	blue := Color{0, 0, 1, 1}
	// One vertex pokes through x = +w; clipping yields a quad, fanned into
	// two triangles.
	tri := NewTriangle(
		clipVertexAt(-0.5, 0, 0, 1, red),
		clipVertexAt(1.5, 0, 0, 1, blue),
		clipVertexAt(-0.5, 1, 0, 1, red),
	)
	got := ClipTriangle(tri)
	if len(got) != 2 {
		t.Fatalf("ClipTriangle returned %d triangles, want 2", len(got))
	}
	maxX := -2.0
	for _, tr := range got {
		for _, v := range []Vertex{tr.V1, tr.V2, tr.V3} {
			if v.Output.X > maxX {
				maxX = v.Output.X
			}
			if v.Output.X > v.Output.W+1e-9 {
				t.Errorf("vertex %v left outside the clip volume", v.Output)
			}
		}
	}
	if !almostEqual(maxX, 1) {
		t.Errorf("clipped edge sits at x = %v, want 1", maxX)
	}
}

func TestClipTriangleInterpolatesAttributes(t *testing.T) {
	red := Color{1, 0, 0, 1}
	blue := Color{0, 0, 1, 1}
	tri := NewTriangle(
		clipVertexAt(-0.5, 0, 0, 1, red),
		clipVertexAt(1.5, 0, 0, 1, blue),
		clipVertexAt(-0.5, 1, 0, 1, red),
	)
	// The bottom edge crosses x = 1 three quarters of the way along, so the
	// new vertex blends 25% red with 75% blue.
	want := red.Lerp(blue, 0.75)
	found := false
	for _, tr := range ClipTriangle(tri) {
		for _, v := range []Vertex{tr.V1, tr.V2, tr.V3} {
			if almostEqual(v.Output.X, 1) && almostEqual(v.Output.Y, 0) {
				found = true
				if !colorAlmostEqual(v.Color, want) {
					t.Errorf("boundary color = %v, want %v", v.Color, want)
				}
			}
		}
	}
	if !found {
		t.Error("no clipped vertex on the bottom edge at x = 1")
	}
}

func TestClipLine(t *testing.T) {
	inside := NewLine(clipVertexAt(-0.5, 0, 0, 1, White), clipVertexAt(0.5, 0, 0, 1, White))
	if got := ClipLine(inside); got == nil || *got != *inside {
		t.Errorf("fully inside line was altered: %+v", got)
	}

	crossing := NewLine(clipVertexAt(0, 0, 0, 1, White), clipVertexAt(2, 0, 0, 1, White))
	got := ClipLine(crossing)
	if got == nil {
		t.Fatal("crossing line was dropped")
	}
	if !almostEqual(got.V2.Output.X, 1) {
		t.Errorf("clipped endpoint at x = %v, want 1", got.V2.Output.X)
	}

	outside := NewLine(clipVertexAt(2, 0, 0, 1, White), clipVertexAt(3, 0, 0, 1, White))
	if got := ClipLine(outside); got != nil {
		t.Errorf("fully outside line survived as %+v", got)
	}
}

func TestClipTriangleAgainstNearPlane(t *testing.T) {
	// A triangle straddling z = -w, as geometry behind the camera does.
	tri := NewTriangle(
		clipVertexAt(0, 0, -2, 1, White),
		clipVertexAt(1, 0, 0, 1, White),
		clipVertexAt(-1, 0, 0, 1, White),
	)
	got := ClipTriangle(tri)
	if len(got) == 0 {
		t.Fatal("straddling triangle was dropped")
	}
	for _, tr := range got {
		for _, v := range []Vertex{tr.V1, tr.V2, tr.V3} {
			if v.Output.Z < -v.Output.W-1e-9 {
				t.Errorf("vertex %v still behind the near plane", v.Output)
			}
		}
	}
}
