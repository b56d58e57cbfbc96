package guac

import (
	"math"
	"testing"
)

func TestMeshBoundingBox(t *testing.T) {
	m := NewTriangleMesh([]*Triangle{
		NewTriangleForPoints(Vector{-1, 0, 2}, Vector{3, 1, 2}, Vector{0, -2, 5}),
	})
	box := m.BoundingBox()
	if !vectorAlmostEqual(box.Min, Vector{-1, -2, 2}) || !vectorAlmostEqual(box.Max, Vector{3, 1, 5}) {
		t.Errorf("BoundingBox = %+v", box)
	}

	// The box is cached until the mesh changes.
	m.Add(NewTriangleMesh([]*Triangle{
		NewTriangleForPoints(Vector{10, 10, 10}, Vector{11, 10, 10}, Vector{10, 11, 10}),
	}))
	if got := m.BoundingBox().Max; !vectorAlmostEqual(got, Vector{11, 11, 10}) {
		t.Errorf("BoundingBox after Add has Max %v", got)
	}
}

func TestMeshTransform(t *testing.T) {
	m := NewTriangleMesh([]*Triangle{
		NewTriangleForPoints(Vector{0, 0, 0}, Vector{1, 0, 0}, Vector{0, 1, 0}),
	})
	m.Transform(Translate(Vector{5, 0, 0}))
	if got := m.Triangles[0].V1.Position; !vectorAlmostEqual(got, Vector{5, 0, 0}) {
		t.Errorf("V1 after transform = %v", got)
	}
	// Normals rotate but do not translate.
	if got := m.Triangles[0].V1.Normal; !vectorAlmostEqual(got, Vector{0, 0, 1}) {
		t.Errorf("normal after translate = %v, want unchanged %v", got, Vector{0, 0, 1})
	}
	m.Transform(Rotate(Vector{1, 0, 0}, math.Pi/2))
	if got := m.Triangles[0].V1.Normal; !vectorAlmostEqual(got, Vector{0, -1, 0}) {
		t.Errorf("normal after rotate = %v, want %v", got, Vector{0, -1, 0})
	}
}

func TestMeshBiUnitCube(t *testing.T) {
	m := NewCubeForBox(Box{Vector{2, 2, 2}, Vector{10, 4, 6}})
	m.BiUnitCube()
	box := m.BoundingBox()
	// The longest axis spans exactly [-1, 1]; the others center inside it.
	if !vectorAlmostEqual(box.Min, Vector{-1, -0.25, -0.5}) {
		t.Errorf("Min = %v", box.Min)
	}
	if !vectorAlmostEqual(box.Max, Vector{1, 0.25, 0.5}) {
		t.Errorf("Max = %v", box.Max)
	}
}

func TestMeshCenter(t *testing.T) {
	m := NewCubeForBox(Box{Vector{4, 4, 4}, Vector{6, 6, 6}})
	m.Center()
	if got := m.BoundingBox().Center(); !vectorAlmostEqual(got, Vector{0, 0, 0}) {
		t.Errorf("center after Center() = %v", got)
	}
}

func TestMeshSetColor(t *testing.T) {
	m := NewCube()
	c := Color{0.2, 0.4, 0.8, 1}
	m.SetColor(c)
	for _, tri := range m.Triangles {
		for _, v := range []Vertex{tri.V1, tri.V2, tri.V3} {
			if v.Color != c {
				t.Fatalf("vertex color = %v, want %v", v.Color, c)
			}
		}
	}
}

func TestSmoothNormals(t *testing.T) {
	// Two faces meeting at a right angle along the Y axis.
	a := NewTriangleForPoints(Vector{0, 0, 0}, Vector{1, 0, 0}, Vector{0, 1, 0})
	b := NewTriangleForPoints(Vector{0, 0, 0}, Vector{0, 1, 0}, Vector{0, 0, 1})
	m := NewTriangleMesh([]*Triangle{a, b})
	m.SmoothNormals()

	shared := m.Triangles[0].V1
	want := Vector{0, 0, 1}.Add(Vector{1, 0, 0}).Normalize()
	if !vectorAlmostEqual(shared.Normal, want) {
		t.Errorf("shared vertex normal = %v, want %v", shared.Normal, want)
	}
}

func TestSmoothNormalsThresholdKeepsHardEdges(t *testing.T) {
	a := NewTriangleForPoints(Vector{0, 0, 0}, Vector{1, 0, 0}, Vector{0, 1, 0})
	b := NewTriangleForPoints(Vector{0, 0, 0}, Vector{0, 1, 0}, Vector{0, 0, 1})
	m := NewTriangleMesh([]*Triangle{a, b})
	// The faces differ by 90 degrees, above the 30 degree threshold.
	m.SmoothNormalsThreshold(Radians(30))

	if got := m.Triangles[0].V1.Normal; !vectorAlmostEqual(got, Vector{0, 0, 1}) {
		t.Errorf("hard edge normal = %v, want face normal %v", got, Vector{0, 0, 1})
	}
	if got := m.Triangles[1].V1.Normal; !vectorAlmostEqual(got, Vector{1, 0, 0}) {
		t.Errorf("hard edge normal = %v, want face normal %v", got, Vector{1, 0, 0})
	}
}

func TestMeshCopyIsIndependent(t *testing.T) {
	m := NewCube()
	c := m.Copy()
	c.Transform(Translate(Vector{100, 0, 0}))
	if got := m.BoundingBox().Max.X; !almostEqual(got, 1) {
		t.Errorf("original mesh moved: Max.X = %v", got)
	}
}

func TestMeshReverseWinding(t *testing.T) {
	m := NewTriangleMesh([]*Triangle{
		NewTriangleForPoints(Vector{0, 0, 0}, Vector{1, 0, 0}, Vector{0, 1, 0}),
	})
	before := m.Triangles[0].Normal()
	m.ReverseWinding()
	after := m.Triangles[0].Normal()
	if !vectorAlmostEqual(after, before.Negate()) {
		t.Errorf("normal after ReverseWinding = %v, want %v", after, before.Negate())
	}
}

func TestSimplifyFactorOneKeepsEverything(t *testing.T) {
	m := NewCube()
	before := len(m.Triangles)
	box := m.BoundingBox()
	m.Simplify(1)
	if len(m.Triangles) != before {
		t.Errorf("Simplify(1) changed triangle count from %d to %d", before, len(m.Triangles))
	}
	after := m.BoundingBox()
	if !vectorAlmostEqual(box.Min, after.Min) || !vectorAlmostEqual(box.Max, after.Max) {
		t.Errorf("Simplify(1) changed bounds from %+v to %+v", box, after)
	}
}

func TestSimplifyReducesTriangles(t *testing.T) {
	// A finely gridded quad that collapses without any shape error.
	var triangles []*Triangle
	const n = 8
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x0, x1 := float64(i)/n, float64(i+1)/n
			y0, y1 := float64(j)/n, float64(j+1)/n
			triangles = append(triangles,
				NewTriangleForPoints(Vector{x0, y0, 0}, Vector{x1, y0, 0}, Vector{x1, y1, 0}),
				NewTriangleForPoints(Vector{x0, y0, 0}, Vector{x1, y1, 0}, Vector{x0, y1, 0}),
			)
		}
	}
	m := NewTriangleMesh(triangles)
	before := len(m.Triangles)
	m.Simplify(0.25)
	if len(m.Triangles) == 0 || len(m.Triangles) >= before {
		t.Errorf("Simplify(0.25) left %d of %d triangles", len(m.Triangles), before)
	}
}

func TestCubeOutlineMatchesBox(t *testing.T) {
	box := Box{Vector{-2, -1, 0}, Vector{2, 1, 4}}
	m := NewCubeOutlineForBox(box)
	if len(m.Lines) != 12 {
		t.Fatalf("outline has %d lines, want 12", len(m.Lines))
	}
	got := m.BoundingBox()
	if !vectorAlmostEqual(got.Min, box.Min) || !vectorAlmostEqual(got.Max, box.Max) {
		t.Errorf("outline bounds = %+v, want %+v", got, box)
	}
}
