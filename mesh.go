package guac

import (
	"math"

	"github.com/fogleman/simplify"
)

type Mesh struct {
	Triangles []*Triangle
	Lines     []*Line
	box       *Box
}

func NewEmptyMesh() *Mesh {
	return &Mesh{}
}

func NewMesh(triangles []*Triangle, lines []*Line) *Mesh {
	return &Mesh{triangles, lines, nil}
}

func NewTriangleMesh(triangles []*Triangle) *Mesh {
	return &Mesh{triangles, nil, nil}
}

func NewLineMesh(lines []*Line) *Mesh {
	return &Mesh{nil, lines, nil}
}

func (m *Mesh) dirty() {
	m.box = nil
}

func (m *Mesh) Copy() *Mesh {
	triangles := make([]*Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		a := *t
		triangles[i] = &a
	}
	lines := make([]*Line, len(m.Lines))
	for i, l := range m.Lines {
		a := *l
		lines[i] = &a
	}
	return NewMesh(triangles, lines)
}

func (m *Mesh) Add(b *Mesh) {
	m.Triangles = append(m.Triangles, b.Triangles...)
	m.Lines = append(m.Lines, b.Lines...)
	m.dirty()
}

func (m *Mesh) SetColor(c Color) {
	for _, t := range m.Triangles {
		t.V1.Color = c
		t.V2.Color = c
		t.V3.Color = c
	}
	for _, l := range m.Lines {
		l.V1.Color = c
		l.V2.Color = c
	}
}

func (m *Mesh) BoundingBox() Box {
	if m.box == nil {
		box := EmptyBox
		for _, t := range m.Triangles {
			box = box.Extend(t.BoundingBox())
		}
		for _, l := range m.Lines {
			box = box.Extend(l.BoundingBox())
		}
		m.box = &box
	}
	return *m.box
}

func (m *Mesh) Transform(matrix Matrix) {
	for _, t := range m.Triangles {
		t.Transform(matrix)
	}
	for _, l := range m.Lines {
		l.Transform(matrix)
	}
	m.dirty()
}

func (m *Mesh) MoveTo(position, anchor Vector) {
	m.Transform(Translate(position.Sub(m.BoundingBox().Anchor(anchor))))
}

func (m *Mesh) Center() {
	m.MoveTo(Vector{}, Vector{0.5, 0.5, 0.5})
}

// FitInside scales and positions the mesh to fit the box, preserving aspect
// ratio. The anchor places the slack along each axis.
func (m *Mesh) FitInside(box Box, anchor Vector) {
	scale := box.Size().Div(m.BoundingBox().Size()).MinComponent()
	extra := box.Size().Sub(m.BoundingBox().Size().MulScalar(scale))
	matrix := Identity()
	matrix = matrix.Translate(m.BoundingBox().Min.Negate())
	matrix = matrix.Scale(Vector{scale, scale, scale})
	matrix = matrix.Translate(box.Min.Add(extra.Mul(anchor)))
	m.Transform(matrix)
}

func (m *Mesh) BiUnitCube() {
	const r = 1
	m.FitInside(Box{Vector{-r, -r, -r}, Vector{r, r, r}}, Vector{0.5, 0.5, 0.5})
}

func (m *Mesh) ReverseWinding() {
	for _, t := range m.Triangles {
		t.ReverseWinding()
	}
	m.dirty()
}

// SmoothNormals assigns each vertex the normalized sum of the face normals
// of every triangle sharing its position.
func (m *Mesh) SmoothNormals() {
	lookup := make(map[Vector]Vector)
	for _, t := range m.Triangles {
		n := t.Normal()
		lookup[t.V1.Position] = lookup[t.V1.Position].Add(n)
		lookup[t.V2.Position] = lookup[t.V2.Position].Add(n)
		lookup[t.V3.Position] = lookup[t.V3.Position].Add(n)
	}
	for k, v := range lookup {
		lookup[k] = v.Normalize()
	}
	for _, t := range m.Triangles {
		t.V1.Normal = lookup[t.V1.Position]
		t.V2.Normal = lookup[t.V2.Position]
		t.V3.Normal = lookup[t.V3.Position]
	}
}

// SmoothNormalsThreshold smooths like SmoothNormals but only across faces
// whose normals differ by less than the given angle, keeping hard edges.
func (m *Mesh) SmoothNormalsThreshold(radians float64) {
	threshold := math.Cos(radians)
	lookup := make(map[Vector][]Vector)
	for _, t := range m.Triangles {
		n := t.Normal()
		lookup[t.V1.Position] = append(lookup[t.V1.Position], n)
		lookup[t.V2.Position] = append(lookup[t.V2.Position], n)
		lookup[t.V3.Position] = append(lookup[t.V3.Position], n)
	}
	for _, t := range m.Triangles {
		n := t.Normal()
		t.V1.Normal = thresholdNormal(n, lookup[t.V1.Position], threshold)
		t.V2.Normal = thresholdNormal(n, lookup[t.V2.Position], threshold)
		t.V3.Normal = thresholdNormal(n, lookup[t.V3.Position], threshold)
	}
}

func thresholdNormal(normal Vector, normals []Vector, threshold float64) Vector {
	result := Vector{}
	for _, n := range normals {
		if n.Dot(normal) >= threshold {
			result = result.Add(n)
		}
	}
	return result.Normalize()
}

// Simplify reduces the triangle count to roughly factor times the current
// count using quadric edge collapse. Vertex attributes other than position
// are discarded; face normals are recomputed.
func (m *Mesh) Simplify(factor float64) {
	st := make([]*simplify.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		v1 := simplify.Vector(t.V1.Position)
		v2 := simplify.Vector(t.V2.Position)
		v3 := simplify.Vector(t.V3.Position)
		st[i] = simplify.NewTriangle(v1, v2, v3)
	}
	sm := simplify.NewMesh(st).Simplify(factor)
	m.Triangles = make([]*Triangle, len(sm.Triangles))
	for i, t := range sm.Triangles {
		m.Triangles[i] = NewTriangleForPoints(Vector(t.V1), Vector(t.V2), Vector(t.V3))
	}
	m.dirty()
}
