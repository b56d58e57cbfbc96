package guac

// NewCube returns the bi-unit cube spanning -1 to 1 on each axis, wound
// counter-clockwise with face normals.
func NewCube() *Mesh {
	v := []Vector{
		{-1, -1, -1}, {-1, -1, 1}, {-1, 1, -1}, {-1, 1, 1},
		{1, -1, -1}, {1, -1, 1}, {1, 1, -1}, {1, 1, 1},
	}
	triangles := []*Triangle{
		NewTriangleForPoints(v[0], v[1], v[3]),
		NewTriangleForPoints(v[0], v[3], v[2]),
		NewTriangleForPoints(v[4], v[6], v[7]),
		NewTriangleForPoints(v[4], v[7], v[5]),
		NewTriangleForPoints(v[0], v[4], v[5]),
		NewTriangleForPoints(v[0], v[5], v[1]),
		NewTriangleForPoints(v[2], v[3], v[7]),
		NewTriangleForPoints(v[2], v[7], v[6]),
		NewTriangleForPoints(v[0], v[2], v[6]),
		NewTriangleForPoints(v[0], v[6], v[4]),
		NewTriangleForPoints(v[1], v[5], v[7]),
		NewTriangleForPoints(v[1], v[7], v[3]),
	}
	return NewTriangleMesh(triangles)
}

func NewCubeForBox(box Box) *Mesh {
	m := NewCube()
	m.Transform(Scale(box.Size().DivScalar(2)).Translate(box.Center()))
	return m
}

// NewCubeOutlineForBox returns the twelve edges of the box as a line mesh.
func NewCubeOutlineForBox(box Box) *Mesh {
	x0, y0, z0 := box.Min.X, box.Min.Y, box.Min.Z
	x1, y1, z1 := box.Max.X, box.Max.Y, box.Max.Z
	return NewLineMesh([]*Line{
		NewLineForPoints(Vector{x0, y0, z0}, Vector{x1, y0, z0}),
		NewLineForPoints(Vector{x0, y1, z0}, Vector{x1, y1, z0}),
		NewLineForPoints(Vector{x0, y0, z1}, Vector{x1, y0, z1}),
		NewLineForPoints(Vector{x0, y1, z1}, Vector{x1, y1, z1}),
		NewLineForPoints(Vector{x0, y0, z0}, Vector{x0, y1, z0}),
		NewLineForPoints(Vector{x1, y0, z0}, Vector{x1, y1, z0}),
		NewLineForPoints(Vector{x0, y0, z1}, Vector{x0, y1, z1}),
		NewLineForPoints(Vector{x1, y0, z1}, Vector{x1, y1, z1}),
		NewLineForPoints(Vector{x0, y0, z0}, Vector{x0, y0, z1}),
		NewLineForPoints(Vector{x1, y0, z0}, Vector{x1, y0, z1}),
		NewLineForPoints(Vector{x0, y1, z0}, Vector{x0, y1, z1}),
		NewLineForPoints(Vector{x1, y1, z0}, Vector{x1, y1, z1}),
	})
}
