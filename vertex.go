package guac

// Vertex carries the attributes fed to the vertex stage and, after it runs,
// the clip-space position in Output.
type Vertex struct {
	Position Vector
	Normal   Vector
	Texture  Vector
	Color    Color
	Output   VectorW
}

func (a Vertex) Outside() bool {
	return a.Output.Outside()
}

// InterpolateVertexes blends three vertexes with the perspective-correct
// weights in b. Normals are left unnormalized; shaders that need a unit
// normal renormalize per fragment.
func InterpolateVertexes(v1, v2, v3 Vertex, b VectorW) Vertex {
	v := Vertex{}
	v.Position = InterpolateVectors(v1.Position, v2.Position, v3.Position, b)
	v.Normal = InterpolateVectors(v1.Normal, v2.Normal, v3.Normal, b)
	v.Texture = InterpolateVectors(v1.Texture, v2.Texture, v3.Texture, b)
	v.Color = InterpolateColors(v1.Color, v2.Color, v3.Color, b)
	v.Output = InterpolateVectorWs(v1.Output, v2.Output, v3.Output, b)
	return v
}

func InterpolateVectors(v1, v2, v3 Vector, b VectorW) Vector {
	n := Vector{}
	n = n.Add(v1.MulScalar(b.X))
	n = n.Add(v2.MulScalar(b.Y))
	n = n.Add(v3.MulScalar(b.Z))
	return n.MulScalar(b.W)
}

func InterpolateColors(c1, c2, c3 Color, b VectorW) Color {
	n := Color{}
	n = n.Add(c1.MulScalar(b.X))
	n = n.Add(c2.MulScalar(b.Y))
	n = n.Add(c3.MulScalar(b.Z))
	return n.MulScalar(b.W)
}

func InterpolateVectorWs(v1, v2, v3 VectorW, b VectorW) VectorW {
	n := VectorW{}
	n = n.Add(v1.MulScalar(b.X))
	n = n.Add(v2.MulScalar(b.Y))
	n = n.Add(v3.MulScalar(b.Z))
	return n.MulScalar(b.W)
}
