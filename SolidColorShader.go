package guac

// SolidColorShader renders everything in one color. A nonzero Thickness
// extrudes vertices along their normals; drawn with front-face culling this
// produces a solid outline pass.
type SolidColorShader struct {
	Matrix    Matrix
	Color     Color
	Thickness float64
}

func NewSolidColorShader(matrix Matrix, color Color) *SolidColorShader {
	return &SolidColorShader{matrix, color, 0}
}

func (s *SolidColorShader) Vertex(v Vertex) Vertex {
	p := v.Position.Add(v.Normal.MulScalar(s.Thickness))
	v.Output = s.Matrix.MulPositionW(p)
	return v
}

func (s *SolidColorShader) Fragment(v Vertex, fromObject *Object) Color {
	return s.Color
}
