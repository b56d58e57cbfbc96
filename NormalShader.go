package guac

// NormalShader visualizes world-space normals, mapping each component from
// [-1, 1] to [0, 1]. Useful for checking normal correction under model
// transforms.
type NormalShader struct {
	Model  Matrix
	Camera Matrix
}

func NewNormalShader(camera Matrix) *NormalShader {
	return &NormalShader{Identity(), camera}
}

func (s *NormalShader) Vertex(v Vertex) Vertex {
	v.Output = s.Camera.Mul(s.Model).MulPositionW(v.Position)
	v.Normal = s.Model.Inverse().Transpose().MulDirection(v.Normal)
	return v
}

func (s *NormalShader) Fragment(v Vertex, fromObject *Object) Color {
	n := v.Normal.Normalize()
	return Color{(n.X + 1) / 2, (n.Y + 1) / 2, (n.Z + 1) / 2, 1}
}
