package guac

import "math"

// ToonShader implements cel shading, snapping diffuse intensity to a small
// set of banded colors.
type ToonShader struct {
	Model          Matrix
	Camera         Matrix
	LightDirection Vector
	Highlight      Color
	Midtone        Color
	Shadow         Color
	DeepShadow     Color
}

func NewToonShader(camera Matrix, lightDirection Vector) *ToonShader {
	return &ToonShader{
		Model:          Identity(),
		Camera:         camera,
		LightDirection: lightDirection.Normalize(),
		Highlight:      HexColor("ffffaa"),
		Midtone:        HexColor("ff8844"),
		Shadow:         HexColor("a12c00"),
		DeepShadow:     HexColor("4d1100"),
	}
}

func (s *ToonShader) Vertex(v Vertex) Vertex {
	v.Output = s.Camera.Mul(s.Model).MulPositionW(v.Position)
	v.Normal = s.Model.Inverse().Transpose().MulDirection(v.Normal)
	return v
}

func (s *ToonShader) Fragment(v Vertex, fromObject *Object) Color {
	intensity := math.Max(0, v.Normal.Normalize().Dot(s.LightDirection))
	var band Color
	switch {
	case intensity > 0.8:
		band = s.Highlight
	case intensity > 0.5:
		band = s.Midtone
	case intensity > 0.2:
		band = s.Shadow
	default:
		band = s.DeepShadow
	}
	if fromObject.Texture != nil {
		return fromObject.Texture.Sample(v.Texture.X, v.Texture.Y).Mul(band)
	}
	return fromObject.Color.Mul(band)
}
