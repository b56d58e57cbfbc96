package guac

// Shader runs the programmable stages of the pipeline. Vertex receives a
// vertex with Position, Normal, Texture and Color set and must fill Output
// with the clip-space position. Fragment receives the interpolated vertex
// and the object being drawn and returns the fragment color; with alpha
// blending enabled, a zero-alpha color discards the fragment.
type Shader interface {
	Vertex(Vertex) Vertex
	Fragment(Vertex, *Object) Color
}

// WorldShader renders geometry with per-vertex colors. Positions go through
// perspective * view * model. Normals are carried to world space with the
// inverse transpose of the model matrix and interpolated without
// normalization, so fragments see a world-space normal whose length varies.
//
// By default fragments pass the interpolated vertex color through untouched.
// With EnableIntensity set, the color is replaced by a gray ramp driven by
// how much the surface faces the fixed directional light.
type WorldShader struct {
	Model           Matrix
	View            Matrix
	Perspective     Matrix
	EnableIntensity bool
	LightDirection  Vector
	Dark            Color
	Light           Color
}

// DefaultLightDirection is deliberately unnormalized. The intensity ramp
// feeds the raw dot product into an unclamped mix, so the light vector's
// length widens the ramp beyond [0, 1]; clamping happens at the color
// buffer.
var DefaultLightDirection = Vector{-2, -1, -3}

func NewWorldShader(model, view, perspective Matrix) *WorldShader {
	return &WorldShader{
		Model:          model,
		View:           view,
		Perspective:    perspective,
		LightDirection: DefaultLightDirection,
		Dark:           Gray(0.1),
		Light:          Gray(0.7),
	}
}

func (shader *WorldShader) Vertex(v Vertex) Vertex {
	matrix := shader.Perspective.Mul(shader.View).Mul(shader.Model)
	v.Output = matrix.MulPositionW(v.Position)
	normalMatrix := shader.Model.Inverse().Transpose()
	v.Normal = normalMatrix.MulDirection(v.Normal)
	return v
}

func (shader *WorldShader) Fragment(v Vertex, fromObject *Object) Color {
	if !shader.EnableIntensity {
		return v.Color
	}
	a := (v.Normal.Normalize().Dot(shader.LightDirection) + 1) / 2
	return shader.Dark.Lerp(shader.Light, a).Alpha(1)
}
