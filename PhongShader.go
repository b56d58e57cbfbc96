package guac

import (
	"math"
)

// PhongShader implements Phong lighting with an optional texture and a
// silhouette outline.
type PhongShader struct {
	Model          Matrix
	Camera         Matrix // perspective * view
	LightDirection Vector // unit vector toward the light
	CameraPosition Vector
	AmbientColor   Color
	DiffuseColor   Color
	SpecularColor  Color
	SpecularPower  float64
	EnableOutline  bool
	OutlineColor   Color
	OutlineFactor  float64 // lower is thinner
}

func NewPhongShader(camera Matrix, lightDirection, cameraPosition Vector, ambient, diffuse Color) *PhongShader {
	return &PhongShader{
		Model:          Identity(),
		Camera:         camera,
		LightDirection: lightDirection,
		CameraPosition: cameraPosition,
		AmbientColor:   ambient,
		DiffuseColor:   diffuse,
		SpecularColor:  White,
		SpecularPower:  0,
		EnableOutline:  true,
		OutlineColor:   Black,
		OutlineFactor:  0.05,
	}
}

func (shader *PhongShader) Vertex(v Vertex) Vertex {
	v.Output = shader.Camera.Mul(shader.Model).MulPositionW(v.Position)
	v.Position = shader.Model.MulPosition(v.Position)
	v.Normal = shader.Model.Inverse().Transpose().MulDirection(v.Normal).Normalize()
	return v
}

func (shader *PhongShader) Fragment(v Vertex, fromObject *Object) Color {
	normal := v.Normal.Normalize()

	if shader.EnableOutline {
		viewDirection := shader.CameraPosition.Sub(v.Position).Normalize()
		// A normal nearly perpendicular to the view direction marks a
		// silhouette edge.
		if math.Abs(viewDirection.Dot(normal)) < shader.OutlineFactor {
			return shader.OutlineColor
		}
	}

	// Objects flagged for vertex colors skip lighting and texturing.
	if fromObject.UseVertexColor {
		return v.Color
	}

	light := shader.AmbientColor
	color := fromObject.Color
	if fromObject.Texture != nil {
		sample := fromObject.Texture.Sample(v.Texture.X, v.Texture.Y)
		if sample.A > 0 {
			color = color.Lerp(sample.DivScalar(sample.A), sample.A)
		}
	}
	diffuse := math.Max(normal.Dot(shader.LightDirection), 0)
	light = light.Add(shader.DiffuseColor.MulScalar(diffuse))
	if diffuse > 0 && shader.SpecularPower > 0 {
		camera := shader.CameraPosition.Sub(v.Position).Normalize()
		reflected := shader.LightDirection.Negate().Reflect(normal)
		specular := math.Max(camera.Dot(reflected), 0)
		if specular > 0 {
			specular = math.Pow(specular, shader.SpecularPower)
			light = light.Add(shader.SpecularColor.MulScalar(specular))
		}
	}
	if color.A < 1 {
		return color.Mul(light).Min(White).DivScalar(color.A).Alpha(color.A)
	}
	return color.Mul(light).Min(White).Alpha(color.A)
}
