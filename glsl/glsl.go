// Package glsl carries the GLSL sources for the world pipeline. The software
// renderer in the parent package mirrors these two stages exactly; hosts that
// drive a real OpenGL pipeline can compile the embedded sources instead and
// bind the names reported by Signature.
package glsl

import _ "embed"

// VertexSource is the world vertex stage. It transforms positions by
// perspective * view * model and corrects normals with the inverse-transpose
// of the model matrix so they survive non-uniform scaling.
//
//go:embed world.vert
var VertexSource string

// FragmentSource is the world fragment stage, a straight color pass-through.
// The commented-out block is the directional intensity path; note the light
// vector is used unnormalized there.
//
//go:embed world.frag
var FragmentSource string

// Kind classifies a name in the pipeline interface.
type Kind string

const (
	Attribute Kind = "attribute"
	Uniform   Kind = "uniform"
	Varying   Kind = "varying"
	Output    Kind = "output"
)

// Binding is one name a host must wire when compiling the world pipeline.
type Binding struct {
	Name string
	Kind Kind
	Type string
}

// Signature lists every attribute, uniform, varying and output of the world
// pipeline, in declaration order.
func Signature() []Binding {
	return []Binding{
		{"position", Attribute, "vec3"},
		{"normal", Attribute, "vec3"},
		{"color", Attribute, "vec4"},
		{"model", Uniform, "mat4"},
		{"view", Uniform, "mat4"},
		{"perspective", Uniform, "mat4"},
		{"frag_normal", Varying, "vec3"},
		{"frag_color", Varying, "vec4"},
		{"color", Output, "vec4"},
	}
}
