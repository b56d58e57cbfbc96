package guac

import (
	"math"
	"testing"
)

func TestWorldShaderIdentityOutput(t *testing.T) {
	shader := NewWorldShader(Identity(), Identity(), Identity())
	v := shader.Vertex(Vertex{Position: Vector{0, 0, 0}})
	want := VectorW{0, 0, 0, 1}
	if v.Output != want {
		t.Errorf("Output = %v, want %v", v.Output, want)
	}
}

func TestWorldShaderColorPassThrough(t *testing.T) {
	shader := NewWorldShader(Identity(), Identity(), Identity())
	colors := []Color{
		{0, 0, 0, 1},
		{1, 1, 1, 1},
		{0.25, 0.5, 0.75, 0.125},
		{127.0 / 255, 3.0 / 255, 200.0 / 255, 1},
	}
	for _, c := range colors {
		v := shader.Vertex(Vertex{Position: Vector{1, 2, 3}, Color: c})
		if v.Color != c {
			t.Errorf("Vertex changed color %v to %v", c, v.Color)
		}
		got := shader.Fragment(v, nil)
		if got != c {
			t.Errorf("Fragment(%v) = %v, want exact pass-through", c, got)
		}
	}
}

func TestWorldShaderCubeInsideClipVolume(t *testing.T) {
	view := LookAt(Vector{0, 0, 5}, Vector{0, 0, 0}, Vector{0, 1, 0})
	perspective := Perspective(45, 1, 1, 100)
	shader := NewWorldShader(Identity(), view, perspective)

	for _, corner := range (Box{Vector{-1, -1, -1}, Vector{1, 1, 1}}).Corners() {
		out := shader.Vertex(Vertex{Position: corner}).Output
		if out.W <= 0 {
			t.Fatalf("corner %v has w = %v", corner, out.W)
		}
		ndc := out.Vector().DivScalar(out.W)
		if math.Abs(ndc.X) > 1 || math.Abs(ndc.Y) > 1 || math.Abs(ndc.Z) > 1 {
			t.Errorf("corner %v lands outside the clip volume at %v", corner, ndc)
		}
	}
}

func TestWorldShaderNormalCorrection(t *testing.T) {
	rotation := Rotate(Vector{0, 0, 1}, math.Pi/2)

	shader := NewWorldShader(rotation, Identity(), Identity())
	v := shader.Vertex(Vertex{Normal: Vector{1, 0, 0}})
	if !vectorAlmostEqual(v.Normal, Vector{0, 1, 0}) {
		t.Errorf("rotated normal = %v, want %v", v.Normal, Vector{0, 1, 0})
	}

	// Scaling must not stretch normals off the surface, so the corrected
	// normal shrinks instead of growing.
	shader = NewWorldShader(Scale(Vector{4, 4, 4}), Identity(), Identity())
	v = shader.Vertex(Vertex{Normal: Vector{0, 1, 0}})
	if !vectorAlmostEqual(v.Normal, Vector{0, 0.25, 0}) {
		t.Errorf("normal under uniform scale = %v, want %v", v.Normal, Vector{0, 0.25, 0})
	}
}

func TestWorldShaderIntensityDisabledIgnoresNormal(t *testing.T) {
	shader := NewWorldShader(Identity(), Identity(), Identity())
	c := Color{0.2, 0.4, 0.6, 1}
	v := Vertex{Normal: Vector{123, -456, 789}, Color: c}
	if got := shader.Fragment(v, nil); got != c {
		t.Errorf("Fragment = %v, want untouched %v", got, c)
	}
}

func TestWorldShaderIntensityRamp(t *testing.T) {
	shader := NewWorldShader(Identity(), Identity(), Identity())
	shader.EnableIntensity = true

	// The light vector stays unnormalized, so a normal pointing straight at
	// it pushes the blend factor well past one.
	light := Vector{-2, -1, -3}
	tests := []struct {
		name   string
		normal Vector
		wantA  float64
	}{
		{"side-on normal", Vector{0, 1, 0}, (Vector{0, 1, 0}.Dot(light) + 1) / 2},
		{"facing the light", light.Normalize(), (light.Length() + 1) / 2},
		{"facing away", light.Normalize().Negate(), (-light.Length() + 1) / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shader.Fragment(Vertex{Normal: tt.normal}, nil)
			want := Gray(0.1).Lerp(Gray(0.7), tt.wantA).Alpha(1)
			if !colorAlmostEqual(got, want) {
				t.Errorf("Fragment = %v, want %v (a = %v)", got, want, tt.wantA)
			}
		})
	}

	// Spelled out for the side-on case: dot((0,1,0), (-2,-1,-3)) is -1, so
	// the ramp bottoms out at the dark gray.
	got := shader.Fragment(Vertex{Normal: Vector{0, 1, 0}}, nil)
	if !colorAlmostEqual(got, Color{0.1, 0.1, 0.1, 1}) {
		t.Errorf("side-on fragment = %v, want dark gray", got)
	}
}

func TestWorldShaderIntensityScalesWithNormalLength(t *testing.T) {
	// Fragment renormalizes the interpolated normal, so its length must not
	// change the result.
	shader := NewWorldShader(Identity(), Identity(), Identity())
	shader.EnableIntensity = true
	a := shader.Fragment(Vertex{Normal: Vector{0, 0.001, 0}}, nil)
	b := shader.Fragment(Vertex{Normal: Vector{0, 1000, 0}}, nil)
	if !colorAlmostEqual(a, b) {
		t.Errorf("normal length leaked into shading: %v vs %v", a, b)
	}
}

func TestNormalShaderMapsUnitNormals(t *testing.T) {
	shader := NewNormalShader(Identity())
	tests := []struct {
		normal Vector
		want   Color
	}{
		{Vector{1, 0, 0}, Color{1, 0.5, 0.5, 1}},
		{Vector{0, -1, 0}, Color{0.5, 0, 0.5, 1}},
		{Vector{0, 0, 1}, Color{0.5, 0.5, 1, 1}},
	}
	for _, tt := range tests {
		v := shader.Vertex(Vertex{Normal: tt.normal})
		if got := shader.Fragment(v, nil); !colorAlmostEqual(got, tt.want) {
			t.Errorf("Fragment(normal %v) = %v, want %v", tt.normal, got, tt.want)
		}
	}
}

func TestSolidColorShader(t *testing.T) {
	shader := NewSolidColorShader(Identity(), HexColor("468966"))
	v := shader.Vertex(Vertex{Position: Vector{1, 2, 3}, Color: White})
	if got := shader.Fragment(v, nil); got != HexColor("468966") {
		t.Errorf("Fragment = %v, want the solid color", got)
	}
}

func TestPhongShaderVertexColors(t *testing.T) {
	camera := LookAt(Vector{0, 0, 3}, Vector{0, 0, 0}, Vector{0, 1, 0}).
		Perspective(30, 1, 1, 10)
	shader := NewPhongShader(camera, Vector{0, 1, 0}, Vector{0, 0, 3}, Gray(0.2), Gray(0.8))
	shader.EnableOutline = false

	object := NewEmptyObject()
	object.UseVertexColor = true
	c := Color{0.9, 0.1, 0.4, 1}
	v := shader.Vertex(Vertex{Position: Vector{0, 0, 0}, Normal: Vector{0, 0, 1}, Color: c})
	if got := shader.Fragment(v, object); got != c {
		t.Errorf("Fragment with vertex colors = %v, want %v", got, c)
	}
}

func TestPhongShaderSpecularPeaksOnMirrorAxis(t *testing.T) {
	// Normal, light and view direction all line up, so the light reflects
	// straight back at the camera and the specular term reaches 1.
	shader := NewPhongShader(Identity(), Vector{0, 0, 1}, Vector{0, 0, 5}, Gray(0.1), Gray(0.2))
	shader.EnableOutline = false
	shader.SpecularColor = Gray(0.5)
	shader.SpecularPower = 32

	object := NewEmptyObject()
	object.Color = White

	v := shader.Vertex(Vertex{Position: Vector{0, 0, 0}, Normal: Vector{0, 0, 1}})
	got := shader.Fragment(v, object)
	if want := Gray(0.8); !colorAlmostEqual(got, want) {
		t.Errorf("mirror-axis fragment = %v, want %v", got, want)
	}
}
