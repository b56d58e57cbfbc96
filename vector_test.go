package guac

import "testing"

func TestVectorReflect(t *testing.T) {
	tests := []struct {
		name   string
		v      Vector
		normal Vector
		want   Vector
	}{
		{"head-on", Vector{0, -1, 0}, Vector{0, 1, 0}, Vector{0, 1, 0}},
		{"45 degrees", Vector{1, -1, 0}.Normalize(), Vector{0, 1, 0}, Vector{1, 1, 0}.Normalize()},
		{"grazing", Vector{1, 0, 0}, Vector{0, 1, 0}, Vector{1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Reflect(tt.normal)
			if !vectorAlmostEqual(got, tt.want) {
				t.Errorf("%v.Reflect(%v) = %v, want %v", tt.v, tt.normal, got, tt.want)
			}
			if !almostEqual(got.Length(), tt.v.Length()) {
				t.Errorf("reflection changed the length: %v to %v", tt.v.Length(), got.Length())
			}
		})
	}
}

func TestVectorPerpendicular(t *testing.T) {
	for _, v := range []Vector{{3, 4, 0}, {0, 2, 0}, {-1, 1, 0}} {
		p := v.Perpendicular()
		if !almostEqual(p.Dot(v), 0) {
			t.Errorf("Perpendicular(%v) = %v, not perpendicular", v, p)
		}
		if !almostEqual(p.Length(), 1) {
			t.Errorf("Perpendicular(%v) = %v, not unit length", v, p)
		}
	}
}
