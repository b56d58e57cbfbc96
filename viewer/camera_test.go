package viewer

import (
	"math"
	"testing"

	"github.com/beorn7/floats"

	"github.com/guacgl/guac"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9 || floats.AlmostEqual(a, b, 1e-9)
}

func vectorsAlmostEqual(a, b guac.Vector) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestCameraDirection(t *testing.T) {
	tests := []struct {
		name       string
		pitch, yaw float64
		want       guac.Vector
	}{
		{"default looks down -X", 0, 180, guac.Vector{-1, 0, 0}},
		{"yaw 0 looks down +X", 0, 0, guac.Vector{1, 0, 0}},
		{"yaw 90 looks down +Z", 0, 90, guac.Vector{0, 0, 1}},
		{"pitch up tilts toward +Y", 45, 0, guac.Vector{math.Sqrt2 / 2, math.Sqrt2 / 2, 0}},
		{"pitch down tilts toward -Y", -45, 180, guac.Vector{-math.Sqrt2 / 2, -math.Sqrt2 / 2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Camera{Pitch: tt.pitch, Yaw: tt.yaw}
			got := c.Direction()
			if !vectorsAlmostEqual(got, tt.want) {
				t.Errorf("Direction() = %v, want %v", got, tt.want)
			}
			if !almostEqual(got.Length(), 1) {
				t.Errorf("Direction() length = %v, want 1", got.Length())
			}
		})
	}
}

func TestCameraSideways(t *testing.T) {
	c := NewCamera() // yaw 180, facing -X
	got := c.Sideways()
	want := guac.Vector{0, 0, -1}
	if !vectorsAlmostEqual(got, want) {
		t.Errorf("Sideways() = %v, want %v", got, want)
	}
	if !almostEqual(got.Dot(c.Direction()), 0) {
		t.Error("Sideways() is not perpendicular to Direction()")
	}

	// Sideways stays level no matter the pitch.
	c.Pitch = 60
	if !vectorsAlmostEqual(c.Sideways(), want) {
		t.Errorf("Sideways() at pitch 60 = %v, want %v", c.Sideways(), want)
	}
}

func TestCameraLook(t *testing.T) {
	c := NewCamera()
	c.Look(100, 50)
	if !almostEqual(c.Yaw, 180+100*0.6) {
		t.Errorf("Yaw = %v, want %v", c.Yaw, 180+100*0.6)
	}
	if !almostEqual(c.Pitch, -50*0.6) {
		t.Errorf("Pitch = %v, want %v", c.Pitch, -50*0.6)
	}

	c.Look(0, -10000)
	if c.Pitch != 89 {
		t.Errorf("Pitch after looking far up = %v, want clamp at 89", c.Pitch)
	}
	c.Look(0, 10000)
	if c.Pitch != -89 {
		t.Errorf("Pitch after looking far down = %v, want clamp at -89", c.Pitch)
	}
}

func TestCameraMove(t *testing.T) {
	c := NewCamera()
	c.Move(1, 0, 0.1) // 50 units along -X
	if !vectorsAlmostEqual(c.Position, guac.Vector{-50, 0, 0}) {
		t.Errorf("Position after forward = %v, want %v", c.Position, guac.Vector{-50, 0, 0})
	}
	c.Move(-1, 0, 0.1)
	if !vectorsAlmostEqual(c.Position, guac.Vector{0, 0, 0}) {
		t.Errorf("Position after backing up = %v, want origin", c.Position)
	}
	c.Move(0, 1, 0.1) // 50 units to the right, -Z when facing -X
	if !vectorsAlmostEqual(c.Position, guac.Vector{0, 0, -50}) {
		t.Errorf("Position after strafe = %v, want %v", c.Position, guac.Vector{0, 0, -50})
	}
}

func TestCameraView(t *testing.T) {
	c := NewCamera() // at origin, facing -X
	view := c.View()

	// A point straight ahead lands on the view-space -Z axis.
	got := view.MulPosition(guac.Vector{-5, 0, 0})
	want := guac.Vector{0, 0, -5}
	if !vectorsAlmostEqual(got, want) {
		t.Errorf("view transform of point ahead = %v, want %v", got, want)
	}

	// The camera position maps to the view-space origin.
	c.Position = guac.Vector{3, 4, 5}
	got = c.View().MulPosition(c.Position)
	if !vectorsAlmostEqual(got, guac.Vector{0, 0, 0}) {
		t.Errorf("view transform of camera position = %v, want origin", got)
	}
}
