package viewer

import (
	"math"

	"github.com/guacgl/guac"
)

// Camera is a free-fly camera. Pitch and Yaw are in degrees; yaw 0 looks
// down +X and grows toward +Z, pitch 89 looks almost straight up.
type Camera struct {
	Position    guac.Vector
	Pitch       float64
	Yaw         float64
	Speed       float64 // world units per second
	Sensitivity float64 // degrees per pixel of mouse travel
}

func NewCamera() *Camera {
	return &Camera{Yaw: 180, Speed: 500, Sensitivity: 0.6}
}

// Direction returns the unit view direction.
func (c *Camera) Direction() guac.Vector {
	p := guac.Radians(c.Pitch)
	y := guac.Radians(c.Yaw)
	return guac.Vector{math.Cos(p) * math.Cos(y), math.Sin(p), math.Cos(p) * math.Sin(y)}
}

// Sideways returns the unit vector to the camera's right, level with the
// horizon.
func (c *Camera) Sideways() guac.Vector {
	return c.Direction().Cross(guac.Vector{0, 1, 0}).Normalize()
}

// Look turns the camera by a mouse delta in pixels. Positive dx turns right,
// positive dy looks down. Pitch is clamped short of the poles so the view
// direction never lines up with the up axis.
func (c *Camera) Look(dx, dy float64) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch -= dy * c.Sensitivity
	c.Pitch = guac.Clamp(c.Pitch, -89, 89)
}

// Move flies the camera for dt seconds along its view direction and to its
// side. forward and sideways are key axes in -1..1.
func (c *Camera) Move(forward, sideways, dt float64) {
	if forward != 0 {
		c.Position = c.Position.Add(c.Direction().MulScalar(forward * c.Speed * dt))
	}
	if sideways != 0 {
		c.Position = c.Position.Add(c.Sideways().MulScalar(sideways * c.Speed * dt))
	}
}

// View returns the camera's view matrix.
func (c *Camera) View() guac.Matrix {
	return guac.LookAt(c.Position, c.Position.Add(c.Direction()), guac.Vector{0, 1, 0})
}
