package guac

import "math"

// Matrix is a row-major 4x4 transformation matrix for column vectors:
// transformed = M * v.
type Matrix struct {
	X00, X01, X02, X03 float64
	X10, X11, X12, X13 float64
	X20, X21, X22, X23 float64
	X30, X31, X32, X33 float64
}

func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1}
}

func Translate(v Vector) Matrix {
	return Matrix{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1}
}

func Scale(v Vector) Matrix {
	return Matrix{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1}
}

// Rotate returns a rotation of angle radians about the axis v,
// counter-clockwise when the axis points toward the viewer.
func Rotate(v Vector, angle float64) Matrix {
	v = v.Normalize()
	s := math.Sin(angle)
	c := math.Cos(angle)
	m := 1 - c
	return Matrix{
		m*v.X*v.X + c, m*v.X*v.Y - v.Z*s, m*v.X*v.Z + v.Y*s, 0,
		m*v.X*v.Y + v.Z*s, m*v.Y*v.Y + c, m*v.Y*v.Z - v.X*s, 0,
		m*v.X*v.Z - v.Y*s, m*v.Y*v.Z + v.X*s, m*v.Z*v.Z + c, 0,
		0, 0, 0, 1}
}

func Frustum(l, r, b, t, n, f float64) Matrix {
	t1 := 2 * n
	t2 := r - l
	t3 := t - b
	t4 := f - n
	return Matrix{
		t1 / t2, 0, (r + l) / t2, 0,
		0, t1 / t3, (t + b) / t3, 0,
		0, 0, (-f - n) / t4, (-t1 * f) / t4,
		0, 0, -1, 0}
}

func Orthographic(l, r, b, t, n, f float64) Matrix {
	return Matrix{
		2 / (r - l), 0, 0, -(r + l) / (r - l),
		0, 2 / (t - b), 0, -(t + b) / (t - b),
		0, 0, -2 / (f - n), -(f + n) / (f - n),
		0, 0, 0, 1}
}

// Perspective returns a projection with the vertical field of view fovy in
// degrees.
func Perspective(fovy, aspect, near, far float64) Matrix {
	ymax := near * math.Tan(Radians(fovy)/2)
	xmax := ymax * aspect
	return Frustum(-xmax, xmax, -ymax, ymax, near, far)
}

// LookAt returns the view matrix of a camera at eye looking at center.
func LookAt(eye, center, up Vector) Matrix {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up.Normalize()).Normalize()
	u := s.Cross(f)
	return Matrix{
		s.X, s.Y, s.Z, -s.Dot(eye),
		u.X, u.Y, u.Z, -u.Dot(eye),
		-f.X, -f.Y, -f.Z, f.Dot(eye),
		0, 0, 0, 1}
}

// Screen maps normalized device coordinates to pixel coordinates, flipping Y
// and mapping Z to [0, 1].
func Screen(w, h int) Matrix {
	w2 := float64(w) / 2
	h2 := float64(h) / 2
	return Matrix{
		w2, 0, 0, w2,
		0, -h2, 0, h2,
		0, 0, 0.5, 0.5,
		0, 0, 0, 1}
}

func (m Matrix) Translate(v Vector) Matrix {
	return Translate(v).Mul(m)
}

func (m Matrix) Scale(v Vector) Matrix {
	return Scale(v).Mul(m)
}

func (m Matrix) Rotate(v Vector, angle float64) Matrix {
	return Rotate(v, angle).Mul(m)
}

func (m Matrix) Frustum(l, r, b, t, n, f float64) Matrix {
	return Frustum(l, r, b, t, n, f).Mul(m)
}

func (m Matrix) Orthographic(l, r, b, t, n, f float64) Matrix {
	return Orthographic(l, r, b, t, n, f).Mul(m)
}

func (m Matrix) Perspective(fovy, aspect, near, far float64) Matrix {
	return Perspective(fovy, aspect, near, far).Mul(m)
}

func (a Matrix) Mul(b Matrix) Matrix {
	m := Matrix{}
	m.X00 = a.X00*b.X00 + a.X01*b.X10 + a.X02*b.X20 + a.X03*b.X30
	m.X10 = a.X10*b.X00 + a.X11*b.X10 + a.X12*b.X20 + a.X13*b.X30
	m.X20 = a.X20*b.X00 + a.X21*b.X10 + a.X22*b.X20 + a.X23*b.X30
	m.X30 = a.X30*b.X00 + a.X31*b.X10 + a.X32*b.X20 + a.X33*b.X30
	m.X01 = a.X00*b.X01 + a.X01*b.X11 + a.X02*b.X21 + a.X03*b.X31
	m.X11 = a.X10*b.X01 + a.X11*b.X11 + a.X12*b.X21 + a.X13*b.X31
	m.X21 = a.X20*b.X01 + a.X21*b.X11 + a.X22*b.X21 + a.X23*b.X31
	m.X31 = a.X30*b.X01 + a.X31*b.X11 + a.X32*b.X21 + a.X33*b.X31
	m.X02 = a.X00*b.X02 + a.X01*b.X12 + a.X02*b.X22 + a.X03*b.X32
	m.X12 = a.X10*b.X02 + a.X11*b.X12 + a.X12*b.X22 + a.X13*b.X32
	m.X22 = a.X20*b.X02 + a.X21*b.X12 + a.X22*b.X22 + a.X23*b.X32
	m.X32 = a.X30*b.X02 + a.X31*b.X12 + a.X32*b.X22 + a.X33*b.X32
	m.X03 = a.X00*b.X03 + a.X01*b.X13 + a.X02*b.X23 + a.X03*b.X33
	m.X13 = a.X10*b.X03 + a.X11*b.X13 + a.X12*b.X23 + a.X13*b.X33
	m.X23 = a.X20*b.X03 + a.X21*b.X13 + a.X22*b.X23 + a.X23*b.X33
	m.X33 = a.X30*b.X03 + a.X31*b.X13 + a.X32*b.X23 + a.X33*b.X33
	return m
}

// MulPosition transforms b as a point, assuming an affine matrix.
func (a Matrix) MulPosition(b Vector) Vector {
	x := a.X00*b.X + a.X01*b.Y + a.X02*b.Z + a.X03
	y := a.X10*b.X + a.X11*b.Y + a.X12*b.Z + a.X13
	z := a.X20*b.X + a.X21*b.Y + a.X22*b.Z + a.X23
	return Vector{x, y, z}
}

// MulPositionW transforms b as a point with an explicit homogeneous
// coordinate, preserving the resulting W.
func (a Matrix) MulPositionW(b Vector) VectorW {
	x := a.X00*b.X + a.X01*b.Y + a.X02*b.Z + a.X03
	y := a.X10*b.X + a.X11*b.Y + a.X12*b.Z + a.X13
	z := a.X20*b.X + a.X21*b.Y + a.X22*b.Z + a.X23
	w := a.X30*b.X + a.X31*b.Y + a.X32*b.Z + a.X33
	return VectorW{x, y, z, w}
}

// MulDirection transforms b by the upper 3x3 of the matrix. The result is
// not normalized.
func (a Matrix) MulDirection(b Vector) Vector {
	x := a.X00*b.X + a.X01*b.Y + a.X02*b.Z
	y := a.X10*b.X + a.X11*b.Y + a.X12*b.Z
	z := a.X20*b.X + a.X21*b.Y + a.X22*b.Z
	return Vector{x, y, z}
}

func (a Matrix) MulBox(box Box) Box {
	r := Box{}
	for i, p := range box.Corners() {
		p = a.MulPosition(p)
		if i == 0 {
			r = Box{p, p}
			continue
		}
		r.Min = r.Min.Min(p)
		r.Max = r.Max.Max(p)
	}
	return r
}

func (a Matrix) Transpose() Matrix {
	return Matrix{
		a.X00, a.X10, a.X20, a.X30,
		a.X01, a.X11, a.X21, a.X31,
		a.X02, a.X12, a.X22, a.X32,
		a.X03, a.X13, a.X23, a.X33}
}

func (a Matrix) Determinant() float64 {
	a2323 := a.X22*a.X33 - a.X23*a.X32
	a1323 := a.X21*a.X33 - a.X23*a.X31
	a1223 := a.X21*a.X32 - a.X22*a.X31
	a0323 := a.X20*a.X33 - a.X23*a.X30
	a0223 := a.X20*a.X32 - a.X22*a.X30
	a0123 := a.X20*a.X31 - a.X21*a.X30
	return a.X00*(a.X11*a2323-a.X12*a1323+a.X13*a1223) -
		a.X01*(a.X10*a2323-a.X12*a0323+a.X13*a0223) +
		a.X02*(a.X10*a1323-a.X11*a0323+a.X13*a0123) -
		a.X03*(a.X10*a1223-a.X11*a0223+a.X12*a0123)
}

// Inverse inverts the matrix by cofactor expansion. The matrix must be
// non-singular; a singular input produces garbage, not an error.
func (a Matrix) Inverse() Matrix {
	a2323 := a.X22*a.X33 - a.X23*a.X32
	a1323 := a.X21*a.X33 - a.X23*a.X31
	a1223 := a.X21*a.X32 - a.X22*a.X31
	a0323 := a.X20*a.X33 - a.X23*a.X30
	a0223 := a.X20*a.X32 - a.X22*a.X30
	a0123 := a.X20*a.X31 - a.X21*a.X30
	a2313 := a.X12*a.X33 - a.X13*a.X32
	a1313 := a.X11*a.X33 - a.X13*a.X31
	a1213 := a.X11*a.X32 - a.X12*a.X31
	a2312 := a.X12*a.X23 - a.X13*a.X22
	a1312 := a.X11*a.X23 - a.X13*a.X21
	a1212 := a.X11*a.X22 - a.X12*a.X21
	a0313 := a.X10*a.X33 - a.X13*a.X30
	a0213 := a.X10*a.X32 - a.X12*a.X30
	a0312 := a.X10*a.X23 - a.X13*a.X20
	a0212 := a.X10*a.X22 - a.X12*a.X20
	a0113 := a.X10*a.X31 - a.X11*a.X30
	a0112 := a.X10*a.X21 - a.X11*a.X20

	r := 1 / (a.X00*(a.X11*a2323-a.X12*a1323+a.X13*a1223) -
		a.X01*(a.X10*a2323-a.X12*a0323+a.X13*a0223) +
		a.X02*(a.X10*a1323-a.X11*a0323+a.X13*a0123) -
		a.X03*(a.X10*a1223-a.X11*a0223+a.X12*a0123))

	m := Matrix{}
	m.X00 = r * (a.X11*a2323 - a.X12*a1323 + a.X13*a1223)
	m.X01 = r * -(a.X01*a2323 - a.X02*a1323 + a.X03*a1223)
	m.X02 = r * (a.X01*a2313 - a.X02*a1313 + a.X03*a1213)
	m.X03 = r * -(a.X01*a2312 - a.X02*a1312 + a.X03*a1212)
	m.X10 = r * -(a.X10*a2323 - a.X12*a0323 + a.X13*a0223)
	m.X11 = r * (a.X00*a2323 - a.X02*a0323 + a.X03*a0223)
	m.X12 = r * -(a.X00*a2313 - a.X02*a0313 + a.X03*a0213)
	m.X13 = r * (a.X00*a2312 - a.X02*a0312 + a.X03*a0212)
	m.X20 = r * (a.X10*a1323 - a.X11*a0323 + a.X13*a0123)
	m.X21 = r * -(a.X00*a1323 - a.X01*a0323 + a.X03*a0123)
	m.X22 = r * (a.X00*a1313 - a.X01*a0313 + a.X03*a0113)
	m.X23 = r * -(a.X00*a1312 - a.X01*a0312 + a.X03*a0112)
	m.X30 = r * -(a.X10*a1223 - a.X11*a0223 + a.X12*a0123)
	m.X31 = r * (a.X00*a1223 - a.X01*a0223 + a.X02*a0123)
	m.X32 = r * -(a.X00*a1213 - a.X01*a0213 + a.X02*a0113)
	m.X33 = r * (a.X00*a1212 - a.X01*a0212 + a.X02*a0112)
	return m
}
