package guac

// Primitives are clipped in clip space against the volume |x|,|y|,|z| <= w,
// before perspective division. Attributes interpolate linearly along clipped
// edges.

var clipPlanes = []VectorW{
	{-1, 0, 0, 1},
	{1, 0, 0, 1},
	{0, -1, 0, 1},
	{0, 1, 0, 1},
	{0, 0, -1, 1},
	{0, 0, 1, 1},
}

func clipDistance(plane VectorW, v Vertex) float64 {
	return plane.Dot(v.Output)
}

func clipVertex(v1, v2 Vertex, t float64) Vertex {
	v := Vertex{}
	v.Position = v1.Position.Lerp(v2.Position, t)
	v.Normal = v1.Normal.Lerp(v2.Normal, t)
	v.Texture = v1.Texture.Lerp(v2.Texture, t)
	v.Color = v1.Color.Lerp(v2.Color, t)
	v.Output = v1.Output.Lerp(v2.Output, t)
	return v
}

// ClipTriangle clips a triangle against the view volume, fanning the clipped
// polygon back into triangles. The result is empty when the triangle lies
// entirely outside.
func ClipTriangle(t *Triangle) []*Triangle {
	poly := []Vertex{t.V1, t.V2, t.V3}
	for _, plane := range clipPlanes {
		if len(poly) == 0 {
			return nil
		}
		input := poly
		poly = nil
		s := input[len(input)-1]
		ds := clipDistance(plane, s)
		for _, e := range input {
			de := clipDistance(plane, e)
			if de >= 0 {
				if ds < 0 {
					poly = append(poly, clipVertex(s, e, ds/(ds-de)))
				}
				poly = append(poly, e)
			} else if ds >= 0 {
				poly = append(poly, clipVertex(s, e, ds/(ds-de)))
			}
			s, ds = e, de
		}
	}
	var result []*Triangle
	for i := 2; i < len(poly); i++ {
		result = append(result, NewTriangle(poly[0], poly[i-1], poly[i]))
	}
	return result
}

// ClipLine clips a line segment against the view volume, returning nil when
// the segment lies entirely outside.
func ClipLine(l *Line) *Line {
	v1, v2 := l.V1, l.V2
	for _, plane := range clipPlanes {
		d1 := clipDistance(plane, v1)
		d2 := clipDistance(plane, v2)
		if d1 < 0 && d2 < 0 {
			return nil
		}
		if d1 < 0 {
			v1 = clipVertex(v1, v2, d1/(d1-d2))
		} else if d2 < 0 {
			v2 = clipVertex(v1, v2, d1/(d1-d2))
		}
	}
	return NewLine(v1, v2)
}
