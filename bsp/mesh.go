package bsp

import (
	"fmt"

	"github.com/guacgl/guac"
)

// TriangleMesh converts the worldspawn model (model 0) into a mesh.
func (f *File) TriangleMesh() (*guac.Mesh, error) {
	return f.ModelMesh(0)
}

// ModelMesh converts one BSP model's renderable faces into a mesh. Polygon
// and mesh faces triangulate through the meshverts lump; patches and
// billboards are skipped. Out-of-range indices are dropped rather than
// failing the whole model.
func (f *File) ModelMesh(index int) (*guac.Mesh, error) {
	if index < 0 || index >= len(f.Models) {
		return nil, fmt.Errorf("bsp: model %d out of range", index)
	}
	model := f.Models[index]
	lo, hi := int(model.Face), int(model.Face)+int(model.NumFaces)
	if lo < 0 || hi > len(f.Faces) || lo > hi {
		return nil, fmt.Errorf("bsp: model %d faces out of range", index)
	}

	var triangles []*guac.Triangle
	skipped := 0
	for _, face := range f.Faces[lo:hi] {
		if face.Type != FacePolygon && face.Type != FaceMesh {
			continue
		}
		mlo, mhi := int(face.MeshVert), int(face.MeshVert)+int(face.NumMeshVerts)
		if mlo < 0 || mhi > len(f.MeshVerts) {
			skipped++
			continue
		}
		if (mhi-mlo)%3 != 0 {
			skipped++
		}
		for i := mlo; i+2 < mhi; i += 3 {
			i0 := int(face.Vertex) + int(f.MeshVerts[i])
			i1 := int(face.Vertex) + int(f.MeshVerts[i+1])
			i2 := int(face.Vertex) + int(f.MeshVerts[i+2])
			if !f.validVertex(i0) || !f.validVertex(i1) || !f.validVertex(i2) {
				skipped++
				continue
			}
			t := guac.NewTriangle(f.vertex(i0), f.vertex(i1), f.vertex(i2))
			t.FixNormals()
			triangles = append(triangles, t)
		}
	}
	if skipped > 0 {
		guac.Logger().Warn("bsp: skipped out-of-range geometry", "model", index, "count", skipped)
	}
	return guac.NewTriangleMesh(triangles), nil
}

func (f *File) validVertex(i int) bool {
	return i >= 0 && i < len(f.Vertexes)
}

// vertex converts an on-disk vertex. Color bytes scale by 1/256. The first
// texture coordinate pair is the surface mapping; the lightmap pair is
// dropped.
func (f *File) vertex(i int) guac.Vertex {
	v := f.Vertexes[i]
	return guac.Vertex{
		Position: guac.Vector{X: float64(v.Position[0]), Y: float64(v.Position[1]), Z: float64(v.Position[2])},
		Normal:   guac.Vector{X: float64(v.Normal[0]), Y: float64(v.Normal[1]), Z: float64(v.Normal[2])},
		Texture:  guac.Vector{X: float64(v.TexCoord[0][0]), Y: float64(v.TexCoord[0][1]), Z: 0},
		Color: guac.Color{
			R: float64(v.Color[0]) / 256,
			G: float64(v.Color[1]) / 256,
			B: float64(v.Color[2]) / 256,
			A: float64(v.Color[3]) / 256,
		},
	}
}

// Bounds returns a model's bounding box from its stored extents.
func (f *File) Bounds(index int) (guac.Box, error) {
	if index < 0 || index >= len(f.Models) {
		return guac.Box{}, fmt.Errorf("bsp: model %d out of range", index)
	}
	m := f.Models[index]
	return guac.Box{
		Min: guac.Vector{X: float64(m.Mins[0]), Y: float64(m.Mins[1]), Z: float64(m.Mins[2])},
		Max: guac.Vector{X: float64(m.Maxs[0]), Y: float64(m.Maxs[1]), Z: float64(m.Maxs[2])},
	}, nil
}
