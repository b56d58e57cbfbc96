package guac

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF loads a .gltf or .glb file as a single mesh. Positions, normals,
// texture coordinates and vertex colors are read; materials are not.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf %s: %w", path, err)
	}

	var allTriangles []*Triangle

	for _, mesh := range doc.Meshes {
		for _, primitive := range mesh.Primitives {
			if primitive.Mode != gltf.PrimitiveTriangles {
				continue
			}

			posIdx, ok := primitive.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("gltf %s: read positions: %w", path, err)
			}

			var normals [][3]float32
			if normIdx, ok := primitive.Attributes[gltf.NORMAL]; ok {
				normals, _ = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
			}

			var texCoords [][2]float32
			if texIdx, ok := primitive.Attributes[gltf.TEXCOORD_0]; ok {
				texCoords, _ = modeler.ReadTextureCoord(doc, doc.Accessors[texIdx], nil)
			}

			var colors [][4]uint8
			if colorIdx, ok := primitive.Attributes[gltf.COLOR_0]; ok {
				colors, _ = modeler.ReadColor(doc, doc.Accessors[colorIdx], nil)
			}

			var indices []uint32
			if primitive.Indices != nil {
				// ReadIndices widens uint8/uint16 index buffers to uint32.
				indices, err = modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("gltf %s: read indices: %w", path, err)
				}
			} else {
				indices = make([]uint32, len(positions))
				for k := range indices {
					indices[k] = uint32(k)
				}
			}

			vertexAt := func(idx uint32) Vertex {
				v := Vertex{Color: White}
				p := positions[idx]
				v.Position = Vector{float64(p[0]), float64(p[1]), float64(p[2])}
				if int(idx) < len(normals) {
					n := normals[idx]
					v.Normal = Vector{float64(n[0]), float64(n[1]), float64(n[2])}
				}
				if int(idx) < len(texCoords) {
					tc := texCoords[idx]
					v.Texture = Vector{float64(tc[0]), float64(tc[1]), 0}
				}
				if int(idx) < len(colors) {
					c := colors[idx]
					v.Color = Color{float64(c[0]) / 255, float64(c[1]) / 255, float64(c[2]) / 255, float64(c[3]) / 255}
				}
				return v
			}

			for i := 0; i+2 < len(indices); i += 3 {
				t := NewTriangle(vertexAt(indices[i]), vertexAt(indices[i+1]), vertexAt(indices[i+2]))
				t.FixNormals()
				allTriangles = append(allTriangles, t)
			}
		}
	}

	if len(allTriangles) == 0 {
		return nil, fmt.Errorf("gltf %s: no triangles", path)
	}

	return NewTriangleMesh(allTriangles), nil
}
