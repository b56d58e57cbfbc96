package guac

import (
	"fmt"
	"net/http"
)

// Object pairs a mesh with its material and model matrix. Objects are what
// the renderer draws.
type Object struct {
	Mesh           *Mesh
	Texture        Texture
	Color          Color
	Matrix         Matrix
	UseVertexColor bool
}

func NewEmptyObject() *Object {
	return &Object{Matrix: Identity()}
}

func NewObject(triangles []*Triangle, lines []*Line) *Object {
	return &Object{Mesh: NewMesh(triangles, lines), Matrix: Identity()}
}

func NewObjectFromMesh(mesh *Mesh) *Object {
	return &Object{Mesh: mesh, Matrix: Identity()}
}

func NewTriangleObject(triangles []*Triangle) *Object {
	return &Object{Mesh: NewTriangleMesh(triangles), Matrix: Identity()}
}

func NewLineObject(lines []*Line) *Object {
	return &Object{Mesh: NewLineMesh(lines), Matrix: Identity()}
}

// NewObjectFromFile loads a mesh by file extension and defaults the object
// color to a neutral gray.
func NewObjectFromFile(path string) (*Object, error) {
	mesh, err := LoadMesh(path)
	if err != nil {
		return nil, fmt.Errorf("load object %s: %w", path, err)
	}
	o := NewObjectFromMesh(mesh)
	o.Color = HexColor("777")
	return o, nil
}

// SetColor sets every vertex color in the object's mesh.
func (o *Object) SetColor(c Color) {
	o.Mesh.SetColor(c)
}

// BoundingBox returns the mesh bounds under the object's model matrix.
func (o *Object) BoundingBox() Box {
	return o.Matrix.MulBox(o.Mesh.BoundingBox())
}

// LoadMeshFromURL fetches an OBJ mesh over HTTP.
func LoadMeshFromURL(url string) (*Mesh, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch mesh %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch mesh %s: %s", url, resp.Status)
	}
	mesh, err := LoadOBJFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch mesh %s: %w", url, err)
	}
	return mesh, nil
}
