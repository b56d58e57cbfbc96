package viewer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/guacgl/guac"
	"github.com/guacgl/guac/bsp"
)

// Start is a suggested camera placement taken from the loaded file.
type Start struct {
	Position guac.Vector
	Yaw      float64
}

// Load reads path into a renderable object. BSP levels come back with the
// map stood upright (a -90 degree rotation about X, so map +Z becomes +Y)
// and a Start at the level's first deathmatch spawn point when it has one.
// OBJ and glTF files load as-is with an identity matrix. http and https
// URLs are fetched as OBJ.
func Load(path string) (*guac.Object, *Start, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		mesh, err := guac.LoadMeshFromURL(path)
		if err != nil {
			return nil, nil, err
		}
		return guac.NewObjectFromMesh(mesh), nil, nil
	}
	if strings.ToLower(filepath.Ext(path)) == ".bsp" {
		return loadBSP(path)
	}
	object, err := guac.NewObjectFromFile(path)
	if err != nil {
		return nil, nil, err
	}
	return object, nil, nil
}

func loadBSP(path string) (*guac.Object, *Start, error) {
	level, err := bsp.Load(path)
	if err != nil {
		return nil, nil, err
	}
	mesh, err := level.TriangleMesh()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	object := guac.NewObjectFromMesh(mesh)
	object.Matrix = guac.Rotate(guac.Vector{1, 0, 0}, guac.Radians(-90))
	object.UseVertexColor = true
	object.Color = guac.HexColor("777")
	return object, bspStart(level), nil
}

// bspStart picks the first spawn point and carries it into world space.
// The upright rotation maps a map-space point (x, y, z) to (x, z, -y) and
// flips the sense of the yaw angle.
func bspStart(level *bsp.File) *Start {
	entities, err := level.ParseEntities()
	if err != nil {
		guac.Logger().Warn("entities unreadable", "error", err)
		return nil
	}
	spawns := bsp.SpawnPoints(entities)
	if len(spawns) == 0 {
		return nil
	}
	origin, ok := spawns[0].Origin()
	if !ok {
		return nil
	}
	start := &Start{Position: guac.Vector{origin.X, origin.Z, -origin.Y}, Yaw: 180}
	if angle, ok := spawns[0].Angle(); ok {
		start.Yaw = -angle
	}
	return start
}
