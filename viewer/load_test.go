package viewer

import (
	"testing"

	"github.com/guacgl/guac"
	"github.com/guacgl/guac/bsp"
)

func TestBSPStartFromSpawnPoint(t *testing.T) {
	level := &bsp.File{Entities: `{
"classname" "worldspawn"
}
{
"classname" "info_player_deathmatch"
"origin" "100 200 48"
"angle" "90"
}`}
	start := bspStart(level)
	if start == nil {
		t.Fatal("bspStart() = nil, want a start at the spawn point")
	}
	// Map space is Z-up; standing the map upright moves (x, y, z) to
	// (x, z, -y) and mirrors the yaw angle.
	want := guac.Vector{100, 48, -200}
	if !vectorsAlmostEqual(start.Position, want) {
		t.Errorf("start.Position = %v, want %v", start.Position, want)
	}
	if !almostEqual(start.Yaw, -90) {
		t.Errorf("start.Yaw = %v, want -90", start.Yaw)
	}
}

func TestBSPStartWithoutSpawnPoints(t *testing.T) {
	level := &bsp.File{Entities: `{
"classname" "worldspawn"
"message" "empty arena"
}`}
	if start := bspStart(level); start != nil {
		t.Errorf("bspStart() = %+v, want nil for a level without spawn points", start)
	}
}

func TestBSPStartDefaultsYaw(t *testing.T) {
	level := &bsp.File{Entities: `{
"classname" "info_player_deathmatch"
"origin" "0 0 24"
}`}
	start := bspStart(level)
	if start == nil {
		t.Fatal("bspStart() = nil, want a start")
	}
	if start.Yaw != 180 {
		t.Errorf("start.Yaw = %v, want the default 180 when the spawn has no angle", start.Yaw)
	}
}
