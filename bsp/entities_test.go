package bsp

import (
	"strings"
	"testing"

	"github.com/guacgl/guac"
)

func TestParseEntities(t *testing.T) {
	entities, err := ParseEntities(testEntities)
	if err != nil {
		t.Fatal(err)
	}
	if len(entities) != 2 {
		t.Fatalf("got %d entities, want 2", len(entities))
	}
	if got := entities[0].ClassName(); got != "worldspawn" {
		t.Errorf("classname = %q", got)
	}
	if got := entities[0]["message"]; got != "dead simple" {
		t.Errorf("message = %q", got)
	}
	if got := entities[1]["origin"]; got != "100 200 48" {
		t.Errorf("origin = %q", got)
	}
}

func TestParseEntitiesEmpty(t *testing.T) {
	entities, err := ParseEntities("")
	if err != nil {
		t.Fatal(err)
	}
	if len(entities) != 0 {
		t.Errorf("got %d entities, want 0", len(entities))
	}
}

func TestParseEntitiesErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		src  string
		want string
	}{
		{"nested block", `{ {`, "nested block"},
		{"unmatched close", `}`, "unmatched close"},
		{"pair outside block", `"classname" "worldspawn"`, "outside block"},
		{"missing value", `{ "classname" }`, "expected value string"},
		{"unterminated block", `{ "classname" "worldspawn"`, "unterminated block"},
		{"unterminated string", `{ "classname`, "unterminated string"},
		{"garbage", `classname`, "unexpected"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEntities(tt.src)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestEntityOrigin(t *testing.T) {
	e := Entity{"origin": "100 200 48"}
	v, ok := e.Origin()
	if !ok || !vectorAlmostEqual(v, guac.Vector{X: 100, Y: 200, Z: 48}) {
		t.Errorf("Origin() = %v, %v", v, ok)
	}

	if _, ok := (Entity{}).Origin(); ok {
		t.Error("missing origin parsed")
	}
	if _, ok := (Entity{"origin": "1 2"}).Origin(); ok {
		t.Error("two-field origin parsed")
	}
}

func TestEntityAngle(t *testing.T) {
	if a, ok := (Entity{"angle": "90"}).Angle(); !ok || !almostEqual(a, 90) {
		t.Errorf("Angle() = %v, %v", a, ok)
	}
	if _, ok := (Entity{}).Angle(); ok {
		t.Error("missing angle parsed")
	}
	if _, ok := (Entity{"angle": "north"}).Angle(); ok {
		t.Error("malformed angle parsed")
	}
}

func TestSpawnPoints(t *testing.T) {
	entities := []Entity{
		{"classname": "worldspawn"},
		{"classname": "info_player_deathmatch", "origin": "0 0 24"},
		{"classname": "light"},
		{"classname": "info_player_deathmatch", "origin": "512 0 24"},
	}
	spawns := SpawnPoints(entities)
	if len(spawns) != 2 {
		t.Fatalf("got %d spawn points, want 2", len(spawns))
	}
	if got := spawns[1]["origin"]; got != "512 0 24" {
		t.Errorf("second spawn origin = %q", got)
	}
	if got := FilterEntities(entities, "func_door"); len(got) != 0 {
		t.Errorf("FilterEntities found %d func_door entities", len(got))
	}
}
