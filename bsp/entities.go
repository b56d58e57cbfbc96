package bsp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/guacgl/guac"
)

// Entity is one key/value block from the entities lump.
type Entity map[string]string

func (e Entity) ClassName() string {
	return e["classname"]
}

// Origin parses the entity's "origin" key as a point in map coordinates.
func (e Entity) Origin() (guac.Vector, bool) {
	s, ok := e["origin"]
	if !ok {
		return guac.Vector{}, false
	}
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return guac.Vector{}, false
	}
	v := guac.ParseFloats(fields)
	return guac.Vector{X: v[0], Y: v[1], Z: v[2]}, true
}

// Angle parses the entity's facing in degrees.
func (e Entity) Angle() (float64, bool) {
	s, ok := e["angle"]
	if !ok {
		return 0, false
	}
	a, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return a, true
}

// ParseEntities parses the entities lump text: a sequence of brace-delimited
// blocks of quoted key/value pairs.
func ParseEntities(src string) ([]Entity, error) {
	var entities []Entity
	var current Entity
	i := 0
	for i < len(src) {
		switch c := src[i]; {
		case c == '{':
			if current != nil {
				return nil, fmt.Errorf("bsp: entities: nested block at offset %d", i)
			}
			current = Entity{}
			i++
		case c == '}':
			if current == nil {
				return nil, fmt.Errorf("bsp: entities: unmatched close at offset %d", i)
			}
			entities = append(entities, current)
			current = nil
			i++
		case c == '"':
			if current == nil {
				return nil, fmt.Errorf("bsp: entities: value outside block at offset %d", i)
			}
			key, next, err := readQuoted(src, i)
			if err != nil {
				return nil, err
			}
			value, next, err := readQuotedAfterSpace(src, next)
			if err != nil {
				return nil, err
			}
			current[key] = value
			i = next
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		default:
			return nil, fmt.Errorf("bsp: entities: unexpected %q at offset %d", c, i)
		}
	}
	if current != nil {
		return nil, fmt.Errorf("bsp: entities: unterminated block")
	}
	return entities, nil
}

func readQuoted(src string, i int) (string, int, error) {
	j := strings.IndexByte(src[i+1:], '"')
	if j < 0 {
		return "", 0, fmt.Errorf("bsp: entities: unterminated string at offset %d", i)
	}
	return src[i+1 : i+1+j], i + j + 2, nil
}

func readQuotedAfterSpace(src string, i int) (string, int, error) {
	for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	if i >= len(src) || src[i] != '"' {
		return "", 0, fmt.Errorf("bsp: entities: expected value string at offset %d", i)
	}
	return readQuoted(src, i)
}

// ParseEntities parses the file's entities lump.
func (f *File) ParseEntities() ([]Entity, error) {
	return ParseEntities(f.Entities)
}

// FilterEntities returns the entities with the given classname.
func FilterEntities(entities []Entity, classname string) []Entity {
	var out []Entity
	for _, e := range entities {
		if e.ClassName() == classname {
			out = append(out, e)
		}
	}
	return out
}

// SpawnPoints returns the deathmatch spawn entities.
func SpawnPoints(entities []Entity) []Entity {
	return FilterEntities(entities, "info_player_deathmatch")
}
