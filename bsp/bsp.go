// Package bsp reads Quake III Arena BSP files: the binary header, the lump
// directory and the lumps needed to reconstruct renderable level geometry.
package bsp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guacgl/guac"
)

const (
	// Magic is the four-byte identifier at the start of every IBSP file.
	Magic = "IBSP"
	// Version is the BSP revision shipped with Quake III Arena.
	Version = 46
)

var ErrBadMagic = errors.New("bsp: bad magic")

// Lump indices into the header directory, in file order.
const (
	LumpEntities = iota
	LumpTextures
	LumpPlanes
	LumpNodes
	LumpLeafs
	LumpLeafFaces
	LumpLeafBrushes
	LumpModels
	LumpBrushes
	LumpBrushSides
	LumpVertexes
	LumpMeshVerts
	LumpEffects
	LumpFaces
	LumpLightmaps
	LumpLightVols
	LumpVisData
	lumpCount
)

// DirEntry locates one lump within the file.
type DirEntry struct {
	Offset int32
	Length int32
}

type Header struct {
	Magic      [4]byte
	Version    int32
	DirEntries [lumpCount]DirEntry
}

type Texture struct {
	Name     [64]byte
	Flags    int32
	Contents int32
}

// NameString returns the texture path without trailing NULs.
func (t *Texture) NameString() string {
	return string(bytes.TrimRight(t.Name[:], "\x00"))
}

type Plane struct {
	Normal [3]float32
	Dist   float32
}

type Node struct {
	Plane    int32
	Children [2]int32
	Mins     [3]int32
	Maxs     [3]int32
}

type Leaf struct {
	Cluster        int32
	Area           int32
	Mins           [3]int32
	Maxs           [3]int32
	LeafFace       int32
	NumLeafFaces   int32
	LeafBrush      int32
	NumLeafBrushes int32
}

type Model struct {
	Mins       [3]float32
	Maxs       [3]float32
	Face       int32
	NumFaces   int32
	Brush      int32
	NumBrushes int32
}

type Brush struct {
	BrushSide     int32
	NumBrushSides int32
	Texture       int32
}

type BrushSide struct {
	Plane   int32
	Texture int32
}

// Vertex is the on-disk vertex record: 44 bytes. TexCoord holds surface and
// lightmap coordinates in that order. Color is straight RGBA bytes.
type Vertex struct {
	Position [3]float32
	TexCoord [2][2]float32
	Normal   [3]float32
	Color    [4]uint8
}

type Effect struct {
	Name  [64]byte
	Brush int32
	// The trailing int is always 5 in stock maps; its meaning is unknown.
	Unknown int32
}

// Face types stored in Face.Type.
const (
	FacePolygon   = 1
	FacePatch     = 2
	FaceMesh      = 3
	FaceBillboard = 4
)

type Face struct {
	Texture        int32
	Effect         int32
	Type           int32
	Vertex         int32
	NumVertexes    int32
	MeshVert       int32
	NumMeshVerts   int32
	LightmapIndex  int32
	LightmapStart  [2]int32
	LightmapSize   [2]int32
	LightmapOrigin [3]float32
	LightmapVecs   [2][3]float32
	Normal         [3]float32
	Size           [2]int32
}

// File is a parsed BSP. The lumps that renderable geometry needs are fully
// decoded; the remaining lumps stay accessible through RawLump.
type File struct {
	Header      Header
	Entities    string
	Textures    []Texture
	Planes      []Plane
	Nodes       []Node
	Leafs       []Leaf
	LeafFaces   []int32
	LeafBrushes []int32
	Models      []Model
	Brushes     []Brush
	BrushSides  []BrushSide
	Vertexes    []Vertex
	MeshVerts   []int32
	Effects     []Effect
	Faces       []Face

	raw []byte
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bsp: open %s: %w", path, err)
	}
	f, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("bsp: %s: %w", path, err)
	}
	return f, nil
}

func Decode(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("bsp: read: %w", err)
	}
	return decode(data)
}

func decode(data []byte) (*File, error) {
	br := bytes.NewReader(data)
	var header Header
	if err := binary.Read(br, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	if string(header.Magic[:]) != Magic {
		return nil, fmt.Errorf("%w: %q", ErrBadMagic, header.Magic[:])
	}
	if header.Version != Version {
		// RTCW and Quake Live files share the layout under other versions;
		// parse them anyway.
		guac.Logger().Warn("bsp: unexpected version", "version", header.Version)
	}

	f := &File{Header: header, raw: data}
	dir := header.DirEntries

	ent, err := rawLump(data, dir[LumpEntities], "entities")
	if err != nil {
		return nil, err
	}
	f.Entities = strings.TrimRight(string(ent), "\x00")

	if f.Textures, err = readLump[Texture](data, dir[LumpTextures], "textures"); err != nil {
		return nil, err
	}
	if f.Planes, err = readLump[Plane](data, dir[LumpPlanes], "planes"); err != nil {
		return nil, err
	}
	if f.Nodes, err = readLump[Node](data, dir[LumpNodes], "nodes"); err != nil {
		return nil, err
	}
	if f.Leafs, err = readLump[Leaf](data, dir[LumpLeafs], "leafs"); err != nil {
		return nil, err
	}
	if f.LeafFaces, err = readLump[int32](data, dir[LumpLeafFaces], "leaffaces"); err != nil {
		return nil, err
	}
	if f.LeafBrushes, err = readLump[int32](data, dir[LumpLeafBrushes], "leafbrushes"); err != nil {
		return nil, err
	}
	if f.Models, err = readLump[Model](data, dir[LumpModels], "models"); err != nil {
		return nil, err
	}
	if f.Brushes, err = readLump[Brush](data, dir[LumpBrushes], "brushes"); err != nil {
		return nil, err
	}
	if f.BrushSides, err = readLump[BrushSide](data, dir[LumpBrushSides], "brushsides"); err != nil {
		return nil, err
	}
	if f.Vertexes, err = readLump[Vertex](data, dir[LumpVertexes], "vertexes"); err != nil {
		return nil, err
	}
	if f.MeshVerts, err = readLump[int32](data, dir[LumpMeshVerts], "meshverts"); err != nil {
		return nil, err
	}
	if f.Effects, err = readLump[Effect](data, dir[LumpEffects], "effects"); err != nil {
		return nil, err
	}
	if f.Faces, err = readLump[Face](data, dir[LumpFaces], "faces"); err != nil {
		return nil, err
	}

	guac.Logger().Info("bsp: parsed",
		"version", header.Version,
		"models", len(f.Models),
		"faces", len(f.Faces),
		"vertexes", len(f.Vertexes))
	return f, nil
}

// RawLump returns the undecoded bytes of a lump, for the lumps this package
// does not interpret (lightmaps, light volumes, visibility data).
func (f *File) RawLump(index int) ([]byte, error) {
	if index < 0 || index >= lumpCount {
		return nil, fmt.Errorf("bsp: lump index %d out of range", index)
	}
	return rawLump(f.raw, f.Header.DirEntries[index], fmt.Sprintf("lump %d", index))
}

func rawLump(data []byte, dir DirEntry, what string) ([]byte, error) {
	off, n := int(dir.Offset), int(dir.Length)
	if off < 0 || n < 0 || off+n > len(data) {
		return nil, fmt.Errorf("%s lump out of range", what)
	}
	return data[off : off+n], nil
}

// readLump decodes a lump as a contiguous array of fixed-size records. A
// trailing partial record is ignored.
func readLump[T any](data []byte, dir DirEntry, what string) ([]T, error) {
	raw, err := rawLump(data, dir, what)
	if err != nil {
		return nil, err
	}
	var zero T
	size := binary.Size(zero)
	n := len(raw) / size
	out := make([]T, n)
	if n == 0 {
		return out, nil
	}
	if err := binary.Read(bytes.NewReader(raw[:n*size]), binary.LittleEndian, out); err != nil {
		return nil, fmt.Errorf("%s lump: %w", what, err)
	}
	return out, nil
}
