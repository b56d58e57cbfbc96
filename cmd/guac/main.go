// Command guac views Quake III levels and other meshes with a software
// renderer. By default it opens a window with a fly camera; with -headless
// it renders a single frame to a PNG and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/guacgl/guac"
	"github.com/guacgl/guac/glsl"
	"github.com/guacgl/guac/viewer"
)

type options struct {
	headless    bool
	out         string
	width       int
	height      int
	supersample int
	shader      string
	wireframe   bool
	cull        string
	simplify    float64
	intensity   bool
	color       string
	bounds      bool
	eye         string
	look        string
	verbose     bool
	debug       bool
	dumpShaders bool
}

func main() {
	var opts options
	flag.BoolVar(&opts.headless, "headless", false, "Render one frame to a PNG and exit.")
	flag.StringVar(&opts.out, "o", "out.png", "Output path in headless mode.")
	flag.IntVar(&opts.width, "width", 1280, "Frame width in pixels.")
	flag.IntVar(&opts.height, "height", 720, "Frame height in pixels.")
	flag.IntVar(&opts.supersample, "ss", 1, "Supersample factor in headless mode.")
	flag.StringVar(&opts.shader, "shader", "world", "Shader: world, solid, phong, toon or normal.")
	flag.BoolVar(&opts.wireframe, "wireframe", false, "Draw triangle edges only.")
	flag.StringVar(&opts.cull, "cull", "none", "Face culling: none, back or front.")
	flag.Float64Var(&opts.simplify, "simplify", 0, "Simplify the mesh to this fraction of its triangles (0 keeps all).")
	flag.BoolVar(&opts.intensity, "intensity", false, "Shade the world shader by the fixed directional light.")
	flag.StringVar(&opts.color, "color", "", "Hex color painted over non-BSP meshes (e.g. 777 or #468966).")
	flag.BoolVar(&opts.bounds, "bounds", false, "Overlay the scene bounding box.")
	flag.StringVar(&opts.eye, "eye", "", "Camera position as x,y,z (default: spawn point or origin).")
	flag.StringVar(&opts.look, "look", "", "Point the camera looks at, as x,y,z.")
	flag.BoolVar(&opts.verbose, "v", false, "Log lifecycle events.")
	flag.BoolVar(&opts.debug, "vv", false, "Log per-frame diagnostics.")
	flag.BoolVar(&opts.dumpShaders, "dump-shaders", false, "Print the GLSL world pipeline and exit.")
	flag.Parse()

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelInfo
	}
	if opts.debug {
		level = slog.LevelDebug
	}
	guac.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if opts.dumpShaders {
		dumpShaders()
		return
	}

	path := flag.Arg(0)
	if path == "" {
		fmt.Fprintln(os.Stderr, "usage: guac [flags] <scene.bsp|mesh.obj|mesh.gltf|mesh.glb>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if opts.headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runHeadless(ctx, path, opts); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := runWindow(path, opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func dumpShaders() {
	fmt.Println("// world.vert")
	fmt.Print(glsl.VertexSource)
	fmt.Println()
	fmt.Println("// world.frag")
	fmt.Print(glsl.FragmentSource)
	fmt.Println()
	fmt.Println("// bindings")
	for _, b := range glsl.Signature() {
		fmt.Printf("// %-11s %-9s %s\n", b.Name, b.Kind, b.Type)
	}
}

// load reads the scene file and applies the mesh-level flags.
func load(path string, opts options) (*guac.Object, *viewer.Start, error) {
	object, start, err := viewer.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if opts.simplify > 0 && opts.simplify < 1 {
		before := len(object.Mesh.Triangles)
		object.Mesh.Simplify(opts.simplify)
		guac.Logger().Info("simplified mesh",
			"before", before, "after", len(object.Mesh.Triangles))
	}
	isBSP := strings.EqualFold(filepath.Ext(path), ".bsp")
	if opts.color != "" && !isBSP {
		c := guac.HexColor(opts.color)
		object.Color = c
		object.Mesh.SetColor(c)
	}
	box := object.BoundingBox()
	guac.Logger().Info("loaded scene",
		"path", path,
		"triangles", len(object.Mesh.Triangles),
		"min", box.Min, "max", box.Max)
	return object, start, nil
}

func buildShader(opts options) (guac.Shader, error) {
	light := guac.Vector{-0.75, 1, 0.25}.Normalize()
	switch opts.shader {
	case "world":
		s := guac.NewWorldShader(guac.Identity(), guac.Identity(), guac.Identity())
		s.EnableIntensity = opts.intensity
		return s, nil
	case "solid":
		c := guac.HexColor("777")
		if opts.color != "" {
			c = guac.HexColor(opts.color)
		}
		return guac.NewSolidColorShader(guac.Identity(), c), nil
	case "phong":
		return guac.NewPhongShader(guac.Identity(), light, guac.Vector{}, guac.HexColor("444"), guac.HexColor("777")), nil
	case "toon":
		return guac.NewToonShader(guac.Identity(), light), nil
	case "normal":
		return guac.NewNormalShader(guac.Identity()), nil
	}
	return nil, fmt.Errorf("unknown shader %q", opts.shader)
}

func parseCull(s string) (guac.Cull, error) {
	switch s {
	case "none":
		return guac.CullNone, nil
	case "back":
		return guac.CullBack, nil
	case "front":
		return guac.CullFront, nil
	}
	return guac.CullNone, fmt.Errorf("unknown cull mode %q", s)
}

// parseVec parses "x,y,z".
func parseVec(s string) (guac.Vector, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return guac.Vector{}, false
	}
	f := guac.ParseFloats(parts)
	return guac.Vector{f[0], f[1], f[2]}, true
}

func runWindow(path string, opts options) error {
	object, start, err := load(path, opts)
	if err != nil {
		return err
	}
	shader, err := buildShader(opts)
	if err != nil {
		return err
	}
	cull, err := parseCull(opts.cull)
	if err != nil {
		return err
	}

	camera := viewer.NewCamera()
	if start != nil {
		camera.Position = start.Position
		camera.Yaw = start.Yaw
	}
	if eye, ok := parseVec(opts.eye); ok {
		camera.Position = eye
	}
	if look, ok := parseVec(opts.look); ok {
		aimCamera(camera, look)
	}

	return viewer.Run(viewer.Options{
		Title:      "guac - " + filepath.Base(path),
		Width:      opts.width,
		Height:     opts.height,
		Wireframe:  opts.wireframe,
		Cull:       cull,
		ShowBounds: opts.bounds,
		Camera:     camera,
	}, shader, []*guac.Object{object})
}

// aimCamera points the camera at a world-space target.
func aimCamera(c *viewer.Camera, target guac.Vector) {
	d := target.Sub(c.Position)
	if d.Length() == 0 {
		return
	}
	d = d.Normalize()
	c.Pitch = guac.Clamp(guac.Degrees(math.Asin(d.Y)), -89, 89)
	c.Yaw = guac.Degrees(math.Atan2(d.Z, d.X))
}

func runHeadless(ctx context.Context, path string, opts options) error {
	object, start, err := load(path, opts)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	shader, err := buildShader(opts)
	if err != nil {
		return err
	}
	cull, err := parseCull(opts.cull)
	if err != nil {
		return err
	}

	// Without an explicit camera the scene is framed automatically, except
	// for levels with a spawn point, which render the spawn's view.
	fit := true
	eye := guac.Vector{-3, 1, -0.75}
	center := guac.Vector{}
	if start != nil {
		cam := viewer.Camera{Position: start.Position, Yaw: start.Yaw}
		eye = cam.Position
		center = cam.Position.Add(cam.Direction())
		fit = false
	}
	if v, ok := parseVec(opts.eye); ok {
		eye = v
		center = guac.Vector{}
		fit = false
	}
	if v, ok := parseVec(opts.look); ok {
		center = v
	}
	if center == eye {
		center = eye.Add(guac.Vector{-1, 0, 0})
	}
	if ps, ok := shader.(*guac.PhongShader); ok {
		ps.CameraPosition = eye
	}

	scene := guac.NewScene(eye, center, guac.Vector{0, 1, 0}, 45, opts.width, opts.height, opts.supersample, shader)
	scene.SetClipRange(1, 10000)
	scene.Context.ClearColor = guac.Color{0.8, 0.8, 1.0, 1.0}
	scene.Context.Wireframe = opts.wireframe
	scene.Context.Cull = cull
	if _, ok := shader.(*guac.WorldShader); ok {
		scene.Context.AlphaBlend = false
	}
	scene.AddObject(object)
	if opts.bounds {
		outline := guac.NewObjectFromMesh(guac.NewCubeOutlineForBox(object.BoundingBox()))
		outline.Color = guac.Black
		outline.Mesh.SetColor(guac.Black)
		scene.AddObject(outline)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return scene.Draw(fit, opts.out, nil)
}
