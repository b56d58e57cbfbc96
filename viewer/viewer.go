// Package viewer opens an interactive window over the software renderer.
// Frames are rasterized on the CPU and blitted to the window every draw;
// a free-fly camera walks the scene with the keyboard and mouse.
package viewer

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/guacgl/guac"
)

// Options configure the viewer window and render state.
type Options struct {
	Title      string
	Width      int
	Height     int
	FOV        float64 // vertical field of view in degrees
	Near       float64
	Far        float64
	ClearColor guac.Color
	Wireframe  bool
	Cull       guac.Cull
	ShowBounds bool    // overlay the scene bounding box as lines
	Camera     *Camera // starting camera, replaced by a default when nil
}

func (o *Options) fillDefaults() {
	if o.Title == "" {
		o.Title = "guac"
	}
	if o.Width <= 0 {
		o.Width = 1280
	}
	if o.Height <= 0 {
		o.Height = 720
	}
	if o.FOV <= 0 {
		o.FOV = 45
	}
	if o.Near <= 0 {
		o.Near = 1
	}
	if o.Far <= 0 {
		o.Far = 10000
	}
	if o.ClearColor.A == 0 {
		o.ClearColor = guac.Color{0.8, 0.8, 1.0, 1.0}
	}
	if o.Camera == nil {
		o.Camera = NewCamera()
	}
}

// Run opens a window rendering the objects through the shader and blocks
// until the window closes. Click captures the mouse for looking around,
// Escape releases it, WASD flies the camera.
func Run(opts Options, shader guac.Shader, objects []*guac.Object) error {
	opts.fillDefaults()

	if opts.ShowBounds {
		objects = append(objects, boundsObject(objects))
	}

	dc := guac.NewContext(opts.Width, opts.Height, shader)
	dc.ClearColor = opts.ClearColor
	dc.Wireframe = opts.Wireframe
	dc.Cull = opts.Cull
	// Opaque depth-tested pipeline. Translucent surfaces would need the
	// sorting this viewer does not do.
	dc.AlphaBlend = false

	g := &game{
		opts:        opts,
		context:     dc,
		objects:     objects,
		camera:      opts.Camera,
		perspective: guac.Perspective(opts.FOV, float64(opts.Width)/float64(opts.Height), opts.Near, opts.Far),
		frame:       ebiten.NewImage(opts.Width, opts.Height),
		pixels:      make([]byte, 4*opts.Width*opts.Height),
		lastFrame:   time.Now(),
		lastFPSLog:  time.Now(),
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	opts        Options
	context     *guac.Context
	objects     []*guac.Object
	camera      *Camera
	perspective guac.Matrix

	frame  *ebiten.Image
	pixels []byte

	captured     bool
	lastX, lastY int

	lastFrame  time.Time
	lastFPSLog time.Time
}

func (g *game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastFrame).Seconds()
	g.lastFrame = now

	if dt > 0 && now.Sub(g.lastFPSLog) > time.Second {
		guac.Logger().Info("frame", "fps", 1/dt, "position", g.camera.Position)
		g.lastFPSLog = now
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		g.captured = false
	}
	if !g.captured && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		g.captured = true
		// Reset the reference point so capturing does not jerk the view.
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.captured {
		x, y := ebiten.CursorPosition()
		g.camera.Look(float64(x-g.lastX), float64(y-g.lastY))
		g.lastX, g.lastY = x, y
	}

	var forward, sideways float64
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		forward++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		forward--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		sideways++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		sideways--
	}
	g.camera.Move(forward, sideways, dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.applyCamera()
	g.context.ClearColorBuffer()
	g.context.ClearDepthBuffer()
	g.context.DrawObjects(g.objects)

	// Force alpha opaque while copying out; the window has no use for the
	// coverage the color buffer may carry.
	src := g.context.ColorBuffer.Pix
	copy(g.pixels, src)
	for i := 3; i < len(g.pixels); i += 4 {
		g.pixels[i] = 0xff
	}
	g.frame.WritePixels(g.pixels)
	screen.DrawImage(g.frame, nil)

	pos := g.camera.Position
	hud := fmt.Sprintf("FPS %.0f\npos %.0f %.0f %.0f  pitch %.0f yaw %.0f\nclick to capture mouse, Esc to release",
		ebiten.ActualFPS(), pos.X, pos.Y, pos.Z, g.camera.Pitch, g.camera.Yaw)
	ebitenutil.DebugPrint(screen, hud)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width, g.opts.Height
}

// applyCamera pushes the camera's matrices into the shader.
func (g *game) applyCamera() {
	view := g.camera.View()
	switch sh := g.context.Shader.(type) {
	case *guac.WorldShader:
		sh.View = view
		sh.Perspective = g.perspective
	case *guac.PhongShader:
		sh.Camera = g.perspective.Mul(view)
		sh.CameraPosition = g.camera.Position
	case *guac.ToonShader:
		sh.Camera = g.perspective.Mul(view)
	case *guac.NormalShader:
		sh.Camera = g.perspective.Mul(view)
	case *guac.SolidColorShader:
		sh.Matrix = g.perspective.Mul(view)
	}
}

// boundsObject builds a line box around everything in the scene.
func boundsObject(objects []*guac.Object) *guac.Object {
	box := guac.EmptyBox
	for _, o := range objects {
		box = box.Extend(o.BoundingBox())
	}
	outline := guac.NewObjectFromMesh(guac.NewCubeOutlineForBox(box))
	outline.Color = guac.Black
	outline.Mesh.SetColor(guac.Black)
	return outline
}
