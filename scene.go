package guac

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/nfnt/resize"
)

// Scene renders a set of objects to a still image. Rendering happens at
// Scale times the output resolution and is downsampled for antialiasing.
type Scene struct {
	Context         *Context
	Objects         []*Object
	Shader          Shader
	Width, Height   int
	Scale           int
	eye, center, up Vector
	fovy            float64
	aspect          float64
	near, far       float64
}

func NewScene(eye, center, up Vector, fovy float64, width, height, scale int, shader Shader) *Scene {
	if scale < 1 {
		scale = 1
	}
	context := NewContext(width*scale, height*scale, shader)
	return &Scene{
		Context: context,
		Shader:  shader,
		Width:   width,
		Height:  height,
		Scale:   scale,
		eye:     eye,
		center:  center,
		up:      up,
		fovy:    fovy,
		aspect:  float64(width) / float64(height),
		near:    1,
		far:     999,
	}
}

// SetClipRange overrides the default near and far planes.
func (s *Scene) SetClipRange(near, far float64) {
	s.near, s.far = near, far
}

func (s *Scene) AddObject(o *Object) {
	s.Objects = append(s.Objects, o)
}

func (s *Scene) AddObjects(objects []*Object) {
	for _, o := range objects {
		s.AddObject(o)
	}
}

// FitObjectsToScene widens the field of view until every object's bounding
// box falls inside the frustum, with a small padding margin.
func (s *Scene) FitObjectsToScene() (view, perspective Matrix) {
	view = LookAt(s.eye, s.center, s.up)

	var boxes []Box
	for _, o := range s.Objects {
		if o.Mesh != nil {
			boxes = append(boxes, o.BoundingBox())
		}
	}
	if len(boxes) == 0 {
		return view, Perspective(s.fovy, s.aspect, s.near, s.far)
	}
	sceneBox := BoxForBoxes(boxes)

	// The camera looks down negative Z in view space; the angle each corner
	// subtends against the view axis bounds the required field of view.
	var maxAngleX, maxAngleY float64
	for _, corner := range sceneBox.Corners() {
		p := view.MulPosition(corner)
		absZ := math.Abs(p.Z)
		if absZ < 1e-6 {
			continue
		}
		maxAngleX = math.Max(maxAngleX, math.Atan(math.Abs(p.X)/absZ))
		maxAngleY = math.Max(maxAngleY, math.Atan(math.Abs(p.Y)/absZ))
	}

	fovyFromY := 2 * maxAngleY
	fovyFromX := 2 * math.Atan(math.Tan(maxAngleX)/s.aspect)
	fovy := Degrees(math.Max(fovyFromX, fovyFromY)) * 1.05 // 5% padding

	return view, Perspective(fovy, s.aspect, s.near, s.far)
}

// applyCamera pushes view and perspective matrices into the scene's shader.
func (s *Scene) applyCamera(view, perspective Matrix) {
	switch sh := s.Shader.(type) {
	case *WorldShader:
		sh.View = view
		sh.Perspective = perspective
	case *PhongShader:
		sh.Camera = perspective.Mul(view)
	case *ToonShader:
		sh.Camera = perspective.Mul(view)
	case *NormalShader:
		sh.Camera = perspective.Mul(view)
	case *SolidColorShader:
		sh.Matrix = perspective.Mul(view)
	}
}

// Render draws all objects and returns the final image, downsampled to the
// output size.
func (s *Scene) Render(fit bool) image.Image {
	if fit {
		s.applyCamera(s.FitObjectsToScene())
	} else {
		view := LookAt(s.eye, s.center, s.up)
		s.applyCamera(view, Perspective(s.fovy, s.aspect, s.near, s.far))
	}
	s.Context.ClearColorBuffer()
	s.Context.ClearDepthBuffer()
	for _, o := range s.Objects {
		if o.Mesh == nil {
			Logger().Warn("scene: skipping object with nil mesh")
			continue
		}
		s.Context.DrawObject(o)
	}
	im := s.Context.Image()
	if s.Scale > 1 {
		im = resize.Resize(uint(s.Width), uint(s.Height), im, resize.Bilinear)
	}
	return im
}

func (s *Scene) Draw(fit bool, path string, objects []*Object) error {
	s.AddObjects(objects)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("scene: create %s: %w", path, err)
	}
	defer file.Close()
	if err := png.Encode(file, s.Render(fit)); err != nil {
		return fmt.Errorf("scene: encode %s: %w", path, err)
	}
	Logger().Info("scene: wrote snapshot", "path", path, "width", s.Width, "height", s.Height)
	return nil
}

func (s *Scene) DrawToWriter(fit bool, writer io.Writer, objects []*Object) error {
	s.AddObjects(objects)
	return png.Encode(writer, s.Render(fit))
}

// GenerateScene renders objects to a PNG with a Phong material in one call.
func GenerateScene(fit bool, path string, objects []*Object, eye, center, up Vector, fovy float64, width, height, scale int, light Vector, ambient, diffuse string, near, far float64) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("scene: create %s: %w", path, err)
	}
	defer file.Close()
	return GenerateSceneToWriter(file, objects, eye, center, up, fovy, width, height, scale, light, ambient, diffuse, near, far, fit)
}

func GenerateSceneWithShader(fit bool, shader Shader, path string, objects []*Object, eye, center, up Vector, fovy float64, width, height, scale int) error {
	scene := NewScene(eye, center, up, fovy, width, height, scale, shader)
	return scene.Draw(fit, path, objects)
}

func GenerateSceneToWriter(writer io.Writer, objects []*Object, eye, center, up Vector, fovy float64, width, height, scale int, light Vector, ambient, diffuse string, near, far float64, fit bool) error {
	aspect := float64(width) / float64(height)
	camera := LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	shader := NewPhongShader(camera, light, eye, HexColor(ambient), HexColor(diffuse))
	scene := NewScene(eye, center, up, fovy, width, height, scale, shader)
	scene.SetClipRange(near, far)
	return scene.DrawToWriter(fit, writer, objects)
}
