package guac

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"net/http"
	"time"
)

type Texture interface {
	Sample(u, v float64) Color
	BilinearSample(u, v float64) Color
}

type ImageTexture struct {
	Width  int
	Height int
	Image  image.Image
}

func NewImageTexture(im image.Image) Texture {
	return &ImageTexture{
		Width:  im.Bounds().Dx(),
		Height: im.Bounds().Dy(),
		Image:  im,
	}
}

func LoadTexture(path string) (Texture, error) {
	im, err := LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("load texture %s: %w", path, err)
	}
	return NewImageTexture(im), nil
}

func LoadTextureFromURL(url string) (Texture, error) {
	client := http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch texture %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch texture %s: %s", url, resp.Status)
	}
	im, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch texture %s: %w", url, err)
	}
	return NewImageTexture(im), nil
}

// TexFromBytes decodes an in-memory image, as found embedded in glTF
// buffers.
func TexFromBytes(data []byte) (Texture, error) {
	im, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode texture: %w", err)
	}
	return NewImageTexture(im), nil
}

// Sample returns the nearest texel. Coordinates wrap and V is flipped to
// match image row order.
func (t *ImageTexture) Sample(u, v float64) Color {
	u = u - math.Floor(u)
	v = 1 - (v - math.Floor(v))
	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	return MakeColor(t.Image.At(x, y))
}

func (t *ImageTexture) BilinearSample(u, v float64) Color {
	u = u - math.Floor(u)
	v = 1 - (v - math.Floor(v))
	x := u * float64(t.Width-1)
	y := v * float64(t.Height-1)
	x0 := int(x)
	y0 := int(y)
	x1 := x0 + 1
	y1 := y0 + 1
	x -= float64(x0)
	y -= float64(y0)
	if x1 >= t.Width {
		x1 = t.Width - 1
	}
	if y1 >= t.Height {
		y1 = t.Height - 1
	}
	c := Color{}
	c = c.Add(MakeColor(t.Image.At(x0, y0)).MulScalar((1 - x) * (1 - y)))
	c = c.Add(MakeColor(t.Image.At(x1, y0)).MulScalar(x * (1 - y)))
	c = c.Add(MakeColor(t.Image.At(x0, y1)).MulScalar((1 - x) * y))
	c = c.Add(MakeColor(t.Image.At(x1, y1)).MulScalar(x * y))
	return c
}
