// Package texture provides loading of UV-layout images as flat 8-bit RGB
// rasters. Alpha, if present in the source format, is dropped.
package texture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Texture is a decoded image flattened to a tight RGB8 pixel buffer, with
// pixels addressable by integer coordinates in [0,Width) x [0,Height).
type Texture struct {
	Path   string // Original file path ("" for in-memory textures)
	Width  int
	Height int
	Pix    []uint8 // 3 bytes per pixel, row-major, RGB order
}

// Load reads and decodes an image file into a Texture.
func Load(path string) (*Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	tex := FromImage(img)
	tex.Path = path
	return tex, nil
}

// FromImage flattens a decoded image into a Texture. Channel values are
// truncated to 8 bits; the alpha channel is discarded.
func FromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	tex := &Texture{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*3),
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			tex.Pix[i] = uint8(r >> 8)
			tex.Pix[i+1] = uint8(g >> 8)
			tex.Pix[i+2] = uint8(b >> 8)
			i += 3
		}
	}

	return tex
}

// RGBAt returns the 8-bit channel values at the given pixel coordinates.
// Coordinates must be in bounds.
func (t *Texture) RGBAt(x, y int) (r, g, b uint8) {
	i := (y*t.Width + x) * 3
	return t.Pix[i], t.Pix[i+1], t.Pix[i+2]
}

// SetRGB stores the 8-bit channel values at the given pixel coordinates.
// Used by tests and tools that synthesize marker images.
func (t *Texture) SetRGB(x, y int, r, g, b uint8) {
	i := (y*t.Width + x) * 3
	t.Pix[i], t.Pix[i+1], t.Pix[i+2] = r, g, b
}

// New creates an all-black (background) texture of the given size.
func New(width, height int) *Texture {
	return &Texture{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// SupportedFormats returns the list of supported image file extensions.
func SupportedFormats() []string {
	return []string{".png", ".jpg", ".jpeg", ".tiff", ".tif", ".bmp", ".webp"}
}

// IsSupportedFormat checks if the given path has a supported image extension.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}
