package icon

import (
	"fmt"
	"image"
	"math"
	"os"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"

	"github.com/mosa3ed/launchicon/internal/paths"
)

// Layout describes where the scaled source lands on the square canvas.
type Layout struct {
	Size   int     // canvas side length
	Scale  float64 // uniform scale factor applied to the source
	Width  int     // scaled content width
	Height int     // scaled content height
	X, Y   int     // top-left offset of the content on the canvas
}

// Bounds returns the canvas rectangle covered by the scaled content.
func (l Layout) Bounds() image.Rectangle {
	return image.Rect(l.X, l.Y, l.X+l.Width, l.Y+l.Height)
}

// Fit computes the aspect-preserving layout of a srcW×srcH image on a
// size×size canvas. Scaled dimensions are floored; the offset centers the
// content with floor division.
func Fit(srcW, srcH, size int) (Layout, error) {
	if size <= 0 {
		return Layout{}, ErrInvalidSize
	}
	if srcW <= 0 || srcH <= 0 {
		return Layout{}, &DegenerateSizeError{Width: srcW, Height: srcH, Size: size}
	}

	scale := math.Min(float64(size)/float64(srcW), float64(size)/float64(srcH))
	w := int(float64(srcW) * scale)
	h := int(float64(srcH) * scale)
	if w < 1 || h < 1 {
		return Layout{}, &DegenerateSizeError{Width: srcW, Height: srcH, Size: size}
	}

	return Layout{
		Size:   size,
		Scale:  scale,
		Width:  w,
		Height: h,
		X:      (size - w) / 2,
		Y:      (size - h) / 2,
	}, nil
}

// Load opens and decodes the image at path. Any failure, including a
// missing file, is returned as a *LoadError.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return img, nil
}

// Normalize returns img as NRGBA. Pixels from formats without an alpha
// channel come out fully opaque.
func Normalize(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	return imaging.Clone(img)
}

// Compose scales img to fit a size×size canvas with the Lanczos filter and
// draws it centered over a fully transparent background, using the scaled
// image's own alpha as the mask.
func Compose(img image.Image, size int) (*image.NRGBA, Layout, error) {
	src := Normalize(img)
	b := src.Bounds()

	layout, err := Fit(b.Dx(), b.Dy(), size)
	if err != nil {
		return nil, Layout{}, err
	}

	scaled := imaging.Resize(src, layout.Width, layout.Height, imaging.Lanczos)

	canvas := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.Draw(canvas, layout.Bounds(), scaled, scaled.Bounds().Min, xdraw.Over)
	return canvas, layout, nil
}

// Save writes img to path as PNG, creating intermediate directories.
// A partially written file is left in place on failure.
func Save(img image.Image, path string) error {
	if err := paths.EnsureParent(path); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		f.Close()
		return fmt.Errorf("encoding png: %w", err)
	}
	return f.Close()
}

// Generate renders the source image at src as a size×size PNG at dst and
// returns the layout that was used.
func Generate(src, dst string, size int) (Layout, error) {
	img, err := Load(src)
	if err != nil {
		return Layout{}, err
	}
	canvas, layout, err := Compose(img, size)
	if err != nil {
		return Layout{}, err
	}
	if err := Save(canvas, dst); err != nil {
		return Layout{}, err
	}
	return layout, nil
}
