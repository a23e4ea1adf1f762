// Package icons: This file holds the image operations shared by all icon
// kinds: exact resizing, aspect preserving thumbnails, centring on a
// transparent canvas and the solid fallback square.
package icons

import (
	"encoding/hex"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// Resampler names the interpolation used when scaling.
type Resampler string

// Supported resamplers. Lanczos is handled by imaging, the others by the
// interpolators of golang.org/x/image/draw.
const (
	Lanczos         Resampler = "lanczos"
	CatmullRom      Resampler = "catmull-rom"
	ApproxBiLinear  Resampler = "approx-bilinear"
	NearestNeighbor Resampler = "nearest"
)

// ParseResampler accepts the names above, case insensitive. An empty name
// selects Lanczos.
func ParseResampler(name string) (Resampler, error) {
	r := Resampler(strings.ToLower(strings.TrimSpace(name)))
	switch r {
	case "":
		return Lanczos, nil
	case Lanczos, CatmullRom, ApproxBiLinear, NearestNeighbor:
		return r, nil
	}
	return "", fmt.Errorf("unknown resampler %q", name)
}

// Resize scales src to exactly width x height, ignoring the aspect ratio.
func (r Resampler) Resize(src image.Image, width, height int) *image.NRGBA {
	var interpolator xdraw.Interpolator
	switch r {
	case CatmullRom:
		interpolator = xdraw.CatmullRom
	case ApproxBiLinear:
		interpolator = xdraw.ApproxBiLinear
	case NearestNeighbor:
		interpolator = xdraw.NearestNeighbor
	default:
		return imaging.Resize(src, width, height, imaging.Lanczos)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	interpolator.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Thumbnail scales src down to fit a size x size box, keeping the aspect
// ratio. Images that already fit are returned unscaled.
func (r Resampler) Thumbnail(src image.Image, size int) image.Image {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= size && height <= size {
		return src
	}

	scale := math.Min(float64(size)/float64(width), float64(size)/float64(height))
	newWidth := max(1, int(math.Round(float64(width)*scale)))
	newHeight := max(1, int(math.Round(float64(height)*scale)))
	return r.Resize(src, newWidth, newHeight)
}

// Centered places src in the middle of a transparent size x size canvas.
// The offset on each axis is (size - extent) / 2, rounded down.
func Centered(src image.Image, size int) *image.NRGBA {
	canvas := imaging.New(size, size, color.NRGBA{})

	bounds := src.Bounds()
	x := (size - bounds.Dx()) / 2
	y := (size - bounds.Dy()) / 2
	target := image.Rect(x, y, x+bounds.Dx(), y+bounds.Dy())

	xdraw.Draw(canvas, target, src, bounds.Min, xdraw.Src)
	return canvas
}

// ThumbnailCentered combines Thumbnail and Centered: the whole source
// image, letterboxed into a transparent square.
func (r Resampler) ThumbnailCentered(src image.Image, size int) *image.NRGBA {
	return Centered(r.Thumbnail(src, size), size)
}

// SolidSquare returns a size x size image filled with c.
func SolidSquare(size int, c color.NRGBA) *image.NRGBA {
	return imaging.New(size, size, c)
}

// ParseColor reads "#RRGGBB" or "#RRGGBBAA". The leading # is optional.
func ParseColor(s string) (color.NRGBA, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 && len(raw) != 8 {
		return color.NRGBA{}, fmt.Errorf("color %q must be #RRGGBB or #RRGGBBAA", s)
	}

	b, err := hex.DecodeString(raw)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}

	c := color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xff}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}
