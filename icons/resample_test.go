package icons

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testImage returns an opaque red width x height image.
func testImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 0xff, A: 0xff})
		}
	}
	return img
}

func TestParseResampler(t *testing.T) {
	t.Parallel()

	r, err := ParseResampler("")
	require.NoError(t, err)
	assert.Equal(t, Lanczos, r)

	r, err = ParseResampler(" Catmull-Rom ")
	require.NoError(t, err)
	assert.Equal(t, CatmullRom, r)

	_, err = ParseResampler("bicubic")
	assert.Error(t, err)
}

func TestResizeExact(t *testing.T) {
	t.Parallel()

	src := testImage(100, 50)
	for _, r := range []Resampler{Lanczos, CatmullRom, ApproxBiLinear, NearestNeighbor} {
		dst := r.Resize(src, 64, 64)
		assert.Equal(t, image.Rect(0, 0, 64, 64), dst.Bounds(), string(r))
	}
}

func TestThumbnailKeepsAspect(t *testing.T) {
	t.Parallel()

	thumb := Lanczos.Thumbnail(testImage(200, 100), 32)
	assert.Equal(t, 32, thumb.Bounds().Dx())
	assert.Equal(t, 16, thumb.Bounds().Dy())
}

func TestThumbnailNeverUpscales(t *testing.T) {
	t.Parallel()

	src := testImage(10, 20)
	assert.Same(t, src, Lanczos.Thumbnail(src, 48))
}

func TestThumbnailCentered(t *testing.T) {
	t.Parallel()

	dst := NearestNeighbor.ThumbnailCentered(testImage(200, 100), 32)
	require.Equal(t, image.Rect(0, 0, 32, 32), dst.Bounds())

	// 32x16 thumbnail, offset (0, 8)
	assert.Equal(t, uint8(0), dst.NRGBAAt(16, 7).A, "above the image is transparent")
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, dst.NRGBAAt(16, 8))
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, dst.NRGBAAt(16, 23))
	assert.Equal(t, uint8(0), dst.NRGBAAt(16, 24).A, "below the image is transparent")
}

func TestCenteredOddOffset(t *testing.T) {
	t.Parallel()

	dst := Centered(testImage(3, 3), 6)
	// (6 - 3) / 2 = 1
	assert.Equal(t, uint8(0), dst.NRGBAAt(0, 1).A)
	assert.Equal(t, uint8(0xff), dst.NRGBAAt(1, 1).A)
	assert.Equal(t, uint8(0xff), dst.NRGBAAt(3, 3).A)
	assert.Equal(t, uint8(0), dst.NRGBAAt(4, 4).A)
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	c, err := ParseColor("#4F46E5")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 79, G: 70, B: 229, A: 255}, c)

	c, err = ParseColor("00000080")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{A: 0x80}, c)

	for _, bad := range []string{"", "#fff", "#GGGGGG"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestSolidSquare(t *testing.T) {
	t.Parallel()

	c := color.NRGBA{R: 79, G: 70, B: 229, A: 255}
	img := SolidSquare(16, c)
	assert.Equal(t, image.Rect(0, 0, 16, 16), img.Bounds())
	assert.Equal(t, c, img.NRGBAAt(0, 0))
	assert.Equal(t, c, img.NRGBAAt(15, 15))
}
