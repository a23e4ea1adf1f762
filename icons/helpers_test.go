package icons

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var fallbackColor = color.NRGBA{R: 79, G: 70, B: 229, A: 255}

// newTestGenerator returns a generator writing into a fresh directory.
func newTestGenerator(t *testing.T, source string) *Generator {
	t.Helper()
	return &Generator{
		Source:          source,
		OutputDirectory: t.TempDir(),
		Resampler:       NearestNeighbor,
		Fallback:        fallbackColor,
		Workers:         2,
	}
}

// writeTestPNG stores an opaque red width x height PNG at path.
func writeTestPNG(t *testing.T, path string, width, height int) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, testImage(width, height)))
}

// readTestPNG decodes the PNG at path.
func readTestPNG(t *testing.T, path string) image.Image {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

// sourceIn writes a source image into dir and returns its path.
func sourceIn(t *testing.T, dir string, width, height int) string {
	t.Helper()
	path := filepath.Join(dir, "icon.png")
	writeTestPNG(t, path, width, height)
	return path
}
