// Package icons generates the icon assets of a desktop application: the PNG
// icon set, the Windows .ico and the Apple .icns container.
package icons

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"runtime"

	"github.com/disintegration/imaging"

	"icongen/utilities/config"
)

// Generator derives all icons from one source image.
type Generator struct {
	Source          string      // Source image, any format imaging can decode
	OutputDirectory string      // Directory of the PNG set; iconset sources are read from here
	Resampler       Resampler   // Interpolation used for every resize
	Fallback        color.NRGBA // Colour of the placeholder written when the source is unusable
	Workers         int         // Parallel resize jobs; 0 means one per CPU
}

// NewGenerator builds a Generator from the run configuration.
func NewGenerator(configuration config.Configuration) (*Generator, error) {
	resampler, err := ParseResampler(configuration.Resampler)
	if err != nil {
		return nil, err
	}

	fallback, err := ParseColor(configuration.FallbackColor)
	if err != nil {
		return nil, fmt.Errorf("fallback color: %w", err)
	}

	return &Generator{
		Source:          configuration.SourceImage,
		OutputDirectory: configuration.OutputDirectory,
		Resampler:       resampler,
		Fallback:        fallback,
		Workers:         configuration.Workers,
	}, nil
}

// workers returns the size of the resize worker group.
func (g *Generator) workers() int {
	if g.Workers > 0 {
		return g.Workers
	}
	return runtime.NumCPU()
}

// loadImage opens and decodes an image file.
func loadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return img, nil
}

// encodePNG returns the PNG encoding of img.
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// savePNG encodes img as PNG into path.
func savePNG(img image.Image, path string) (int, error) {
	data, err := encodePNG(img)
	if err != nil {
		return 0, fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, err
	}
	return len(data), nil
}
