// Package icons: This file creates the Windows .ico file. All renditions
// are packed into one file by go-ico.
package icons

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	ico "github.com/sergeymakinen/go-ico"

	"icongen/utilities/fileManagement"
	"icongen/utilities/logger"
)

// fallbackIcoSize is the edge length of the placeholder icon.
const fallbackIcoSize = 32

// CreateIco writes an .ico holding one rendition per size. Each rendition is
// the source thumbnailed and centred on a transparent square. When the
// source cannot be loaded a single 32x32 placeholder icon is written.
func (g *Generator) CreateIco(path string, sizes []int) error {
	logger.Info("Creating the ICO file")

	if err := fileManagement.CreateIfNotExists(filepath.Dir(path), 0755); err != nil {
		return err
	}

	src, err := loadImage(g.Source)
	if err != nil {
		logger.Warn("Cannot use source image: %v", err)
		return g.writeFallbackIco(path)
	}

	images := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		images = append(images, g.Resampler.ThumbnailCentered(src, size))
	}

	data, err := encodeIco(images)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	logger.Info("Created ICO %s (%d sizes, %s)", path, len(images), humanize.Bytes(uint64(len(data))))
	return nil
}

// writeFallbackIco writes a single size placeholder icon.
func (g *Generator) writeFallbackIco(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := ico.Encode(out, SolidSquare(fallbackIcoSize, g.Fallback)); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := out.Close(); err != nil {
		return err
	}

	logger.Warn("Created fallback ICO %s (%dx%d)", path, fallbackIcoSize, fallbackIcoSize)
	return nil
}

// encodeIco packs images, one rendition each, into an ICO container.
// go-ico rejects renditions larger than 256x256.
func encodeIco(images []image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, images); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
