// Package icons: This file creates the square PNG icons (32x32.png,
// 128x128.png, 128x128@2x.png by default). The source is scaled down to fit
// and centred on a transparent canvas. A source that cannot be used gives a
// solid placeholder instead.
package icons

import (
	"path/filepath"

	"github.com/dustin/go-humanize"

	"icongen/utilities/fileManagement"
	"icongen/utilities/logger"
)

// CreatePngIcons writes every icon of the list into the output directory.
// Only I/O failures of the placeholder itself are returned.
func (g *Generator) CreatePngIcons(pngIcons []PngIcon) error {
	logger.Info("Creating the PNG icons")

	if err := fileManagement.CreateIfNotExists(g.OutputDirectory, 0755); err != nil {
		return err
	}

	src, loadErr := loadImage(g.Source)
	if loadErr != nil {
		logger.Warn("Cannot use source image: %v", loadErr)
	}

	for _, icon := range pngIcons {
		path := filepath.Join(g.OutputDirectory, icon.File)

		if loadErr == nil {
			n, err := savePNG(g.Resampler.ThumbnailCentered(src, icon.Size), path)
			if err == nil {
				logger.Info("Created PNG icon %s (%dx%d, %s)", icon.File, icon.Size, icon.Size, humanize.Bytes(uint64(n)))
				continue
			}
			logger.Warn("Error creating %s: %v", icon.File, err)
		}

		if err := g.writeFallbackPng(path, icon.Size); err != nil {
			return err
		}
		logger.Warn("Created fallback PNG icon %s (%dx%d)", icon.File, icon.Size, icon.Size)
	}

	return nil
}

// writeFallbackPng writes the solid placeholder square.
func (g *Generator) writeFallbackPng(path string, size int) error {
	_, err := savePNG(SolidSquare(size, g.Fallback), path)
	return err
}
