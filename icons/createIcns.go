// Package icons: This file produces the .icns container. The PNG icons are
// resized into a temporary .iconset, the iconset images are collected in
// plan order and the container is written by IcnsFile.
package icons

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"icongen/utilities/fileManagement"
	"icongen/utilities/logger"
)

// CreateIcns builds the iconset for plan and writes the container to path.
// When keepIconset is set the iconset directory is copied there before the
// temporary files are removed. Missing sources and unmappable names only
// shrink the container; write failures are returned.
func (g *Generator) CreateIcns(ctx context.Context, path string, plan []IconsetImage, keepIconset string) error {
	logger.Info("Creating the ICNS file")

	root, iconsetDir, err := createIconsetDirectory()
	if err != nil {
		return err
	}
	defer deleteIconsetDirectory(root)

	names, err := g.BuildIconset(ctx, iconsetDir, plan)
	if err != nil {
		return err
	}
	if len(names) < len(plan) {
		logger.Warn("Iconset is incomplete: %d of %d images", len(names), len(plan))
	}

	file, err := CollectIconset(iconsetDir, plan)
	if err != nil {
		return err
	}

	if err := fileManagement.CreateIfNotExists(filepath.Dir(path), 0755); err != nil {
		return err
	}

	n, err := WriteIcnsFile(path, file)
	if err != nil {
		return err
	}
	logger.Info("Created ICNS %s (%d entries, %s)", path, len(file.Entries), humanize.Bytes(uint64(n)))

	if keepIconset != "" {
		if err := CopyIconset(iconsetDir, keepIconset); err != nil {
			return err
		}
	}

	return nil
}

// ReadIcnsFile parses the container stored at path.
func ReadIcnsFile(path string) (*IcnsFile, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	file, err := ReadIcns(in)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return file, nil
}
