// Package icons: This file builds the intermediate .iconset directory and
// collects its images into .icns entries. Each iconset image is an exact
// resize of one of the PNG icons; the iconset file name decides the .icns
// type code.
package icons

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"icongen/utilities/logger"
)

// BuildIconset resizes the sources of plan into dir. Sources are looked up
// in the output directory. A missing source is reported and its targets are
// left out; any other failure aborts the build. The returned names are the
// targets actually written, in plan order.
func (g *Generator) BuildIconset(ctx context.Context, dir string, plan []IconsetImage) ([]string, error) {
	sources, err := g.loadIconsetSources(plan)
	if err != nil {
		return nil, err
	}

	written := make([]bool, len(plan))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers())

	for i, target := range plan {
		src, ok := sources[target.Source]
		if !ok {
			continue
		}

		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			resized := g.Resampler.Resize(src, target.Size, target.Size)
			if _, err := savePNG(resized, filepath.Join(dir, target.Target)); err != nil {
				return fmt.Errorf("create %s: %w", target.Target, err)
			}

			logger.Info("Created %s (%dx%d)", target.Target, target.Size, target.Size)
			written[i] = true
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(plan))
	for i, ok := range written {
		if ok {
			names = append(names, plan[i].Target)
		}
	}
	return names, nil
}

// loadIconsetSources decodes every distinct source of plan once. Missing
// sources are logged and absent from the result.
func (g *Generator) loadIconsetSources(plan []IconsetImage) (map[string]image.Image, error) {
	sources := make(map[string]image.Image)
	missing := make(map[string]bool)

	for _, target := range plan {
		if _, ok := sources[target.Source]; ok || missing[target.Source] {
			continue
		}

		path := filepath.Join(g.OutputDirectory, target.Source)
		img, err := loadImage(path)
		switch {
		case err == nil:
			sources[target.Source] = img
		case errors.Is(err, fs.ErrNotExist):
			logger.Warn("Missing source file: %s", path)
			missing[target.Source] = true
		default:
			return nil, err
		}
	}

	return sources, nil
}

// CollectIconset reads the images of plan from dir, in plan order, into an
// .icns file. Images that are absent are omitted and names without an
// .icns type code are skipped.
func CollectIconset(dir string, plan []IconsetImage) (*IcnsFile, error) {
	file := &IcnsFile{}

	for _, target := range plan {
		data, err := os.ReadFile(filepath.Join(dir, target.Target))
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("No %s in iconset, omitted", target.Target)
			continue
		}
		if err != nil {
			return nil, err
		}

		file.Add(target.Target, data)
	}

	return file, nil
}
