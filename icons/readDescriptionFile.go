// Package icons: This file handles reading and parsing the icon description
// file. The description (typically icons.yaml) lists which PNG icons, which
// .ico renditions and which .iconset images are produced. Without a
// description the layout of a Tauri icons directory is used.
package icons

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"icongen/utilities/logger"
)

// PngIcon is one square PNG derived from the source image.
type PngIcon struct {
	File string `yaml:"file"` // Output file name, e.g. 128x128@2x.png
	Size int    `yaml:"size"` // Edge length in pixels
}

// IconsetImage is one image of the intermediate .iconset directory. The
// target name decides the .icns type code of the image.
type IconsetImage struct {
	Source string `yaml:"source"` // PNG icon the image is resized from
	Target string `yaml:"target"` // Name inside the iconset, e.g. icon_16x16@2x.png
	Size   int    `yaml:"size"`   // Edge length in pixels
}

// Description defines the structure of the description file.
type Description struct {
	PngIcons []PngIcon      `yaml:"png_icons"`
	IcoSizes []int          `yaml:"ico_sizes"`
	Iconset  []IconsetImage `yaml:"iconset"`
}

// DefaultDescription returns the icon set of a Tauri application.
func DefaultDescription() Description {
	return Description{
		PngIcons: []PngIcon{
			{"32x32.png", 32},
			{"128x128.png", 128},
			{"128x128@2x.png", 256},
		},
		IcoSizes: []int{16, 32, 48},
		Iconset: []IconsetImage{
			{"32x32.png", "icon_16x16.png", 16},
			{"32x32.png", "icon_16x16@2x.png", 32},
			{"128x128.png", "icon_32x32.png", 32},
			{"128x128.png", "icon_32x32@2x.png", 64},
			{"128x128.png", "icon_128x128.png", 128},
			{"128x128@2x.png", "icon_128x128@2x.png", 256},
			{"128x128@2x.png", "icon_256x256.png", 256},
			{"128x128@2x.png", "icon_256x256@2x.png", 512},
			{"128x128@2x.png", "icon_512x512.png", 512},
			{"128x128@2x.png", "icon_512x512@2x.png", 1024},
		},
	}
}

// Read parses the description file. An empty name returns the default
// description. Sections missing from the file keep their defaults, so a
// file may for example only override ico_sizes.
func Read(descriptionFileName string) (Description, error) {
	description := DefaultDescription()
	if descriptionFileName == "" {
		return description, nil
	}

	data, err := os.ReadFile(descriptionFileName)
	if err != nil {
		return description, fmt.Errorf("read description %s: %w", descriptionFileName, err)
	}

	var parsed Description
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return description, fmt.Errorf("parse description %s: %w", descriptionFileName, err)
	}

	if parsed.PngIcons != nil {
		description.PngIcons = parsed.PngIcons
	}
	if parsed.IcoSizes != nil {
		description.IcoSizes = parsed.IcoSizes
	}
	if parsed.Iconset != nil {
		description.Iconset = parsed.Iconset
	}

	logger.Debug("Loaded description %s: %d png icons, %d ico sizes, %d iconset images",
		descriptionFileName, len(description.PngIcons), len(description.IcoSizes), len(description.Iconset))

	return description, description.Validate()
}

// Validate checks sizes and file names. Iconset targets that map to no
// .icns type are allowed; they are skipped when the container is written.
// Output names must be unique, compared without case as on the default
// macOS and Windows file systems.
func (d Description) Validate() error {
	var errs []error

	files := make(map[string]bool)
	for _, icon := range d.PngIcons {
		if err := validateName(icon.File); err != nil {
			errs = append(errs, fmt.Errorf("png icon: %w", err))
		} else if !unique(files, icon.File) {
			errs = append(errs, fmt.Errorf("png icon %s: file is listed twice", icon.File))
		}
		if icon.Size <= 0 {
			errs = append(errs, fmt.Errorf("png icon %s: size must be positive, got %d", icon.File, icon.Size))
		}
	}

	for _, size := range d.IcoSizes {
		if size <= 0 || size > 256 {
			errs = append(errs, fmt.Errorf("ico size must be between 1 and 256, got %d", size))
		}
	}

	targets := make(map[string]bool)
	for _, image := range d.Iconset {
		if err := validateName(image.Target); err != nil {
			errs = append(errs, fmt.Errorf("iconset image: %w", err))
		} else if !unique(targets, image.Target) {
			errs = append(errs, fmt.Errorf("iconset image %s: target is listed twice", image.Target))
		}
		if image.Source == "" {
			errs = append(errs, fmt.Errorf("iconset image %s: source is not defined", image.Target))
		}
		if image.Size <= 0 {
			errs = append(errs, fmt.Errorf("iconset image %s: size must be positive, got %d", image.Target, image.Size))
		}
	}

	return errors.Join(errs...)
}

// validateName rejects names that would escape the output directory.
func validateName(name string) error {
	if name == "" {
		return errors.New("file name is not defined")
	}
	if filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("file name %q must not contain a directory", name)
	}
	return nil
}

// unique records name in seen and reports whether it was new.
func unique(seen map[string]bool, name string) bool {
	key := strings.ToLower(name)
	if seen[key] {
		return false
	}
	seen[key] = true
	return true
}
