// Package icons: This file manages the temporary directory that holds the
// .iconset while the .icns container is assembled:
//
//	icongen-XXXX/
//	  icon.iconset/
//	    icon_16x16.png
//	    icon_16x16@2x.png
//	    ...
package icons

import (
	"fmt"
	"os"
	"path/filepath"

	"icongen/utilities/logger"
)

// iconsetName is the directory name macOS tooling expects for icon sets.
const iconsetName = "icon.iconset"

// createIconsetDirectory creates a fresh temporary root and the iconset
// directory inside it. The root must be removed with deleteIconsetDirectory.
func createIconsetDirectory() (root string, iconsetDir string, err error) {
	root, err = os.MkdirTemp("", "icongen-")
	if err != nil {
		return "", "", fmt.Errorf("create temporary directory: %w", err)
	}

	iconsetDir = filepath.Join(root, iconsetName)
	if err := os.Mkdir(iconsetDir, 0755); err != nil {
		deleteIconsetDirectory(root)
		return "", "", fmt.Errorf("create iconset directory: %w", err)
	}

	logger.Debug("Iconset directory: %s", iconsetDir)
	return root, iconsetDir, nil
}

// deleteIconsetDirectory removes the temporary root with everything in it.
func deleteIconsetDirectory(root string) {
	if err := os.RemoveAll(root); err != nil {
		logger.Warn("Error deleting directory %s: %v", root, err)
	}
}
