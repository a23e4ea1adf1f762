// Package icons: This file copies the intermediate .iconset directory out of
// the temporary location so it can be inspected or fed to other tools.
package icons

import (
	"errors"
	"fmt"
	"path/filepath"

	"icongen/utilities/fileManagement"
	"icongen/utilities/logger"
)

// CopyIconset copies iconsetDir to destination/icon.iconset. An existing
// directory is overwritten file by file.
func CopyIconset(iconsetDir string, destination string) error {
	if destination == "" {
		return errors.New("iconset destination is not defined")
	}

	target := filepath.Join(destination, iconsetName)
	logger.Info("Copying the iconset to %s", target)

	if err := fileManagement.CopyDirectory(iconsetDir, target); err != nil {
		return fmt.Errorf("copy iconset to %s: %w", target, err)
	}
	return nil
}
