// Package fileManagement provides utilities for file and directory operations.
// This package handles copying files and directories with their permissions,
// recreating symlinks, and creating directories on demand.
package fileManagement

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyDirectory recursively copies a directory tree from source to destination.
// This function:
//   - Preserves file permissions
//   - Handles directories, regular files, and symlinks
//   - Maintains the directory structure
//
// The destination directory is created if it does not exist.
//
// Parameters:
//   - scrDir: Source directory to copy from
//   - dest: Destination directory to copy to
//
// Returns an error if any file operation fails.
func CopyDirectory(scrDir, dest string) error {
	if err := CreateIfNotExists(dest, 0755); err != nil {
		return err
	}

	entries, err := os.ReadDir(scrDir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		sourcePath := filepath.Join(scrDir, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		fileInfo, err := os.Lstat(sourcePath)
		if err != nil {
			return err
		}

		switch fileInfo.Mode() & os.ModeType {
		case os.ModeDir:
			if err := CopyDirectory(sourcePath, destPath); err != nil {
				return err
			}
		case os.ModeSymlink:
			// Copy symlinks by recreating them (not following the link)
			if err := CopySymLink(sourcePath, destPath); err != nil {
				return err
			}
			continue
		default:
			if err := Copy(sourcePath, destPath); err != nil {
				return err
			}
		}

		if err := os.Chmod(destPath, fileInfo.Mode().Perm()); err != nil {
			return err
		}
	}
	return nil
}

// Copy copies a single file from source to destination.
// This is a simple file copy operation that doesn't preserve metadata.
// For preserving permissions, use CopyDirectory.
//
// Parameters:
//   - srcFile: Path to the source file
//   - dstFile: Path to the destination file
//
// Returns an error if the copy operation fails, including a failed close of
// the destination.
func Copy(srcFile, dstFile string) error {
	in, err := os.Open(srcFile)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dstFile)
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

// Exists checks if a file or directory exists at the given path.
//
// Returns true if the path exists, false otherwise.
func Exists(filePath string) bool {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return false
	}

	return true
}

// CreateIfNotExists creates a directory if it doesn't already exist.
// This is an idempotent operation - it's safe to call multiple times.
//
// Parameters:
//   - dir: Directory path to create
//   - perm: File permissions (e.g., 0755)
//
// Returns an error if directory creation fails.
func CreateIfNotExists(dir string, perm os.FileMode) error {
	if Exists(dir) {
		return nil
	}

	if err := os.MkdirAll(dir, perm); err != nil {
		return fmt.Errorf("failed to create directory: '%s', error: '%w'", dir, err)
	}

	return nil
}

// CopySymLink copies a symlink by reading its target and creating a new symlink.
// This preserves the symlink itself, not the file it points to.
//
// Parameters:
//   - source: Path to the source symlink
//   - dest: Path where the new symlink should be created
func CopySymLink(source, dest string) error {
	link, err := os.Readlink(source)
	if err != nil {
		return err
	}
	return os.Symlink(link, dest)
}
