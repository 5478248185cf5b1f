// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// configExtensions are the fleet definition formats the finder recognizes,
// in no particular order.
var configExtensions = []string{".yaml", ".yml", ".hcl"}

// FindFilesByExtension recursively searches the given root path for all files
// ending with the specified extension. It returns a slice of their full paths.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// ResolveConfigPath turns a user-supplied path into the single fleet
// definition file to load. A file path is returned as-is; a directory is
// searched recursively and must contain exactly one recognized config file.
func ResolveConfigPath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("cannot access config path %s: %w", path, err)
	}
	if !info.IsDir() {
		return path, nil
	}

	var found []string
	for _, ext := range configExtensions {
		files, err := FindFilesByExtension(path, ext)
		if err != nil {
			return "", fmt.Errorf("failed to search %s for config files: %w", path, err)
		}
		found = append(found, files...)
	}

	switch len(found) {
	case 0:
		return "", fmt.Errorf("no config file found under %s", path)
	case 1:
		return found[0], nil
	default:
		sort.Strings(found)
		return "", fmt.Errorf("multiple config files found under %s: %s", path, strings.Join(found, ", "))
	}
}
