package utils

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ImageExtensions lists the supported input formats. The order matters:
// the export converter probes for the original image in this order and
// takes the first match.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".webp", ".bmp"}

// IsImageFile checks if a file has a supported image extension
func IsImageFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, imgExt := range ImageExtensions {
		if ext == imgExt {
			return true
		}
	}
	return false
}

// ListImages returns the image filenames in a directory, sorted
// lexicographically so batch runs process images in a stable order.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && IsImageFile(e.Name()) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// ListJSONFiles returns the .json filenames in a directory, sorted
// lexicographically.
func ListJSONFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// FindOriginalImage probes dir for base plus each supported extension in
// preference order and returns the first existing filename. An empty
// string means no original was found.
func FindOriginalImage(dir, base string) string {
	for _, ext := range ImageExtensions {
		name := base + ext
		if FileExists(filepath.Join(dir, name)) {
			return name
		}
	}
	return ""
}

// BaseName returns the file name without directory or extension.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

// FileExists checks if a file exists and is not a directory
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a directory exists
func DirExists(dirname string) bool {
	info, err := os.Stat(dirname)
	if err != nil {
		return false
	}
	return info.IsDir()
}
