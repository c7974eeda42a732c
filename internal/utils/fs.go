package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnsureDir creates a directory (and parents) when missing.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DirWritable reports whether a directory exists (creating it if needed) and
// accepts new files.
func DirWritable(path string) bool {
	if err := EnsureDir(path); err != nil {
		return false
	}
	f, err := os.CreateTemp(path, ".writable-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}

// SaveTOMLFile writes a struct as TOML to path.
func SaveTOMLFile(v any, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(v)
}

// GetAbsolutePath resolves a path against the working directory; on failure
// the input comes back unchanged.
func GetAbsolutePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
