package testutils

import (
	"path/filepath"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
)

// TestFileSystem provides a memory based file system
// prefilled with the given files (path -> content).
func TestFileSystem(files map[string]string) (vfs.FileSystem, error) {
	fs := memoryfs.New()
	for path, content := range files {
		err := fs.MkdirAll(filepath.Dir(path), 0o700)
		if err != nil {
			return nil, err
		}
		err = vfs.WriteFile(fs, path, []byte(content), 0o600)
		if err != nil {
			return nil, err
		}
	}
	return fs, nil
}

// FileContent reads a file from a test file system.
func FileContent(fs vfs.FileSystem, path string) (string, error) {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
