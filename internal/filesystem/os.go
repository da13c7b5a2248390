package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
)

// OSFileSystem is the FileSystem backed by the real disk.
type OSFileSystem struct{}

func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (*OSFileSystem) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func (*OSFileSystem) ReadDir(path string) ([]fs.DirEntry, error) { return os.ReadDir(path) }

func (*OSFileSystem) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }

func (*OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (*OSFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (*OSFileSystem) MkdirAll(path string, perm fs.FileMode) error { return os.MkdirAll(path, perm) }

func (*OSFileSystem) RemoveAll(path string) error { return os.RemoveAll(path) }

func (*OSFileSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

func (*OSFileSystem) Glob(pattern string) ([]string, error) { return filepath.Glob(pattern) }

func (*OSFileSystem) Getwd() (string, error) { return os.Getwd() }
