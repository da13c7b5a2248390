package filesystem

import (
	"io/fs"
)

// FileSystem is the set of file operations the generators and the
// workspace scanner need. Paths are absolute.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	ReadDir(path string) ([]fs.DirEntry, error)
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) bool

	// WriteFile requires the parent directory to exist.
	WriteFile(path string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error

	// RemoveAll deletes path and everything below it. A missing path is
	// not an error.
	RemoveAll(path string) error

	// WalkDir visits root and everything below it in lexical order and
	// honours fs.SkipDir.
	WalkDir(root string, fn fs.WalkDirFunc) error

	// Glob resolves workspace patterns such as "packages/*".
	Glob(pattern string) ([]string, error)

	Getwd() (string, error)
}
