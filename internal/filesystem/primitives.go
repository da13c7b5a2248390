package filesystem

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// DirPerm is the permission used for every directory the generator creates.
const DirPerm fs.FileMode = 0o755

// CreateOrClear makes sure path exists as an empty directory.
// A missing path is created with its parents; an existing one has all of its
// contents removed while the directory itself is kept.
// created reports which of the two happened.
func CreateOrClear(fsys FileSystem, path string) (created bool, err error) {
	if !fsys.Exists(path) {
		if err := fsys.MkdirAll(path, DirPerm); err != nil {
			return false, fmt.Errorf("failed to create %s: %w", path, err)
		}
		return true, nil
	}

	if err := DeleteTree(fsys, path, false); err != nil {
		return false, fmt.Errorf("failed to clear %s: %w", path, err)
	}
	return false, nil
}

// DeleteTree removes everything below path. With includeRoot the path itself
// is removed too. A file path is removed directly; a missing path is a no-op.
func DeleteTree(fsys FileSystem, path string, includeRoot bool) error {
	if !fsys.Exists(path) {
		return nil
	}

	info, err := fsys.Stat(path)
	if err != nil {
		return err
	}
	if includeRoot || !info.IsDir() {
		return fsys.RemoveAll(path)
	}

	entries, err := fsys.ReadDir(path)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := fsys.RemoveAll(filepath.Join(path, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// ListFiles returns every file below root, recursively, sorted.
// With relative the paths are relative to root (slash separated).
// When suffixes are given only files whose extension (without the dot)
// matches one of them are returned, e.g. ListFiles(fsys, root, true, "ts", "json").
// A missing root yields no files; a file root yields itself if it matches.
func ListFiles(fsys FileSystem, root string, relative bool, suffixes ...string) ([]string, error) {
	if !fsys.Exists(root) {
		return []string{}, nil
	}

	accept := func(path string) bool {
		if len(suffixes) == 0 {
			return true
		}
		ext := strings.TrimPrefix(filepath.Ext(path), ".")
		for _, suffix := range suffixes {
			if ext == strings.TrimPrefix(suffix, ".") {
				return true
			}
		}
		return false
	}

	info, err := fsys.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if !accept(root) {
			return []string{}, nil
		}
		if relative {
			return []string{filepath.Base(root)}, nil
		}
		return []string{root}, nil
	}

	files := []string{}
	err = fsys.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !accept(path) {
			return nil
		}
		if !relative {
			files = append(files, path)
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files in %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}
