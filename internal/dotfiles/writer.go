package dotfiles

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/go-tsscaffold/internal/filesystem"
)

// Write creates .gitignore and .prettierrc in root, overwriting existing files.
// It returns the written paths.
func Write(fs filesystem.FileSystem, root string) ([]string, error) {
	gitignore, err := RenderGitignore(GitignorePatterns)
	if err != nil {
		return nil, err
	}

	prettier, err := DefaultPrettierrc().Marshal()
	if err != nil {
		return nil, err
	}

	files := []struct {
		name string
		data []byte
	}{
		{GitignoreFile, gitignore},
		{PrettierFile, prettier},
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		target := filepath.Join(root, f.name)
		if err := fs.WriteFile(target, f.data, 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", target, err)
		}
		written = append(written, target)
	}
	return written, nil
}
