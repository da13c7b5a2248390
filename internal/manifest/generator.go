package manifest

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/go-tsscaffold/internal/filesystem"
	"github.com/jakoblorz/go-tsscaffold/internal/models"
	"github.com/jakoblorz/go-tsscaffold/internal/naming"
	"github.com/jakoblorz/go-tsscaffold/internal/toolchain"
)

// Generator seeds the project manifest via the package manager and rewrites it.
type Generator struct {
	fs    filesystem.FileSystem
	tools toolchain.Initializer
}

// NewGenerator creates a new Generator
func NewGenerator(fs filesystem.FileSystem, tools toolchain.Initializer) *Generator {
	return &Generator{fs: fs, tools: tools}
}

// CreateBase runs the package-manager initializer in root and applies the
// project options to the resulting package.json.
func (g *Generator) CreateBase(ctx context.Context, root string, opts models.ProjectOptions, names naming.Names, mode models.LayoutMode) error {
	if err := g.tools.InitManifest(ctx, root); err != nil {
		return fmt.Errorf("failed to initialize %s: %w", FileName, err)
	}

	manifestPath := filepath.Join(root, FileName)
	if !g.fs.Exists(manifestPath) {
		return fmt.Errorf("%w: %s not found", toolchain.ErrTemplateMissing, manifestPath)
	}

	m, err := Read(g.fs, manifestPath)
	if err != nil {
		return err
	}

	ApplyBase(m, opts, names, mode)

	return Write(g.fs, manifestPath, m)
}

// ExpandForMultiMode writes one manifest per sub-package, derived from the
// root manifest. It does nothing for single layouts and returns the written
// paths otherwise.
func (g *Generator) ExpandForMultiMode(root string, opts models.ProjectOptions, names naming.Names, mode models.LayoutMode) ([]string, error) {
	if mode != models.LayoutMulti {
		return nil, nil
	}

	base, err := Read(g.fs, filepath.Join(root, FileName))
	if err != nil {
		return nil, err
	}

	packages, err := Expand(base, names, opts.IncludeTests)
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(packages))
	for _, pkg := range packages {
		dir := filepath.Join(root, filepath.FromSlash(pkg.Dir))
		// The main manifest folder can differ from the skeleton's main folder.
		if !g.fs.Exists(dir) {
			if err := g.fs.MkdirAll(dir, filesystem.DirPerm); err != nil {
				return written, fmt.Errorf("failed to create %s: %w", dir, err)
			}
		}

		manifestPath := filepath.Join(dir, FileName)
		if err := Write(g.fs, manifestPath, pkg.Manifest); err != nil {
			return written, err
		}
		written = append(written, manifestPath)
	}

	return written, nil
}
