package tsconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/go-tsscaffold/internal/filesystem"
	"github.com/jakoblorz/go-tsscaffold/internal/models"
	"github.com/jakoblorz/go-tsscaffold/internal/naming"
	"github.com/jakoblorz/go-tsscaffold/internal/toolchain"
)

// ErrDanglingReference is returned when a config references a directory that does not exist.
var ErrDanglingReference = errors.New("project reference points at a missing directory")

// Generator writes the shared base config and the per-directory configs.
type Generator struct {
	fs    filesystem.FileSystem
	tools toolchain.Initializer
}

// NewGenerator creates a new Generator
func NewGenerator(fs filesystem.FileSystem, tools toolchain.Initializer) *Generator {
	return &Generator{fs: fs, tools: tools}
}

// WriteBase runs the compiler initializer in root, normalizes its output and
// persists it as tsconfig.base.json.
func (g *Generator) WriteBase(ctx context.Context, root string) error {
	if err := g.tools.InitCompilerConfig(ctx, root); err != nil {
		return fmt.Errorf("failed to initialize %s: %w", FileName, err)
	}

	seedPath := filepath.Join(root, FileName)
	if !g.fs.Exists(seedPath) {
		return fmt.Errorf("%w: %s not found", toolchain.ErrTemplateMissing, seedPath)
	}

	data, err := g.fs.ReadFile(seedPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", seedPath, err)
	}

	seed, err := ParseSeed(data)
	if err != nil {
		return err
	}

	return g.write(filepath.Join(root, BaseFileName), NormalizeBase(seed))
}

// WriteTopology writes the configs of the layout. Every reference must
// resolve to an existing directory, so the skeleton has to be built first.
func (g *Generator) WriteTopology(root string, names naming.Names, includeTests bool, mode models.LayoutMode) ([]string, error) {
	files := Topology(mode, names, includeTests)

	if err := g.checkReferences(root, files); err != nil {
		return nil, err
	}

	written := make([]string, 0, len(files))
	for _, file := range files {
		target := filepath.Join(root, filepath.FromSlash(file.Path))
		if err := g.write(target, file.Config); err != nil {
			return written, err
		}
		written = append(written, target)
	}

	return written, nil
}

func (g *Generator) checkReferences(root string, files []File) error {
	for _, file := range files {
		for _, ref := range file.References() {
			dir := filepath.Join(root, filepath.FromSlash(file.ReferencedDir(ref)))
			if !g.fs.Exists(dir) {
				return fmt.Errorf("%w: %s -> %s", ErrDanglingReference, file.Path, ref.Path)
			}
		}
	}
	return nil
}

func (g *Generator) write(path string, config any) error {
	data, err := json.MarshalIndent(config, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	data = append(data, '\n')

	if err := g.fs.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
