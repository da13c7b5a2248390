package skeleton

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/jakoblorz/go-tsscaffold/internal/filesystem"
	"github.com/jakoblorz/go-tsscaffold/internal/models"
	"github.com/jakoblorz/go-tsscaffold/internal/naming"
)

// Directory names of the skeleton.
const (
	SourceDir   = "src"
	TestDir     = "test"
	ScriptsDir  = "scripts"
	PackagesDir = "packages"
)

// Builder materializes the directory tree and its placeholder sources.
// Every directory it touches goes through filesystem.CreateOrClear, so a
// rerun replaces whatever an earlier run produced.
type Builder struct {
	fs  filesystem.FileSystem
	out io.Writer
}

// NewBuilder creates a Builder reporting touched directories to out.
// A nil out discards the report.
func NewBuilder(fs filesystem.FileSystem, out io.Writer) *Builder {
	if out == nil {
		out = io.Discard
	}
	return &Builder{fs: fs, out: out}
}

// Prepare creates or clears path and reports which of the two happened.
func (b *Builder) Prepare(path string) error {
	created, err := filesystem.CreateOrClear(b.fs, path)
	if err != nil {
		return err
	}

	if created {
		fmt.Fprintf(b.out, "init target path %s\n", path)
	} else {
		fmt.Fprintf(b.out, "clear target path %s\n", path)
	}
	return nil
}

// Build prepares the scripts folder and the layout specific tree.
func (b *Builder) Build(root string, opts models.ProjectOptions, names naming.Names, mode models.LayoutMode) error {
	if err := b.Prepare(filepath.Join(root, ScriptsDir)); err != nil {
		return err
	}

	if mode == models.LayoutMulti {
		return b.BuildMulti(root, opts, names)
	}
	return b.BuildSingle(root, names.Namespace, opts.IncludeTests)
}

// BuildSingle lays out src (and test) directly below root.
func (b *Builder) BuildSingle(root, namespace string, includeTests bool) error {
	src := filepath.Join(root, SourceDir)
	if err := b.Prepare(src); err != nil {
		return err
	}
	if err := b.writeSources(src, namespace); err != nil {
		return err
	}

	if !includeTests {
		return nil
	}

	test := filepath.Join(root, TestDir)
	if err := b.Prepare(test); err != nil {
		return err
	}
	return b.write(filepath.Join(test, EntryFile), []byte(testPlaceholder))
}

// BuildMulti lays out packages/{typings,helpers,<main>,test?}/src. The main
// package folder is the project root's base name, not the manifest suffix.
func (b *Builder) BuildMulti(root string, opts models.ProjectOptions, names naming.Names) error {
	packages := filepath.Join(root, PackagesDir)
	if err := b.Prepare(packages); err != nil {
		return err
	}

	dirs := []string{naming.TypingsDir, naming.HelpersDir, names.MainFolder}
	if opts.IncludeTests {
		dirs = append(dirs, naming.TestDir)
	}

	for _, dir := range dirs {
		src := filepath.Join(packages, dir, SourceDir)
		if err := b.Prepare(src); err != nil {
			return err
		}

		var imports []string
		if dir != naming.TypingsDir {
			imports = append(imports, names.TypingsImport())
		}
		if err := b.writeSources(src, names.Namespace, imports...); err != nil {
			return err
		}
	}

	return nil
}

func (b *Builder) writeSources(dir, namespace string, imports ...string) error {
	declaration, err := Declaration(namespace)
	if err != nil {
		return err
	}
	if err := b.write(filepath.Join(dir, DeclarationFile), declaration); err != nil {
		return err
	}

	entry, err := Entry(imports...)
	if err != nil {
		return err
	}
	return b.write(filepath.Join(dir, EntryFile), entry)
}

func (b *Builder) write(path string, data []byte) error {
	if err := b.fs.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
