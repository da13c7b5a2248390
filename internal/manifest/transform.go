package manifest

import (
	"errors"
	"fmt"
	"path"

	"github.com/Masterminds/semver/v3"
	"github.com/jakoblorz/go-tsscaffold/internal/models"
	"github.com/jakoblorz/go-tsscaffold/internal/naming"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrInvalidVersion is returned when the seed manifest's version is not semver.
var ErrInvalidVersion = errors.New("invalid manifest version")

// Build output paths shared by every sub-package manifest.
const (
	BuildDir  = "build"
	MainEntry = "build/cjs/index.js"
	TypesFile = "build/cjs/index.d.ts"
)

// PackagesDir is the folder holding the sub-packages of a multi layout.
const PackagesDir = "packages"

// Package is a sub-package manifest and the directory it belongs in,
// relative to the project root.
type Package struct {
	Dir      string
	Manifest *Manifest
}

// ApplyBase rewrites the seed manifest for the project: name, author and
// description (when given), and private=true for multi layouts only.
func ApplyBase(m *Manifest, opts models.ProjectOptions, names naming.Names, mode models.LayoutMode) {
	m.Set("name", names.Manifest)
	if opts.Author != "" {
		m.Set("author", opts.Author)
	}
	if opts.Description != "" {
		m.Set("description", opts.Description)
	}

	if mode == models.LayoutMulti {
		m.Set("private", true)
	} else {
		m.Delete("private")
	}
}

// Expand derives the sub-package manifests of a multi layout from the root
// manifest, in dependency order: typings, helpers, main, test.
// Each depends on its upstream packages at ^{version} of base.
func Expand(base *Manifest, names naming.Names, includeTests bool) ([]Package, error) {
	version := base.Version()
	if _, err := semver.NewVersion(version); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidVersion, version, err)
	}
	caret := "^" + version

	template := base.Clone()
	template.Delete("scripts")
	template.Delete("private")
	template.Set("type", "commonjs")
	template.Set("main", MainEntry)
	template.Set("types", TypesFile)
	template.Set("dependencies", dependencies(caret))
	template.Set("files", []string{BuildDir})

	derive := func(dir, name string, deps ...string) Package {
		m := template.Clone()
		m.Set("dependencies", dependencies(caret, deps...))
		m.Set("name", name)
		return Package{Dir: path.Join(PackagesDir, dir), Manifest: m}
	}

	packages := []Package{
		derive(naming.TypingsDir, names.Typings),
		derive(naming.HelpersDir, names.Helpers, names.Typings),
		derive(names.MainSuffix, names.Main, names.Helpers, names.Typings),
	}
	if includeTests {
		packages = append(packages, derive(naming.TestDir, names.Test, names.Main))
	}

	return packages, nil
}

// Dependencies returns the names under "dependencies" in document order.
func Dependencies(m *Manifest) []string {
	v, ok := m.Get("dependencies")
	if !ok {
		return nil
	}

	switch deps := v.(type) {
	case *orderedmap.OrderedMap[string, string]:
		names := make([]string, 0, deps.Len())
		for pair := deps.Oldest(); pair != nil; pair = pair.Next() {
			names = append(names, pair.Key)
		}
		return names
	case *Object:
		names := make([]string, 0, deps.Len())
		for pair := deps.Oldest(); pair != nil; pair = pair.Next() {
			names = append(names, pair.Key)
		}
		return names
	}
	return nil
}

func dependencies(caret string, names ...string) *orderedmap.OrderedMap[string, string] {
	deps := orderedmap.New[string, string]()
	for _, name := range names {
		deps.Set(name, caret)
	}
	return deps
}
