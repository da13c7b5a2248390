package tsconfig

import (
	"path"
)

// File names of the generated compiler configs.
const (
	FileName     = "tsconfig.json"
	BaseFileName = "tsconfig.base.json"
)

// Reference is a project reference entry.
type Reference struct {
	Path string `json:"path"`
}

// CompilerOptions holds the per-project options; everything else comes from the base config.
type CompilerOptions struct {
	RootDir string `json:"rootDir"`
	OutDir  string `json:"outDir"`
}

// Solution is a pure aggregator config: it compiles nothing itself and only
// references child projects.
type Solution struct {
	Files      []string    `json:"files"`
	Include    []string    `json:"include"`
	Exclude    []string    `json:"exclude,omitempty"`
	References []Reference `json:"references"`
}

// Project is a child config extending the shared base config.
type Project struct {
	Extends         string          `json:"extends"`
	CompilerOptions CompilerOptions `json:"compilerOptions"`
	Files           []string        `json:"files"`
	References      []Reference     `json:"references,omitempty"`
}

// File is a config to be written at Path (relative to the project root, slash separated).
type File struct {
	Path   string
	Config any
}

// Dir returns the directory of the config, relative to the project root.
func (f File) Dir() string {
	return path.Dir(f.Path)
}

// References returns the references declared by the config.
func (f File) References() []Reference {
	switch c := f.Config.(type) {
	case Solution:
		return c.References
	case Project:
		return c.References
	}
	return nil
}

// ReferencedDir resolves a reference of f to a directory relative to the project root.
// References may point at a folder or at a tsconfig.json inside it.
func (f File) ReferencedDir(ref Reference) string {
	target := path.Join(f.Dir(), ref.Path)
	if path.Ext(target) == ".json" {
		target = path.Dir(target)
	}
	return target
}
