package tsconfig

import (
	"path"

	"github.com/jakoblorz/go-tsscaffold/internal/models"
	"github.com/jakoblorz/go-tsscaffold/internal/naming"
)

// Source files every generated source folder contains.
const (
	DeclarationFile = "@types.ts"
	EntryFile       = "index.ts"
)

const packagesDir = "packages"

// Topology returns the configs for the layout, root aggregator first.
func Topology(mode models.LayoutMode, names naming.Names, includeTests bool) []File {
	if mode == models.LayoutMulti {
		return MultiTopology(names, includeTests)
	}
	return SingleTopology(includeTests)
}

// SingleTopology: the root config aggregates src (and test), each extending the base.
func SingleTopology(includeTests bool) []File {
	root := Solution{
		Files:      []string{},
		Include:    []string{},
		Exclude:    []string{"build"},
		References: []Reference{{Path: "./src"}},
	}

	files := []File{
		{Path: FileName, Config: root},
		{Path: "src/" + FileName, Config: Project{
			Extends:         "../tsconfig.base",
			CompilerOptions: CompilerOptions{RootDir: "./", OutDir: "../build/src"},
			Files:           []string{DeclarationFile, EntryFile},
		}},
	}

	if includeTests {
		root.References = append(root.References, Reference{Path: "./test"})
		files[0].Config = root
		files = append(files, File{Path: "test/" + FileName, Config: Project{
			Extends:         "../tsconfig.base",
			CompilerOptions: CompilerOptions{RootDir: "./", OutDir: "../build/test"},
			Files:           []string{EntryFile},
			References:      []Reference{{Path: "../src"}},
		}})
	}

	return files
}

// MultiTopology: one config per sub-package, referencing its upstream
// packages in the same order as the manifest dependencies
// (helpers -> typings, main -> helpers+typings, test -> main).
func MultiTopology(names naming.Names, includeTests bool) []File {
	ref := func(dir string) Reference {
		return Reference{Path: "../" + dir + "/" + FileName}
	}
	pkg := func(refs ...Reference) Project {
		return Project{
			Extends:         "../../tsconfig.base",
			CompilerOptions: CompilerOptions{RootDir: "./src", OutDir: "./build/cjs"},
			Files:           []string{"src/" + DeclarationFile, "src/" + EntryFile},
			References:      refs,
		}
	}
	at := func(dir string) string {
		return path.Join(packagesDir, dir, FileName)
	}

	mainDir := names.MainFolder
	root := Solution{
		Files:      []string{},
		Include:    []string{},
		References: []Reference{{Path: "./" + at(mainDir)}},
	}
	if includeTests {
		root.References = append(root.References, Reference{Path: "./" + at(naming.TestDir)})
	}

	files := []File{
		{Path: FileName, Config: root},
		{Path: at(naming.TypingsDir), Config: pkg()},
		{Path: at(naming.HelpersDir), Config: pkg(ref(naming.TypingsDir))},
		{Path: at(mainDir), Config: pkg(ref(naming.HelpersDir), ref(naming.TypingsDir))},
	}
	if includeTests {
		files = append(files, File{Path: at(naming.TestDir), Config: pkg(ref(mainDir))})
	}

	return files
}
