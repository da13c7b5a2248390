package workspace

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/jakoblorz/go-tsscaffold/internal/filesystem"
	"github.com/jakoblorz/go-tsscaffold/internal/manifest"
	"github.com/jakoblorz/go-tsscaffold/internal/models"
)

// ErrDependencyCycle is returned when local packages depend on each other in a cycle.
var ErrDependencyCycle = errors.New("dependency cycle between packages")

// Workspace is a generated project and the packages found below it.
type Workspace struct {
	fs       filesystem.FileSystem
	RootPath string
	Packages []*models.Package
}

// New creates a new Workspace instance.
func New(fs filesystem.FileSystem) *Workspace {
	return &Workspace{
		fs:       fs,
		Packages: []*models.Package{},
	}
}

// Detect loads the project containing the current directory. It starts
// at the nearest package.json and widens to every enclosing manifest that
// is private or declares "workspaces", so running inside a sub-package of
// a multi layout still yields the whole project.
func (w *Workspace) Detect() error {
	cwd, err := w.fs.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	manifestPath, found := findFileUp(w.fs, cwd, manifest.FileName)
	if !found {
		return fmt.Errorf("workspace not found: no %s above %s", manifest.FileName, cwd)
	}

	root := filepath.Dir(manifestPath)
	for {
		parent := filepath.Dir(root)
		if parent == root {
			break
		}
		parentManifest, found := findFileUp(w.fs, parent, manifest.FileName)
		if !found {
			break
		}
		enclosing, err := isProjectRoot(w.fs, parentManifest)
		if err != nil {
			return err
		}
		if !enclosing {
			break
		}
		root = filepath.Dir(parentManifest)
	}

	return w.Load(root)
}

// Load scans root and stores the packages in dependency order.
func (w *Workspace) Load(root string) error {
	packages, err := Scan(w.fs, root)
	if err != nil {
		return err
	}

	w.RootPath = filepath.Clean(root)
	w.Packages = packages
	return nil
}

// GetPackage returns a package by name.
func (w *Workspace) GetPackage(name string) (*models.Package, error) {
	for _, p := range w.Packages {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("package %s not found in workspace (available: %s)", name, strings.Join(w.PackageNames(), ", "))
}

// PackageNames returns the package names in dependency order.
func (w *Workspace) PackageNames() []string {
	names := make([]string, len(w.Packages))
	for i, p := range w.Packages {
		names[i] = p.Name
	}
	return names
}

// Scan finds every non-private package.json below root. Paths matched by
// root's .gitignore are skipped, as are the folders listed under the root
// manifest's "workspaces" when present and the walk would miss them.
// Packages are returned in dependency order, upstream first.
func Scan(fsys filesystem.FileSystem, root string) ([]*models.Package, error) {
	root = filepath.Clean(root)
	if !fsys.Exists(root) {
		return nil, fmt.Errorf("workspace root %s does not exist", root)
	}

	ignore, err := loadRootGitIgnore(fsys, root)
	if err != nil {
		return nil, err
	}

	byManifest := make(map[string]*models.Package)

	err = fsys.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if ignore != nil {
			if match := ignore.Relative(rel, entry.IsDir()); match != nil && match.Ignore() {
				if entry.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if entry.IsDir() || filepath.Base(path) != manifest.FileName {
			return nil
		}

		pkg, err := readPackage(fsys, root, path)
		if err != nil {
			return err
		}
		if pkg != nil {
			byManifest[path] = pkg
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	if err := addWorkspacePackages(fsys, root, byManifest); err != nil {
		return nil, err
	}

	packages := make([]*models.Package, 0, len(byManifest))
	for _, pkg := range byManifest {
		packages = append(packages, pkg)
	}
	sort.Slice(packages, func(i, j int) bool {
		return packages[i].Dir < packages[j].Dir
	})

	return SortByDependencies(packages)
}

// SortByDependencies orders packages so every package comes after the local
// packages it depends on. Ties keep their input order.
func SortByDependencies(packages []*models.Package) ([]*models.Package, error) {
	index := make(map[string]int, len(packages))
	for i, p := range packages {
		index[p.Name] = i
	}

	pending := make([]int, len(packages))
	dependents := make([][]int, len(packages))
	for i, p := range packages {
		for _, dep := range p.Dependencies {
			j, local := index[dep]
			if !local || j == i {
				continue
			}
			pending[i]++
			dependents[j] = append(dependents[j], i)
		}
	}

	done := make([]bool, len(packages))
	sorted := make([]*models.Package, 0, len(packages))
	for len(sorted) < len(packages) {
		next := -1
		for i := range packages {
			if !done[i] && pending[i] == 0 {
				next = i
				break
			}
		}
		if next < 0 {
			var stuck []string
			for i, p := range packages {
				if !done[i] {
					stuck = append(stuck, p.Name)
				}
			}
			return nil, fmt.Errorf("%w: %s", ErrDependencyCycle, strings.Join(stuck, ", "))
		}

		done[next] = true
		sorted = append(sorted, packages[next])
		for _, dependent := range dependents[next] {
			pending[dependent]--
		}
	}

	return sorted, nil
}

// addWorkspacePackages adds packages listed by the root manifest's
// "workspaces" globs. Ignored folders are included on purpose: an explicit
// workspace entry wins over the ignore rules.
func addWorkspacePackages(fsys filesystem.FileSystem, root string, byManifest map[string]*models.Package) error {
	rootManifest := filepath.Join(root, manifest.FileName)
	if !fsys.Exists(rootManifest) {
		return nil
	}

	m, err := manifest.Read(fsys, rootManifest)
	if err != nil {
		return fmt.Errorf("failed to read root package.json: %w", err)
	}

	raw, _ := m.Get("workspaces")
	for _, pattern := range extractWorkspaces(raw) {
		matches, err := fsys.Glob(filepath.Join(root, pattern))
		if err != nil {
			return fmt.Errorf("failed to glob workspace pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			pkgPath := filepath.Join(match, manifest.FileName)
			if filepath.Base(match) == manifest.FileName {
				pkgPath = match
			}
			if _, seen := byManifest[pkgPath]; seen || !fsys.Exists(pkgPath) {
				continue
			}

			pkg, err := readPackage(fsys, root, pkgPath)
			if err != nil {
				return err
			}
			if pkg != nil {
				byManifest[pkgPath] = pkg
			}
		}
	}

	return nil
}

// readPackage returns nil for private manifests.
func readPackage(fsys filesystem.FileSystem, root, manifestPath string) (*models.Package, error) {
	m, err := manifest.Read(fsys, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read package.json at %s: %w", manifestPath, err)
	}

	if private, _ := m.Get("private"); private == true {
		return nil, nil
	}

	dir, err := filepath.Rel(root, filepath.Dir(manifestPath))
	if err != nil {
		return nil, err
	}
	dir = filepath.ToSlash(dir)

	name := m.Name()
	if strings.TrimSpace(name) == "" {
		name = filepath.Base(filepath.Dir(manifestPath))
	}

	deps := manifest.Dependencies(m)
	if deps == nil {
		deps = []string{}
	}

	return &models.Package{
		Name:         name,
		Dir:          dir,
		Version:      m.Version(),
		Dependencies: deps,
	}, nil
}

// isProjectRoot reports whether the manifest at path groups other packages.
func isProjectRoot(fsys filesystem.FileSystem, path string) (bool, error) {
	m, err := manifest.Read(fsys, path)
	if err != nil {
		return false, fmt.Errorf("failed to read package.json at %s: %w", path, err)
	}
	if private, _ := m.Get("private"); private == true {
		return true, nil
	}
	_, hasWorkspaces := m.Get("workspaces")
	return hasWorkspaces, nil
}

func loadRootGitIgnore(fsys filesystem.FileSystem, root string) (gitignore.GitIgnore, error) {
	ignorePath := filepath.Join(root, ".gitignore")
	if !fsys.Exists(ignorePath) {
		return nil, nil
	}

	data, err := fsys.ReadFile(ignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitignore: %w", err)
	}

	return gitignore.New(bytes.NewReader(data), root, nil), nil
}

// Workspaces can be an array or an object with a packages array.
// See https://docs.npmjs.com/cli/v10/using-npm/workspaces.
func extractWorkspaces(raw any) []string {
	switch v := raw.(type) {
	case []any:
		return convertWorkspaceArray(v)
	case *manifest.Object:
		if packages, ok := v.Get("packages"); ok {
			if arr, ok := packages.([]any); ok {
				return convertWorkspaceArray(arr)
			}
		}
	}
	return nil
}

func convertWorkspaceArray(values []any) []string {
	var result []string
	for _, item := range values {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			result = append(result, s)
		}
	}
	return result
}
