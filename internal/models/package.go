package models

// Package is a package.json discovered below a project root.
type Package struct {
	// Name is the manifest name (falls back to the folder name).
	Name string `json:"name"`

	// Dir is the package directory relative to the scanned root.
	Dir string `json:"dir"`

	Version string `json:"version"`

	// Dependencies are the names listed under "dependencies", sorted.
	Dependencies []string `json:"dependencies"`
}

// DependsOn reports whether p lists name as a dependency.
func (p *Package) DependsOn(name string) bool {
	for _, dep := range p.Dependencies {
		if dep == name {
			return true
		}
	}
	return false
}
