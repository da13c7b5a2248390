package models

// ProjectOptions are the user-supplied answers a project is generated from.
type ProjectOptions struct {
	// Scope is the organisational prefix of the manifest name (@scope/name).
	Scope string

	// Name is the project name. Required.
	Name string

	Description string
	Author      string

	// IncludeTests adds a test folder (single) or test package (multi).
	IncludeTests bool
}

// HasScope reports whether a non-empty scope is set.
func (o ProjectOptions) HasScope() bool {
	return o.Scope != ""
}
