package scaffold

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/go-tsscaffold/internal/models"
	"github.com/jakoblorz/go-tsscaffold/internal/naming"
)

// ErrMissingName is returned when no project name was supplied and none
// can be taken from the root directory.
var ErrMissingName = errors.New("project name is required")

// Normalize finalizes the options for a run against root. A blank name is
// filled from root's base name; a missing scope is taken from the part of
// that base name before its first "-". Normalizing twice yields the same
// options.
func Normalize(root string, opts models.ProjectOptions) (models.ProjectOptions, error) {
	opts.Name = strings.TrimSpace(opts.Name)
	opts.Scope = strings.TrimSpace(opts.Scope)
	if opts.Name == "" {
		opts.Name = DefaultName(root)
	}
	if opts.Name == "" {
		return opts, ErrMissingName
	}

	if !opts.HasScope() {
		if scope, _, ok := naming.SplitScope(baseName(root)); ok && scope != "" {
			opts.Scope = scope
		}
	}
	return opts, nil
}

// DefaultName is the project name derived from root: its base name with
// the scope segment removed. It is empty when root has no usable base
// name, such as "/" or ".".
func DefaultName(root string) string {
	base := baseName(root)
	if _, name, ok := naming.SplitScope(base); ok {
		return name
	}
	return base
}

func baseName(root string) string {
	base := filepath.Base(filepath.Clean(root))
	switch base {
	case ".", "..", string(filepath.Separator):
		return ""
	}
	return base
}
