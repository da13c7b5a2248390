package toolchain

import (
	"context"
	"errors"
)

// Files the external initializers are expected to leave in the target directory.
const (
	ManifestFile       = "package.json"
	CompilerConfigFile = "tsconfig.json"
)

// ErrTemplateMissing is returned when an initializer ran but its expected
// file is not present afterwards.
var ErrTemplateMissing = errors.New("initializer did not produce its template")

// Initializer runs the external package-manager and compiler initializers
// that seed a project with a manifest and a compiler config.
//
// Both calls are synchronous; the caller checks for the expected file afterwards.
type Initializer interface {
	// InitManifest seeds dir/package.json (npm init -y).
	InitManifest(ctx context.Context, dir string) error

	// InitCompilerConfig seeds dir/tsconfig.json (tsc --init).
	InitCompilerConfig(ctx context.Context, dir string) error
}
