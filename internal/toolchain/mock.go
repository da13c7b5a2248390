package toolchain

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/jakoblorz/go-tsscaffold/internal/filesystem"
)

// DefaultManifestTemplate mirrors the output of `npm init -y`.
const DefaultManifestTemplate = `{
  "name": "seed",
  "version": "1.0.0",
  "description": "",
  "main": "index.js",
  "scripts": {
    "test": "echo \"Error: no test specified\" && exit 1"
  },
  "keywords": [],
  "author": "",
  "license": "ISC"
}
`

// DefaultCompilerConfigTemplate is an abbreviated `tsc --init` output,
// comments and trailing comma included.
const DefaultCompilerConfigTemplate = `{
  "compilerOptions": {
    // Visit https://aka.ms/tsconfig to read more about this file

    // Language and Environment
    "target": "es2016", // Set the JavaScript language version for emitted JavaScript.

    // Modules
    "module": "commonjs", // Specify what module code is generated.

    // Interop Constraints
    "esModuleInterop": true,
    "forceConsistentCasingInFileNames": true,

    // Type Checking
    "strict": true,

    // Completeness
    "skipLibCheck": true,
  }
}
`

// Call records one initializer invocation.
type Call struct {
	Tool string
	Dir  string
}

// MockInitializer implements Initializer by writing fixed templates into a FileSystem.
type MockInitializer struct {
	mu    sync.Mutex
	fs    filesystem.FileSystem
	calls []Call

	ManifestTemplate       string
	CompilerConfigTemplate string

	// Skip* leave the expected file unwritten, simulating a broken toolchain.
	SkipManifest       bool
	SkipCompilerConfig bool

	// Errors returned from the respective call, after recording it.
	InitManifestError       error
	InitCompilerConfigError error
}

// NewMockInitializer creates a MockInitializer using the default templates
func NewMockInitializer(fs filesystem.FileSystem) *MockInitializer {
	return &MockInitializer{
		fs:                     fs,
		ManifestTemplate:       DefaultManifestTemplate,
		CompilerConfigTemplate: DefaultCompilerConfigTemplate,
	}
}

func (m *MockInitializer) InitManifest(_ context.Context, dir string) error {
	m.record("npm", dir)
	if m.InitManifestError != nil {
		return m.InitManifestError
	}
	if m.SkipManifest {
		return nil
	}
	return m.fs.WriteFile(filepath.Join(dir, ManifestFile), []byte(m.ManifestTemplate), 0o644)
}

func (m *MockInitializer) InitCompilerConfig(_ context.Context, dir string) error {
	m.record("tsc", dir)
	if m.InitCompilerConfigError != nil {
		return m.InitCompilerConfigError
	}
	if m.SkipCompilerConfig {
		return nil
	}
	return m.fs.WriteFile(filepath.Join(dir, CompilerConfigFile), []byte(m.CompilerConfigTemplate), 0o644)
}

// Calls returns the recorded invocations in order
func (m *MockInitializer) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

func (m *MockInitializer) record(tool, dir string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Tool: tool, Dir: dir})
}
