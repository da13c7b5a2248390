package scaffold

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/jakoblorz/go-tsscaffold/internal/dotfiles"
	"github.com/jakoblorz/go-tsscaffold/internal/filesystem"
	"github.com/jakoblorz/go-tsscaffold/internal/manifest"
	"github.com/jakoblorz/go-tsscaffold/internal/models"
	"github.com/jakoblorz/go-tsscaffold/internal/naming"
	"github.com/jakoblorz/go-tsscaffold/internal/skeleton"
	"github.com/jakoblorz/go-tsscaffold/internal/toolchain"
	"github.com/jakoblorz/go-tsscaffold/internal/tsconfig"
)

// Result describes a finished run.
type Result struct {
	Root    string
	Options models.ProjectOptions
	Names   naming.Names
	Mode    models.LayoutMode

	// Files lists every file below Root, relative and sorted.
	Files []string
}

// Initializer generates a project into a root directory.
type Initializer struct {
	fs    filesystem.FileSystem
	tools toolchain.Initializer
	out   io.Writer

	onStage func(Stage)
}

// Option configures an Initializer.
type Option func(*Initializer)

// WithOutput sets where directory progress lines are written.
func WithOutput(w io.Writer) Option {
	return func(i *Initializer) {
		i.out = w
	}
}

// WithStageHook registers fn to be called before each stage runs.
func WithStageHook(fn func(Stage)) Option {
	return func(i *Initializer) {
		i.onStage = fn
	}
}

// New creates an Initializer writing through fs and seeding templates via tools.
func New(fs filesystem.FileSystem, tools toolchain.Initializer, opts ...Option) *Initializer {
	i := &Initializer{
		fs:    fs,
		tools: tools,
		out:   io.Discard,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Init runs every stage of mode against root. Invalid input is rejected
// before the filesystem is touched; a failing stage stops the run and is
// returned as a *StageError.
func (i *Initializer) Init(ctx context.Context, root string, opts models.ProjectOptions, mode models.LayoutMode) (*Result, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownLayout, mode)
	}

	root = filepath.Clean(root)
	opts, err := Normalize(root, opts)
	if err != nil {
		return nil, err
	}

	names := naming.Derive(opts, filepath.Base(root))

	builder := skeleton.NewBuilder(i.fs, i.out)
	manifests := manifest.NewGenerator(i.fs, i.tools)
	configs := tsconfig.NewGenerator(i.fs, i.tools)

	steps := map[Stage]func() error{
		StageClearRoot: func() error {
			return builder.Prepare(root)
		},
		StageWriteManifest: func() error {
			return manifests.CreateBase(ctx, root, opts, names, mode)
		},
		StageWriteAuxFiles: func() error {
			_, err := dotfiles.Write(i.fs, root)
			return err
		},
		StageBuildSkeleton: func() error {
			return builder.Build(root, opts, names, mode)
		},
		StageWriteCompilerConfig: func() error {
			if err := configs.WriteBase(ctx, root); err != nil {
				return err
			}
			_, err := configs.WriteTopology(root, names, opts.IncludeTests, mode)
			return err
		},
		StageExpandManifest: func() error {
			_, err := manifests.ExpandForMultiMode(root, opts, names, mode)
			return err
		},
	}

	for _, stage := range Stages(mode) {
		if err := ctx.Err(); err != nil {
			return nil, &StageError{Stage: stage, Err: err}
		}
		if i.onStage != nil {
			i.onStage(stage)
		}
		if err := steps[stage](); err != nil {
			return nil, &StageError{Stage: stage, Err: err}
		}
	}

	files, err := filesystem.ListFiles(i.fs, root, true)
	if err != nil {
		return nil, err
	}

	return &Result{
		Root:    root,
		Options: opts,
		Names:   names,
		Mode:    mode,
		Files:   files,
	}, nil
}
