package scaffold

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/jakoblorz/go-tsscaffold/internal/filesystem"
	"github.com/jakoblorz/go-tsscaffold/internal/manifest"
	"github.com/jakoblorz/go-tsscaffold/internal/models"
	"github.com/jakoblorz/go-tsscaffold/internal/naming"
	"github.com/jakoblorz/go-tsscaffold/internal/toolchain"
	"github.com/jakoblorz/go-tsscaffold/internal/tsconfig"
	"github.com/stretchr/testify/require"
)

func setup() (*filesystem.MockFileSystem, *toolchain.MockInitializer) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/workspace")
	return fs, toolchain.NewMockInitializer(fs)
}

func contents(t *testing.T, fs *filesystem.MockFileSystem, root string) map[string]string {
	t.Helper()
	files, err := filesystem.ListFiles(fs, root, false)
	require.NoError(t, err)

	out := make(map[string]string, len(files))
	for _, f := range files {
		data, err := fs.ReadFile(f)
		require.NoError(t, err)
		out[f] = string(data)
	}
	return out
}

func TestInit_SingleLayout(t *testing.T) {
	fs, tools := setup()
	var out bytes.Buffer

	result, err := New(fs, tools, WithOutput(&out)).Init(context.Background(), "/workspace/demo",
		models.ProjectOptions{Name: "acme-widget", IncludeTests: true}, models.LayoutSingle)
	require.NoError(t, err)

	require.Equal(t, "acme-widget", result.Names.Manifest)
	require.Equal(t, "AcmeWidget", result.Names.Namespace)
	require.False(t, result.Options.HasScope())
	require.Equal(t, []string{
		".gitignore",
		".prettierrc",
		"package.json",
		"src/@types.ts",
		"src/index.ts",
		"src/tsconfig.json",
		"test/index.ts",
		"test/tsconfig.json",
		"tsconfig.base.json",
		"tsconfig.json",
	}, result.Files)
	require.True(t, fs.Exists("/workspace/demo/scripts"))

	m, err := manifest.Read(fs, "/workspace/demo/package.json")
	require.NoError(t, err)
	require.Equal(t, "acme-widget", m.Name())
	_, private := m.Get("private")
	require.False(t, private)

	require.Contains(t, out.String(), "init target path /workspace/demo\n")

	snaps.MatchSnapshot(t, contents(t, fs, "/workspace/demo"))
}

func TestInit_MultiLayout(t *testing.T) {
	fs, tools := setup()

	result, err := New(fs, tools).Init(context.Background(), "/workspace/widget",
		models.ProjectOptions{Scope: "acme", Name: "widget"}, models.LayoutMulti)
	require.NoError(t, err)

	for _, dir := range []string{"typings", "helpers", "widget"} {
		require.True(t, fs.Exists("/workspace/widget/packages/"+dir+"/src/index.ts"), dir)
		require.True(t, fs.Exists("/workspace/widget/packages/"+dir+"/package.json"), dir)
		require.True(t, fs.Exists("/workspace/widget/packages/"+dir+"/tsconfig.json"), dir)
	}
	require.False(t, fs.Exists("/workspace/widget/packages/test"))

	mainManifest, err := manifest.Read(fs, "/workspace/widget/packages/widget/package.json")
	require.NoError(t, err)
	require.Equal(t, "@acme/widget", mainManifest.Name())
	require.Equal(t, []string{"@acme/widget-helpers", "@acme/widget-typings"}, manifest.Dependencies(mainManifest))

	root, err := manifest.Read(fs, "/workspace/widget/package.json")
	require.NoError(t, err)
	private, _ := root.Get("private")
	require.Equal(t, true, private)

	require.Equal(t, "ACMEWidget", result.Names.Namespace)
}

func TestInit_MultiLayout_ReferenceGraphMirrorsDependencies(t *testing.T) {
	fs, tools := setup()

	result, err := New(fs, tools).Init(context.Background(), "/workspace/widget",
		models.ProjectOptions{Scope: "acme", Name: "widget", IncludeTests: true}, models.LayoutMulti)
	require.NoError(t, err)

	folderOf := map[string]string{
		result.Names.Typings: naming.TypingsDir,
		result.Names.Helpers: naming.HelpersDir,
		result.Names.Main:    result.Names.MainFolder,
		result.Names.Test:    naming.TestDir,
	}

	for _, dir := range []string{"typings", "helpers", "widget", "test"} {
		pkgDir := "packages/" + dir

		m, err := manifest.Read(fs, "/workspace/widget/"+pkgDir+"/package.json")
		require.NoError(t, err)
		fromManifest := []string{}
		for _, dep := range manifest.Dependencies(m) {
			fromManifest = append(fromManifest, folderOf[dep])
		}

		data, err := fs.ReadFile("/workspace/widget/" + pkgDir + "/tsconfig.json")
		require.NoError(t, err)
		var project tsconfig.Project
		require.NoError(t, json.Unmarshal(data, &project))
		fromConfig := []string{}
		for _, ref := range project.References {
			fromConfig = append(fromConfig, path.Base(path.Dir(path.Join(pkgDir, ref.Path))))
		}

		require.Equal(t, fromManifest, fromConfig, dir)
	}
}

func TestInit_HyphenatedRootSplitsScope(t *testing.T) {
	fs, tools := setup()

	result, err := New(fs, tools).Init(context.Background(), "/workspace/acme-widget",
		models.ProjectOptions{Name: "widget"}, models.LayoutMulti)
	require.NoError(t, err)

	require.Equal(t, "acme", result.Options.Scope)
	require.Equal(t, "@acme/widget", result.Names.Manifest)

	// sources live in the root-named folder, the main manifest in the suffix folder
	require.True(t, fs.Exists("/workspace/acme-widget/packages/acme-widget/src/index.ts"))
	require.True(t, fs.Exists("/workspace/acme-widget/packages/acme-widget/tsconfig.json"))
	require.True(t, fs.Exists("/workspace/acme-widget/packages/widget/package.json"))
}

func TestInit_RerunIsByteIdentical(t *testing.T) {
	fs, tools := setup()
	opts := models.ProjectOptions{Scope: "acme", Name: "widget", Author: "ada", IncludeTests: true}
	gen := New(fs, tools)

	_, err := gen.Init(context.Background(), "/workspace/widget", opts, models.LayoutMulti)
	require.NoError(t, err)
	first := contents(t, fs, "/workspace/widget")

	fs.AddFile("/workspace/widget/packages/helpers/src/extra.ts", []byte("edit"))

	_, err = gen.Init(context.Background(), "/workspace/widget", opts, models.LayoutMulti)
	require.NoError(t, err)
	require.Equal(t, first, contents(t, fs, "/workspace/widget"))
}

func TestInit_MissingNameTouchesNothing(t *testing.T) {
	for _, mode := range []models.LayoutMode{models.LayoutSingle, models.LayoutMulti} {
		t.Run(mode.String(), func(t *testing.T) {
			fs, tools := setup()

			_, err := New(fs, tools).Init(context.Background(), "/workspace/acme-", models.ProjectOptions{}, mode)
			require.ErrorIs(t, err, ErrMissingName)
			require.False(t, fs.Exists("/workspace/acme-"))
			require.Empty(t, tools.Calls())
		})
	}
}

func TestInit_NameFromRoot(t *testing.T) {
	fs, tools := setup()

	result, err := New(fs, tools).Init(context.Background(), "/workspace/acme-widget/",
		models.ProjectOptions{}, models.LayoutMulti)
	require.NoError(t, err)

	require.Equal(t, "/workspace/acme-widget", result.Root)
	require.Equal(t, models.ProjectOptions{Scope: "acme", Name: "widget"}, result.Options)
	require.Equal(t, "ACMEWidget", result.Names.Namespace)

	m, err := manifest.Read(fs, "/workspace/acme-widget/packages/widget/package.json")
	require.NoError(t, err)
	require.Equal(t, "@acme/widget", m.Name())
}

func TestInit_UnknownLayout(t *testing.T) {
	fs, tools := setup()

	_, err := New(fs, tools).Init(context.Background(), "/workspace/demo",
		models.ProjectOptions{Name: "demo"}, models.LayoutMode("flat"))
	require.ErrorIs(t, err, models.ErrUnknownLayout)
	require.False(t, fs.Exists("/workspace/demo"))
}

func TestInit_MissingManifestTemplate(t *testing.T) {
	fs, tools := setup()
	tools.SkipManifest = true

	_, err := New(fs, tools).Init(context.Background(), "/workspace/demo",
		models.ProjectOptions{Name: "demo"}, models.LayoutSingle)
	require.ErrorIs(t, err, toolchain.ErrTemplateMissing)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	require.Equal(t, StageWriteManifest, stageErr.Stage)

	// no rollback
	require.True(t, fs.Exists("/workspace/demo"))
}

func TestInit_MissingCompilerConfigTemplate(t *testing.T) {
	fs, tools := setup()
	tools.SkipCompilerConfig = true

	_, err := New(fs, tools).Init(context.Background(), "/workspace/demo",
		models.ProjectOptions{Name: "demo"}, models.LayoutSingle)
	require.ErrorIs(t, err, toolchain.ErrTemplateMissing)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	require.Equal(t, StageWriteCompilerConfig, stageErr.Stage)
	require.True(t, fs.Exists("/workspace/demo/src/index.ts"))
}

func TestInit_FilesystemErrorsPropagate(t *testing.T) {
	fs, tools := setup()
	denied := errors.New("permission denied")
	fs.FailOn("/workspace/demo/.gitignore", denied)

	_, err := New(fs, tools).Init(context.Background(), "/workspace/demo",
		models.ProjectOptions{Name: "demo"}, models.LayoutSingle)
	require.ErrorIs(t, err, denied)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	require.Equal(t, StageWriteAuxFiles, stageErr.Stage)
}

func TestInit_StageOrder(t *testing.T) {
	fs, tools := setup()
	var seen []Stage

	_, err := New(fs, tools, WithStageHook(func(s Stage) { seen = append(seen, s) })).
		Init(context.Background(), "/workspace/widget", models.ProjectOptions{Scope: "acme", Name: "widget"}, models.LayoutMulti)
	require.NoError(t, err)

	require.Equal(t, Stages(models.LayoutMulti), seen)
	require.Equal(t, []toolchain.Call{
		{Tool: "npm", Dir: "/workspace/widget"},
		{Tool: "tsc", Dir: "/workspace/widget"},
	}, tools.Calls())
}

func TestInit_CanceledContext(t *testing.T) {
	fs, tools := setup()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(fs, tools).Init(ctx, "/workspace/demo", models.ProjectOptions{Name: "demo"}, models.LayoutSingle)
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, fs.Exists("/workspace/demo"))
}

func TestStages(t *testing.T) {
	require.Equal(t, []Stage{
		StageClearRoot, StageWriteManifest, StageWriteAuxFiles, StageBuildSkeleton, StageWriteCompilerConfig,
	}, Stages(models.LayoutSingle))
	require.Equal(t, StageExpandManifest, Stages(models.LayoutMulti)[5])
}
