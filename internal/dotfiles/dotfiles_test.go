package dotfiles

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/jakoblorz/go-tsscaffold/internal/filesystem"
	"github.com/stretchr/testify/require"
)

func TestRenderGitignore(t *testing.T) {
	data, err := RenderGitignore(GitignorePatterns)
	require.NoError(t, err)
	require.Equal(t, ".vscode\n.cache\n.idea\n.project\nnode_modules\nsrc/**/.*\nbuild", string(data))
}

func TestRenderGitignore_Empty(t *testing.T) {
	data, err := RenderGitignore(nil)
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestGitignorePatternsMatch(t *testing.T) {
	data, err := RenderGitignore(GitignorePatterns)
	require.NoError(t, err)

	ignore := gitignore.New(bytes.NewReader(data), "/work/demo", nil)

	tests := []struct {
		path    string
		isDir   bool
		ignored bool
	}{
		{"node_modules", true, true},
		{"packages/typings/node_modules", true, true},
		{"build", true, true},
		{".vscode", true, true},
		{".idea", true, true},
		{"src", true, false},
		{"src/index.ts", false, false},
		{"package.json", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			match := ignore.Relative(tt.path, tt.isDir)
			ignored := match != nil && match.Ignore()
			require.Equal(t, tt.ignored, ignored)
		})
	}
}

func TestPrettierrc_Marshal(t *testing.T) {
	data, err := DefaultPrettierrc().Marshal()
	require.NoError(t, err)
	require.Equal(t, `{
    "singleQuote": false,
    "trailingComma": "all",
    "printWidth": 100,
    "useTabs": false,
    "tabWidth": 4,
    "semi": true,
    "bracketSpacing": true
}
`, string(data))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 7)
}

func TestWrite(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/work/demo")
	fs.AddFile("/work/demo/.gitignore", []byte("stale"))

	written, err := Write(fs, "/work/demo")
	require.NoError(t, err)
	require.Equal(t, []string{"/work/demo/.gitignore", "/work/demo/.prettierrc"}, written)

	data, err := fs.ReadFile("/work/demo/.gitignore")
	require.NoError(t, err)
	require.Contains(t, string(data), "node_modules")
	require.NotContains(t, string(data), "stale")
	require.True(t, fs.Exists("/work/demo/.prettierrc"))
}

func TestWrite_PropagatesFilesystemErrors(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/work/demo")
	denied := errors.New("permission denied")
	fs.FailOn("/work/demo/.prettierrc", denied)

	written, err := Write(fs, "/work/demo")
	require.ErrorIs(t, err, denied)
	require.Equal(t, []string{"/work/demo/.gitignore"}, written)
}
