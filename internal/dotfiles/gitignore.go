package dotfiles

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// GitignoreFile is the ignore-rules file name.
const GitignoreFile = ".gitignore"

// GitignorePatterns are the ignore rules of every generated project, in file order.
var GitignorePatterns = []string{
	".vscode",
	".cache",
	".idea",
	".project",
	"node_modules",
	"src/**/.*",
	"build",
}

// Patterns are joined without a trailing newline.
const gitignoreTemplate = `{{ join "\n" .Patterns }}`

var gitignoreTmpl = template.Must(template.New(GitignoreFile).Funcs(sprig.TxtFuncMap()).Parse(gitignoreTemplate))

// RenderGitignore returns the .gitignore body for the given patterns.
func RenderGitignore(patterns []string) ([]byte, error) {
	var buf bytes.Buffer
	if err := gitignoreTmpl.Execute(&buf, struct{ Patterns []string }{patterns}); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", GitignoreFile, err)
	}
	return buf.Bytes(), nil
}
