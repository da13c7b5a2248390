package skeleton

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Placeholder source file names.
const (
	DeclarationFile = "@types.ts"
	EntryFile       = "index.ts"
)

// declarationImport is how an entry file pulls in its own declaration file.
const declarationImport = "./@types"

// testPlaceholder is the body of a single layout's test entry.
const testPlaceholder = "export {};"

var sources = template.Must(template.New("sources").Funcs(sprig.TxtFuncMap()).Parse(`
{{- define "declaration" }}declare namespace {{ .Namespace }} {}{{ end }}
{{- define "entry" }}{{ range $i, $path := .Imports }}{{ if $i }}{{ "\n\n" }}{{ end }}import {{ quote $path }};{{ end }}{{ end }}
`))

// Declaration renders the placeholder global namespace declaration.
func Declaration(namespace string) ([]byte, error) {
	return render("declaration", map[string]any{"Namespace": namespace})
}

// Entry renders an entry file importing each specifier in order, followed
// by the package's own declaration file.
func Entry(imports ...string) ([]byte, error) {
	specs := append(append([]string{}, imports...), declarationImport)
	return render("entry", map[string]any{"Imports": specs})
}

func render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := sources.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
