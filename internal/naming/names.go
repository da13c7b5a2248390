package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jakoblorz/go-tsscaffold/internal/models"
)

// Sub-package folder names of a multi layout.
const (
	TypingsDir = "typings"
	HelpersDir = "helpers"
	TestDir    = "test"
)

// Names holds every identifier derived from the project options.
// It is computed once per run and passed around by value.
type Names struct {
	// Manifest is the base manifest name: "@scope/name" or "name" (name lowercased).
	Manifest string

	// Namespace is the PascalCase declaration namespace, prefixed by the uppercased scope.
	Namespace string

	// Multi layout manifest names.
	Typings string
	Helpers string
	Main    string
	Test    string

	// MainSuffix is the folder the main package manifest is written to.
	MainSuffix string

	// MainFolder is the on-disk main package folder (the project root's base name).
	MainFolder string
}

// Derive computes Names from the options. rootBase is the base name of the
// project root and only feeds MainFolder.
func Derive(opts models.ProjectOptions, rootBase string) Names {
	base := ManifestName(opts.Scope, opts.Name)

	return Names{
		Manifest:   base,
		Namespace:  Namespace(opts.Scope, opts.Name),
		Typings:    base + "-" + TypingsDir,
		Helpers:    base + "-" + HelpersDir,
		Main:       base,
		Test:       base + "-" + TestDir,
		MainSuffix: MainSuffix(opts.Scope, opts.Name),
		MainFolder: rootBase,
	}
}

// TypingsImport is the import specifier non-typings packages use for the typings package.
func (n Names) TypingsImport() string {
	return n.Typings
}

// ManifestName returns "@scope/name" when scope is set, "name" otherwise.
// The name part is lowercased, the scope is kept as given.
func ManifestName(scope, name string) string {
	if scope == "" {
		return strings.ToLower(name)
	}
	return "@" + scope + "/" + strings.ToLower(name)
}

// Namespace upper-cases the first character of every "-" separated segment
// of name and joins them. A scope is prepended in upper case.
// e.g. ("", "acme-widget") -> "AcmeWidget", ("acme", "widget") -> "ACMEWidget".
func Namespace(scope, name string) string {
	var b strings.Builder
	if scope != "" {
		b.WriteString(strings.ToUpper(scope))
	}
	for _, segment := range strings.Split(name, "-") {
		b.WriteString(upperFirst(segment))
	}
	return b.String()
}

// MainSuffix returns name when scoped; otherwise name without its first
// "-" segment, or name itself when it has no "-".
func MainSuffix(scope, name string) string {
	if scope != "" {
		return name
	}
	if _, rest, found := strings.Cut(name, "-"); found {
		return rest
	}
	return name
}

// SplitScope splits "acme-widget-kit" into ("acme", "widget-kit").
// ok is false when s contains no "-".
func SplitScope(s string) (scope, name string, ok bool) {
	return strings.Cut(s, "-")
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsSpace(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
