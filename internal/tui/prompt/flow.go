package prompt

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/jakoblorz/go-tsscaffold/internal/models"
	"github.com/jakoblorz/go-tsscaffold/internal/tui"
)

// Answers is what the flow collects: the project options and the layout.
type Answers struct {
	Options models.ProjectOptions
	Mode    models.LayoutMode
}

// Flow asks for the project options using huh forms.
type Flow struct {
	theme    *huh.Theme
	defaults Answers

	// run executes a form; replaced in tests.
	run func(*huh.Form) error
}

// NewFlow constructs a Flow pre-filled with defaults.
func NewFlow(defaults Answers) *Flow {
	if !defaults.Mode.IsValid() {
		defaults.Mode = models.LayoutSingle
	}

	return &Flow{
		theme:    tui.NewHuhTheme(),
		defaults: defaults,
		run:      func(form *huh.Form) error { return form.Run() },
	}
}

// Run shows the forms; returns nil answers on user abort.
func (f *Flow) Run() (*Answers, error) {
	answers := f.defaults
	layout := string(answers.Mode)

	if err := f.run(f.projectForm(&answers.Options)); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	if err := f.run(f.structureForm(&answers.Options.IncludeTests, &layout)); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	mode, err := models.ParseLayoutMode(layout)
	if err != nil {
		return nil, err
	}
	answers.Mode = mode

	answers.Options.Scope = strings.TrimSpace(answers.Options.Scope)
	answers.Options.Name = strings.TrimSpace(answers.Options.Name)
	answers.Options.Author = strings.TrimSpace(answers.Options.Author)
	answers.Options.Description = strings.TrimSpace(answers.Options.Description)

	return &answers, nil
}

func (f *Flow) projectForm(opts *models.ProjectOptions) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Scope").
				Description("Optional, published as @scope/name.").
				Placeholder("acme").
				Value(&opts.Scope),
			huh.NewInput().
				Title("Name").
				Value(&opts.Name).
				Validate(ValidateName),
			huh.NewInput().
				Title("Author").
				Value(&opts.Author),
			huh.NewInput().
				Title("Description").
				Value(&opts.Description),
		).
			Title("Project").
			Description("How the package is named and described."),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())
}

func (f *Flow) structureForm(includeTests *bool, layout *string) *huh.Form {
	keyMap := huh.NewDefaultKeyMap()
	keyMap.Select.Filter.SetEnabled(false)
	keyMap.Select.Submit.SetKeys("enter", " ")
	keyMap.Select.Submit.SetHelp("space/enter", "continue")

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Add a test folder?").
				Affirmative("Yes").
				Negative("No").
				Value(includeTests),
			huh.NewSelect[string]().
				Title("Layout").
				Options(LayoutOptions()...).
				Value(layout),
		).
			Title("Structure"),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen()).
		WithKeyMap(keyMap)
}

// LayoutOptions are the selectable layouts, single first.
func LayoutOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("single: src/ and test/ in one package", string(models.LayoutSingle)),
		huh.NewOption("multi: packages/ with typings, helpers, main and test", string(models.LayoutMulti)),
	}
}

// ValidateName rejects blank project names.
func ValidateName(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}
