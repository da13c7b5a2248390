package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/go-tsscaffold/internal/filesystem"
	"github.com/jakoblorz/go-tsscaffold/internal/models"
	"github.com/jakoblorz/go-tsscaffold/internal/scaffold"
	"github.com/jakoblorz/go-tsscaffold/internal/toolchain"
	"github.com/jakoblorz/go-tsscaffold/internal/tui"
	"github.com/jakoblorz/go-tsscaffold/internal/tui/prompt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// InitCommand handles the init command
type InitCommand struct {
	fs filesystem.FileSystem

	// tools is built from the config when nil.
	tools toolchain.Initializer

	prompt func(prompt.Answers) (*prompt.Answers, error)
}

// NewInitCommand creates a new init command
func NewInitCommand(fs filesystem.FileSystem, tools toolchain.Initializer) *cobra.Command {
	return newInitCobraCommand(&InitCommand{fs: fs, tools: tools, prompt: runPrompt})
}

func newInitCobraCommand(c *InitCommand) *cobra.Command {
	cobraCmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a TypeScript project",
		Long: `Scaffold a TypeScript project into a directory.

The directory is created, or emptied when it already exists. The single
layout puts sources in src/ (and test/); the multi layout creates a
packages/ workspace of typings, helpers, main and test packages.`,
		Example: `  # Ask for everything
  tsscaffold init

  # Non-interactive multi package project in ./acme-widget
  tsscaffold init --yes --scope acme --name widget --layout multi --dir acme-widget`,
		Args: cobra.NoArgs,
		RunE: c.Run,
	}

	addInitFlags(cobraCmd.Flags())
	return cobraCmd
}

func addInitFlags(flags *pflag.FlagSet) {
	flags.String("scope", "", "Package scope, published as @scope/name")
	flags.String("name", "", "Project name (defaults to the target directory's name)")
	flags.String("author", "", "Manifest author")
	flags.String("description", "", "Manifest description")
	flags.Bool("tests", true, "Generate a test folder")
	flags.String("layout", "single", "Layout: single (package) or multi (packages)")
	flags.String("dir", "", "Target directory (defaults to ./<name>)")
	flags.BoolP("yes", "y", false, "Skip the prompts and use flags, env and config only")
}

// Run executes the init command
func (c *InitCommand) Run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	mode, err := models.ParseLayoutMode(cfg.GetString(keyLayout))
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("name")
	dir, _ := cmd.Flags().GetString("dir")
	yes, _ := cmd.Flags().GetBool("yes")

	// With --dir the root is known up front and suggests the name; without
	// it the root follows from the name.
	var root string
	if dir != "" {
		if root, err = c.resolveRoot(dir, ""); err != nil {
			return err
		}
		if strings.TrimSpace(name) == "" && !yes {
			name = scaffold.DefaultName(root)
		}
	}

	answers := prompt.Answers{
		Options: models.ProjectOptions{
			Scope:        cfg.GetString(keyScope),
			Name:         name,
			Author:       cfg.GetString(keyAuthor),
			Description:  cfg.GetString(keyDescription),
			IncludeTests: cfg.GetBool(keyTests),
		},
		Mode: mode,
	}

	if !yes {
		result, err := c.prompt(answers)
		if err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		if result == nil {
			return nil
		}
		answers = *result
	}

	if root == "" {
		if root, err = c.resolveRoot("", answers.Options.Name); err != nil {
			return err
		}
	}

	tools := c.tools
	if tools == nil {
		tools = toolchain.NewOSInitializer(cfg.GetString(keyNpm), cfg.GetString(keyTsc))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := scaffold.New(c.fs, tools, scaffold.WithOutput(cmd.OutOrStdout())).
		Init(ctx, root, answers.Options, answers.Mode)
	if err != nil {
		return fmt.Errorf("failed to scaffold %s: %w", root, err)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSummary(result))
	return nil
}

// resolveRoot makes dir absolute against the working directory, or
// defaults it to <cwd>/<name>.
func (c *InitCommand) resolveRoot(dir, name string) (string, error) {
	if dir != "" && filepath.IsAbs(dir) {
		return filepath.Clean(dir), nil
	}

	cwd, err := c.fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	if dir != "" {
		return filepath.Join(cwd, dir), nil
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return "", scaffold.ErrMissingName
	}
	return filepath.Join(cwd, name), nil
}

func runPrompt(defaults prompt.Answers) (*prompt.Answers, error) {
	return prompt.NewFlow(defaults).Run()
}

func renderSummary(result *scaffold.Result) string {
	var b strings.Builder
	b.WriteString(tui.SuccessStyle.Render(fmt.Sprintf("✔ Scaffolded %s (%s)", result.Names.Manifest, result.Mode)))
	b.WriteString("\n")
	b.WriteString(tui.TitleStyle.Render(result.Root))
	for _, file := range result.Files {
		b.WriteString("\n  ")
		b.WriteString(tui.SubtleStyle.Render(file))
	}
	return b.String()
}
