package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/go-tsscaffold/internal/filesystem"
	"github.com/jakoblorz/go-tsscaffold/internal/models"
	"github.com/jakoblorz/go-tsscaffold/internal/tui"
	"github.com/jakoblorz/go-tsscaffold/internal/workspace"
	"github.com/spf13/cobra"
)

// LsCommand handles the ls command
type LsCommand struct {
	fs filesystem.FileSystem
}

// NewLsCommand creates a new ls command
func NewLsCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &LsCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "ls [dir]",
		Short: "List the packages or files of a project",
		Long: `Lists the non-private packages below a project root in dependency
order, skipping paths ignored by the root .gitignore.

Without a directory the project containing the working directory is used:
the nearest package.json, widened to any enclosing private or workspace
root, so running inside packages/<name> still lists the whole project.`,
		Example: `  # Packages of the current project
  tsscaffold ls

  # Generated TypeScript and JSON files
  tsscaffold ls acme-widget --files --ext ts,json

  # Files of a single package
  tsscaffold ls acme-widget --package @acme/widget-helpers --files`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().Bool("files", false, "List files instead of packages")
	cobraCmd.Flags().StringSlice("ext", nil, "Only list files with these extensions (with --files)")
	cobraCmd.Flags().String("format", "text", "Output format: text or json")
	cobraCmd.Flags().StringP("package", "p", "", "Only show the package with this name")

	return cobraCmd
}

// Run executes the ls command
func (c *LsCommand) Run(cmd *cobra.Command, args []string) error {
	files, _ := cmd.Flags().GetBool("files")
	exts, _ := cmd.Flags().GetStringSlice("ext")
	format, _ := cmd.Flags().GetString("format")
	only, _ := cmd.Flags().GetString("package")

	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q (expected text or json)", format)
	}

	ws := workspace.New(c.fs)
	if len(args) == 1 {
		root, err := c.absolute(args[0])
		if err != nil {
			return err
		}
		if err := ws.Load(root); err != nil {
			return fmt.Errorf("failed to load workspace: %w", err)
		}
	} else if err := ws.Detect(); err != nil {
		return fmt.Errorf("failed to detect workspace: %w", err)
	}

	packages := ws.Packages
	listRoot := ws.RootPath
	if only != "" {
		pkg, err := ws.GetPackage(only)
		if err != nil {
			return err
		}
		packages = []*models.Package{pkg}
		listRoot = filepath.Join(ws.RootPath, filepath.FromSlash(pkg.Dir))
	}

	out := cmd.OutOrStdout()

	if files {
		list, err := filesystem.ListFiles(c.fs, listRoot, true, exts...)
		if err != nil {
			return err
		}
		if format == "json" {
			return json.NewEncoder(out).Encode(list)
		}
		for _, file := range list {
			_, _ = fmt.Fprintln(out, file)
		}
		return nil
	}

	if format == "json" {
		return json.NewEncoder(out).Encode(packages)
	}
	for _, pkg := range packages {
		_, _ = fmt.Fprintln(out, renderPackage(pkg))
	}
	return nil
}

func (c *LsCommand) absolute(dir string) (string, error) {
	if filepath.IsAbs(dir) {
		return dir, nil
	}
	cwd, err := c.fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return filepath.Join(cwd, dir), nil
}

func renderPackage(pkg *models.Package) string {
	line := fmt.Sprintf("%s %s", tui.PackageStyle.Render(pkg.Name), tui.SubtleStyle.Render(pkg.Dir))
	if len(pkg.Dependencies) == 0 {
		return line
	}

	deps := make([]string, len(pkg.Dependencies))
	for i, dep := range pkg.Dependencies {
		deps[i] = tui.DependencyStyle.Render(dep)
	}
	return line + " -> " + strings.Join(deps, ", ")
}
