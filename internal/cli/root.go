package cli

import (
	"context"
	"fmt"

	"github.com/jakoblorz/go-tsscaffold/internal/filesystem"
	"github.com/jakoblorz/go-tsscaffold/internal/toolchain"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command. A nil tools runs the npm and tsc
// binaries named by the config.
func NewRootCommand(fs filesystem.FileSystem, tools toolchain.Initializer) *cobra.Command {
	return newRootCommand(fs, &InitCommand{fs: fs, tools: tools, prompt: runPrompt})
}

func newRootCommand(fs filesystem.FileSystem, initCmd *InitCommand) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tsscaffold",
		Short: "Scaffold TypeScript projects",
		Long: `A CLI tool for scaffolding TypeScript projects.

Generates the manifest, compiler configs with project references, ignore
and formatter rules and a source skeleton, as a single package or as a
packages/ workspace.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		// Default to `tsscaffold init` when no subcommand is provided.
		RunE: initCmd.Run,
	}

	addInitFlags(rootCmd.Flags())
	rootCmd.PersistentFlags().String("config", "", "Config file (default $HOME/.tsscaffold.yaml)")

	rootCmd.AddCommand(newInitCobraCommand(initCmd))
	rootCmd.AddCommand(NewLsCommand(fs))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	rootCmd := NewRootCommand(fs, nil)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
