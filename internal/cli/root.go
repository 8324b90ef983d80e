package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/magicsquare/frozen"
)

// RootOptions holds global flags and state shared by all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigFile string

	// Logger is installed by the root pre-run hook.
	Logger *slog.Logger
	// Params holds the merged configuration; first load wins for the
	// lifetime of this command tree.
	Params *frozen.Registry
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the magicsquare CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Params: &frozen.Registry{}}

	cmd := &cobra.Command{
		Use:   "magicsquare",
		Short: "Build and verify odd-sided magic squares",
		Long: "magicsquare builds N×N magic squares with the siamese method and " +
			"verifies the magic property of grids read from YAML or JSON.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return WrapExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats), nil)
			}

			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
			opts.Params.Logger = opts.Logger
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "config file (YAML or JSON)")

	cmd.AddCommand(NewBuildCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))

	return cmd
}
