package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/magicsquare/square"
)

// NewBuildCommand creates the build command. Its flags are not bound to
// variables: loadParams reads the changed ones through koanf so they layer
// over the file and environment.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a magic square and print it",
		Long: `Build an odd-sided magic square and print it.

Settings are merged from defaults, the --config file, MAGICSQUARE_* environment
variables and flags, in increasing order of precedence. Without a base number
one is drawn from [1, 100]; --seed makes that draw reproducible.`,
		Example: `  magicsquare build --side 5 --base 41
  magicsquare build -s 7 --style light --sums
  MAGICSQUARE_SIDE=9 magicsquare build --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, rootOpts)
		},
	}

	cmd.Flags().IntP("side", "s", DefaultSide, "side length (positive, odd)")
	cmd.Flags().StringP("base", "b", "", "smallest value in the square (positive integer; empty draws one)")
	cmd.Flags().Int64("seed", 0, "seed for the default base draw")
	cmd.Flags().String("style", DefaultStyle, "render style (classic|light|double|ascii)")
	cmd.Flags().Bool("sums", false, "also print line sums / magic constant")

	return cmd
}

func runBuild(cmd *cobra.Command, opts *RootOptions) error {
	params, err := loadParams(opts.Params, opts.ConfigFile, cmd.Flags())
	if err != nil {
		return WrapExitError(ExitCommandError, "load config", err)
	}
	cfg, err := resolveBuildConfig(params)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	sq, err := square.New(cfg.Side, append(cfg.Options(), square.WithLogger(opts.Logger))...)
	switch {
	case errors.Is(err, square.ErrInvalidSide), errors.Is(err, square.ErrInvalidBase):
		return WrapExitError(ExitCommandError, "build", err)
	case err != nil:
		return WrapExitError(ExitFailure, "build", err)
	}
	opts.Logger.Debug("square ready", "side", sq.Side(), "base", sq.Base(), "style", cfg.Style)

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		return writeJSON(out, Response{Status: "ok", Data: newSquarePayload(sq)})
	}
	return renderSquare(out, sq, cfg.Style, cfg.Sums)
}
