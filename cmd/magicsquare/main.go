// Command magicsquare builds and verifies odd-sided magic squares.
package main

import (
	"os"

	"github.com/katalvlaran/magicsquare/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
