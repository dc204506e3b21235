package main

import (
	"os"

	"github.com/thenoetrevino/roster/cmd"
	"github.com/thenoetrevino/roster/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
