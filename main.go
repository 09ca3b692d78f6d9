package main

import (
	"os"

	"github.com/thenoetrevino/alphaslider/cmd"
	"github.com/thenoetrevino/alphaslider/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
