package main

import (
	"os"

	"github.com/idilsaglam/packlist/internal/cli"
	"github.com/idilsaglam/packlist/internal/ui"
)

func main() {
	root := cli.NewRootCmd()
	if err := root.Execute(); err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(cli.ExitCode(err))
	}
}
