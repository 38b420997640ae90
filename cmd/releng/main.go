package main

import (
	"os"

	"github.com/viaduct-dev/releng/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
