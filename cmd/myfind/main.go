package main

import (
	"os"

	"github.com/zjuct/myfind/internal/cli"
	"github.com/zjuct/myfind/internal/core"
)

func main() {
	cfg := core.NewConfig()
	root := cli.NewRootCmd(cfg)
	if err := root.Execute(); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(core.ExitCode(err))
	}
}
