package main

import (
	"github.com/davejbax/go-ytime/internal/cli"
	"log"
	"os"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		log.Print(err)
		os.Exit(cli.GetExitCode(err))
	}
}
