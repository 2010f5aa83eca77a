package main

import (
	"os"

	"github.com/invaderrssofficial-source/invaders.final/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
