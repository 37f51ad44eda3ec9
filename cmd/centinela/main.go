package main

import (
	"os"

	"github.com/afuentes/centinela/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
