package main

import (
	"os"

	"github.com/sisgea/unispec/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
