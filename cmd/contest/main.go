package main

import (
	"os"

	"github.com/contestkit/contestkit/cmd/contest/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
