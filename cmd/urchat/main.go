package main

import (
	"os"

	"urchat/cmd/urchat/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
