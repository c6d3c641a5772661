package main

import (
	"os"

	"palinview/cmd/palinctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
