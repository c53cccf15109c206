package main

import (
	"os"

	"vibescore/cmd/vibectl/command"
)

func main() {
	if err := command.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
