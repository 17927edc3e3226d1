package main

import (
	"os"

	"github.com/tormodhaugland/pl/cmd/pl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
