package main

import (
	"os"

	"github.com/abhisek/trigbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
