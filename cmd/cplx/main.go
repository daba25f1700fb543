package main

import (
	"os"

	"github.com/msto63/mathkit/cmd/cplx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
