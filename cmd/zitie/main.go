// Package main is the entry point for the zitie CLI.
package main

import (
	"os"

	"github.com/f3rmion/zitie/cmd/zitie/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
