// Package main is the entry point for the kazky CLI.
package main

import (
	"os"

	"github.com/odarka/kazky/cmd/kazky/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
