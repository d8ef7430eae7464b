package main

import (
	"fmt"
	"os"

	"github.com/dotMeeko/dotfiles/cmd/meeko"
)

func main() {
	rootCmd := meeko.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
