package main

import (
	"fmt"
	"os"

	"github.com/cwalker/chimera/cmd/chimera"
	"github.com/cwalker/chimera/pkg/styles"
)

func main() {
	rootCmd := chimera.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Render("Error", fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
