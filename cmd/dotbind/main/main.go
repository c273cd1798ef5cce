package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dotbind/cmd/dotbind"
	"github.com/arthur-debert/dotbind/pkg/ui/styles"
)

func main() {
	rootCmd := dotbind.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
