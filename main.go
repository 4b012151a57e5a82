package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bodrovis/csv-import-guard/cmd"
	"github.com/bodrovis/csv-import-guard/cmd/pick"
)

func main() {
	rootCmd := cmd.RootCmd()
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, pick.ErrCancelled) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "command failed: %v\n", err)
		os.Exit(1)
	}
}
