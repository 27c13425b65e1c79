// Command watershed analyzes elevation grids from JSON files.
package main

import (
	"os"

	"github.com/katalvlaran/watershed/cmd/watershed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
