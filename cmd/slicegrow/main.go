// Command slicegrow prints the reallocation behaviour of the slicegrow
// growth policy.
package main

import (
	"os"

	"github.com/pavanmanishd/slicegrow/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
