// Command infiniloop reads an Infinite Loop puzzle from stdin, solves
// it, and prints the first solution found.
package main

import (
	"os"

	"github.com/pipeworks-go/infiniloop/internal/cli"
)

func main() {
	os.Exit(cli.Main(cli.NewRootCommand(false)))
}
