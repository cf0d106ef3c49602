// Command infiniloopc reads an Infinite Loop puzzle from stdin, solves
// it, and prints the first solution found alongside the total number
// of solutions the board admits.
package main

import (
	"os"

	"github.com/pipeworks-go/infiniloop/internal/cli"
)

func main() {
	os.Exit(cli.Main(cli.NewRootCommand(true)))
}
