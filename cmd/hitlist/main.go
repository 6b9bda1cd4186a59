// Command hitlist browses Hacker News search results from the terminal.
package main

import (
	"os"

	"github.com/custodia-labs/hitlist/internal/adapters/driving/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetWiring(wire)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
