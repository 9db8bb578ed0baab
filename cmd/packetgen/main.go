package main

import (
	"fmt"
	"os"

	"github.com/alexhholmes/pktlayout/cmd/packetgen/commands"
)

// Build-time variables injected via ldflags
var version = "dev"

func main() {
	commands.Version = version

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
