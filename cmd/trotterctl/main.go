package main

import (
	"os"

	"github.com/couchcryptid/worldtrotter-service/cmd/trotterctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
