// Command devtoken mints and inspects session tokens for local development
// with the jwt identity provider.
package main

import (
	"os"

	"github.com/amastore/admin/cmd/devtoken/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
