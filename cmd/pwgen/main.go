package main

import (
	"os"

	"github.com/vaultpass/passgen-go/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
