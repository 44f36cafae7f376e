package main

import (
	"os"

	"github.com/vytor/leitnerflash/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
