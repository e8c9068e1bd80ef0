package main

import (
	"os"

	"github.com/aam-007/syswiz/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
