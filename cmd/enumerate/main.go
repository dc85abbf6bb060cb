package main

import (
	"os"

	"github.com/jake-scott/go-enumeration/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
