package main

import (
	"os"

	"github.com/mrlokans/wallabag2karakeep/internal/cli"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	os.Exit(cli.Execute(Version, os.Args[1:], os.Stderr))
}
