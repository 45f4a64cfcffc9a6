package main

import (
	"os"

	"redmine-plugin-setup/src/cli"
)

func main() {
	os.Exit(cli.Execute())
}
