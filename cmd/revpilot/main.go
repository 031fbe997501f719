package main

import (
	"github.com/revpilot-io/revpilot/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
