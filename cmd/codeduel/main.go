package main

import (
	"github.com/jtoman/codeduel/internal/cli"
)

func main() {
	cli.Execute()
}
