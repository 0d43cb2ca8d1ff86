package main

import (
	"github.com/go-spindle/spindle/lib/cli"
)

func main() {
	cli.Execute()
}
