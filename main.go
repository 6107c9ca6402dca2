package main

import (
	"github.com/gofvm/gofvm/cmd"
)

func main() {
	cmd.Execute()
}
