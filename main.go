package main

import (
	"github.com/guessipedia/guessipedia/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
