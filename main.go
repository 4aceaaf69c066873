package main

import (
	"github.com/hance08/keabank/cmd"
)

func main() {
	cmd.Execute()
}
