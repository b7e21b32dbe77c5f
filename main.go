package main

import (
	"os"

	"github.com/SavvyHex/econocode/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
