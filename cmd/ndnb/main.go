package main

import (
	"os"

	"github.com/named-data/ndnb/cmd"
)

func main() {
	if err := cmd.CmdNDNb.Execute(); err != nil {
		os.Exit(1)
	}
}
