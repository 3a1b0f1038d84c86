package main

import (
	"os"

	"github.com/cs-demo-processor/csdp/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
