package main

import (
	"os"

	"github.com/nclcl/classifier/pkg/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
