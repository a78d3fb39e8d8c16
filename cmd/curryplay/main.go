package main

import (
	"fmt"
	"os"

	"github.com/on-the-ground/curry_ive_go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
