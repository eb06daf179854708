package main

import (
	"fmt"
	"os"

	"github.com/dgallion1/notekit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "notekit:", err)
		os.Exit(1)
	}
}
