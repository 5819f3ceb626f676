package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/cs2ps/cmd/cs2ps/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
