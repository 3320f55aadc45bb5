package main

import (
	"fmt"
	"os"

	"github.com/bpmn-os/limex/cmd/limex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "limex: %s\n", err)
		os.Exit(1)
	}
}
