package main

import (
	"fmt"
	"os"

	"github.com/BarkinBalci/marketing-effectiveness-service/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
