package main

import (
	"fmt"
	"os"

	"github.com/Clare-zewei/clickengineA-sub000/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
