package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/fvm/cmd/fvm"
	"github.com/arthur-debert/fvm/internal/version"
)

func main() {
	rootCmd := fvm.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "FVM",
		Section: "1",
		Source:  "fvm " + version.Version,
		Manual:  "fvm manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
