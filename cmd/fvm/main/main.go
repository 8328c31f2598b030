package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/fvm/cmd/fvm"
	"github.com/arthur-debert/fvm/pkg/errors"
	"github.com/arthur-debert/fvm/pkg/ui/styles"
)

func main() {
	rootCmd := fvm.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		msg := fmt.Sprintf("Error: %v", err)
		if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
			msg = fmt.Sprintf("%s [%s]", msg, code)
		}
		fmt.Fprintln(os.Stderr, styles.Render("Error", msg))
		os.Exit(1)
	}
}
