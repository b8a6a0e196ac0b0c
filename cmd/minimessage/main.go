package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/minimessage/pkg/style"
)

func main() {
	a := newApp()
	if err := newRootCmd(a).Execute(); err != nil {
		styles := style.NewStyles(a.profile(os.Stderr))
		fmt.Fprintln(os.Stderr, style.Diagnostic(err, a.source, styles))
		os.Exit(1)
	}
}
