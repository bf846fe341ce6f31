package main

import (
	"fmt"
	"os"

	"github.com/dmitrymomot/sendmail/internal/cli"
)

func main() {
	root := cli.NewRootCommand(cli.Options{})
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "sendmail:", err)
		os.Exit(1)
	}
}
