package main

import (
	"fmt"
	"os"

	"github.com/jakoblorz/go-tsscaffold/internal/cli"
	"github.com/jakoblorz/go-tsscaffold/internal/tui"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
