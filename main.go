// ABOUTME: Entry point for the photodir CLI
// ABOUTME: Hands the cobra root command to fang for signals, version, and styled errors
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/harperreed/photodir/cli"
)

const version = "0.1.0"

func main() {
	if err := fang.Execute(
		context.Background(),
		cli.NewRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
