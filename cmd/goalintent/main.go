package main

import (
	"log/slog"
	"os"

	"github.com/templui/goaltracker/cmd/goalintent/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
