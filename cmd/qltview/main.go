package main

import (
	"os"

	"qltview/cmd/qltview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
