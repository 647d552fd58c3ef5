package main

import (
	"os"

	"github.com/ib-77/exceptional/cmd/attempt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
